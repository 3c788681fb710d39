package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/rei/logs"
	"github.com/reusee/rei/modes"
	"github.com/reusee/rei/reiconfigs"
	"github.com/reusee/rei/reivm"
	"github.com/reusee/rei/traces"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		new(reiconfigs.Module),
		new(traces.Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		v := new(reivm.VM)
		v.CurrentFun = &reivm.Function{
			Name:   "main",
			Script: &reivm.Script{ID: 1, Name: "main.rei"},
			Lines: []reivm.LineEntry{
				{IP: 0, Line: 1, Column: 1},
			},
		}
		v.IP = 1
		tap(t.Context(), "test", v, map[string]any{
			"foo": 42,
		})
	})
}
