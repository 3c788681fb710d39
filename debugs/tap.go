package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/rei/logs"
	"github.com/reusee/rei/reivm"
	"github.com/reusee/rei/traces"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap suspends into a starlark REPL with the machine's stack traces bound as
// trace, top and bottom, plus any extra globals the caller passes.
type Tap func(ctx context.Context, what string, v *reivm.VM, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	newSpan logs.NewSpan,
	defaults traces.Defaults,
) Tap {
	return func(ctx context.Context, what string, v *reivm.VM, globals map[string]any) {
		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		opts := defaults.Options()
		mappings := starlark.StringDict{
			"trace":  toStarlarkValue(traces.Capture(v, defaults.Limit, opts)),
			"top":    toStarlarkValue(traces.CaptureTop(v, defaults.Limit, opts)),
			"bottom": toStarlarkValue(traces.CaptureBottom(v, defaults.Limit, opts)),
		}
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
