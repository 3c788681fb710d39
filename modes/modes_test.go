package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		t2 *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatal()
		}
		if t2 != t {
			t.Fatal()
		}
	})
}

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatal()
		}
	})
}
