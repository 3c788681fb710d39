package traces

import (
	"strings"
	"testing"

	"github.com/reusee/rei/reivm"
)

func TestEntryString(t *testing.T) {
	entry := Entry{
		FunctionName: "work",
		ScriptName:   "job.rei",
		Line:         12,
		Column:       3,
	}
	if str := entry.String(); str != "at work (job.rei:12:3)" {
		t.Fatalf("got %q", str)
	}

	anon := Entry{}
	if str := anon.String(); str != "at <anonymous> (<unknown>:0:0)" {
		t.Fatalf("got %q", str)
	}
}

func TestStackTraceString(t *testing.T) {
	v := stackVM(
		scriptFn("A", false, nil),
		scriptFn("B", false, nil),
	)
	str := Capture(v, 10, 0).String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %q", str)
	}
	if !strings.Contains(lines[0], "at A ") {
		t.Fatalf("got %q", lines[0])
	}
	if !strings.Contains(lines[1], "at B ") {
		t.Fatalf("got %q", lines[1])
	}

	if str := Capture(new(reivm.VM), 10, 0).String(); str != "" {
		t.Fatalf("got %q", str)
	}
}
