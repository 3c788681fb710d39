package traces

import (
	"testing"

	"github.com/reusee/rei/reivm"
)

func TestStackFramesOrder(t *testing.T) {
	a := scriptFn("A", false, nil)
	b := scriptFn("B", false, nil)
	c := scriptFn("C", false, nil)

	v := new(reivm.VM)
	v.CurrentFun = a
	v.IP = 1
	v.CallStack = []reivm.Frame{
		{Fun: c, ReturnIP: 1},
		{NativeName: "host"},
		{Fun: b, ReturnIP: 1},
		{NativeName: "trap"},
	}

	var names []string
	for p := range stackFrames(v) {
		if p.executesScript() {
			names = append(names, p.fun.Name)
		} else {
			names = append(names, "native:"+p.native)
		}
	}

	want := []string{"native:trap", "A", "B", "native:host", "C"}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v", names)
		}
	}
}

func TestCollectCandidatesSkipsNativeFrames(t *testing.T) {
	a := scriptFn("A", false, nil)
	b := scriptFn("B", false, nil)

	v := new(reivm.VM)
	v.CurrentFun = a
	v.IP = 1
	v.CallStack = []reivm.Frame{
		{Fun: b, ReturnIP: 1},
		{NativeName: "host"},
	}

	// the native frame does not consume the limit
	candidates := collectCandidates(v, 2)
	if len(candidates) != 2 {
		t.Fatalf("got %d", len(candidates))
	}
	if candidates[0].fun != a || candidates[1].fun != b {
		t.Fatalf("got %v", candidates)
	}
}

func TestStackFramesEarlyStop(t *testing.T) {
	v := new(reivm.VM)
	v.CurrentFun = scriptFn("A", false, nil)
	v.IP = 1
	v.CallStack = []reivm.Frame{
		{Fun: scriptFn("C", false, nil), ReturnIP: 1},
		{Fun: scriptFn("B", false, nil), ReturnIP: 1},
	}

	count := 0
	for range stackFrames(v) {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("got %d", count)
	}
}
