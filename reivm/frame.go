package reivm

// CallSite records a call elided by tail-call optimization. The callee
// reuses the caller's activation, so the caller survives only as a
// logical entry within that activation.
type CallSite struct {
	Fun *Function
	IP  int
}

type Frame struct {
	Fun      *Function
	ReturnIP int
	Env      *Env
	BaseSP   int
	BP       int

	// Elided holds the caller activation's elided call sites, saved at
	// call time and restored on return, in elision order (oldest first).
	Elided []CallSite

	// NativeName marks a frame pushed for the duration of a native
	// call. Such frames execute no bytecode.
	NativeName string
}

func (f Frame) IsNative() bool {
	return f.NativeName != ""
}
