package traces

import "github.com/reusee/rei/reivm"

// FrameSummary is one logical call within a physical frame: either the
// live function or a call elided into the activation by tail-call
// optimization.
type FrameSummary struct {
	FunctionName string
	Script       *reivm.Script
	Line         int
	Column       int

	// Debuggable is false for hidden functions, which must never
	// appear in a developer-facing trace.
	Debuggable bool

	Realm *reivm.Realm
}

// summarize expands one physical frame into its logical calls, ordered
// head to tail as outermost (oldest) to innermost (newest): elided call
// sites in elision order, then the live function. A script-executing
// frame always yields at least one summary.
func summarize(p physicalFrame) []FrameSummary {
	if !p.executesScript() {
		return nil
	}
	out := make([]FrameSummary, 0, len(p.elided)+1)
	for _, site := range p.elided {
		out = append(out, summarizeCall(site.Fun, site.IP))
	}
	out = append(out, summarizeCall(p.fun, p.ip))
	return out
}

func summarizeCall(fun *reivm.Function, ip int) FrameSummary {
	line, column := fun.PositionFor(ip)
	return FrameSummary{
		FunctionName: fun.Name,
		Script:       fun.Script,
		Line:         line,
		Column:       column,
		Debuggable:   !fun.Hidden,
		Realm:        fun.Realm,
	}
}
