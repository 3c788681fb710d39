package traces

import (
	"iter"

	"github.com/reusee/rei/reivm"
)

// Endpoint selects which end of the logical call stack a single-frame
// capture searches from.
type Endpoint uint8

const (
	// Top is the newest (innermost) end.
	Top Endpoint = iota
	// Bottom is the oldest (outermost) end.
	Bottom
)

// Capture walks the stack of v and returns every developer-visible
// logical frame, newest first, inspecting at most limit script-executing
// physical frames. A negative limit is treated as zero.
func Capture(v *reivm.VM, limit int, opts Options) *StackTrace {
	defer v.DisallowExec()()

	if limit < 0 {
		limit = 0
	}
	candidates := collectCandidates(v, limit)

	entries := make([]Entry, 0, limit)
	for summary := range summariesTopDown(candidates) {
		if !passes(summary, v.Realm, opts) {
			continue
		}
		entries = append(entries, materialize(summary))
	}
	return &StackTrace{entries: entries}
}

// CaptureTop returns a trace holding just the newest developer-visible
// logical frame of v's stack, or an empty trace if there is none.
func CaptureTop(v *reivm.VM, limit int, opts Options) *StackTrace {
	return captureEndpoint(v, limit, opts, Top)
}

// CaptureBottom returns a trace holding just the oldest developer-visible
// logical frame of v's stack, or an empty trace if there is none.
func CaptureBottom(v *reivm.VM, limit int, opts Options) *StackTrace {
	return captureEndpoint(v, limit, opts, Bottom)
}

func captureEndpoint(v *reivm.VM, limit int, opts Options, endpoint Endpoint) *StackTrace {
	defer v.DisallowExec()()

	if limit < 0 {
		limit = 0
	}
	candidates := collectCandidates(v, limit)

	var seq iter.Seq[FrameSummary]
	if endpoint == Top {
		seq = summariesTopDown(candidates)
	} else {
		seq = summariesBottomUp(candidates)
	}

	entries := make([]Entry, 0, limit)
	for summary := range seq {
		if !passes(summary, v.Realm, opts) {
			continue
		}
		// first qualifying frame wins, the rest of the stack is not
		// inspected
		entries = append(entries, materialize(summary))
		break
	}
	return &StackTrace{entries: entries}
}

// summariesTopDown yields logical frames newest to oldest across the
// whole candidate list: candidates in collection order (newest first),
// each frame's summaries tail to head.
func summariesTopDown(candidates []physicalFrame) iter.Seq[FrameSummary] {
	return func(yield func(FrameSummary) bool) {
		for _, p := range candidates {
			summaries := summarize(p)
			for i := len(summaries) - 1; i >= 0; i-- {
				if !yield(summaries[i]) {
					return
				}
			}
		}
	}
}

// summariesBottomUp yields logical frames oldest to newest: candidates
// in reverse collection order, each frame's summaries head to tail.
func summariesBottomUp(candidates []physicalFrame) iter.Seq[FrameSummary] {
	return func(yield func(FrameSummary) bool) {
		for i := len(candidates) - 1; i >= 0; i-- {
			for _, summary := range summarize(candidates[i]) {
				if !yield(summary) {
					return
				}
			}
		}
	}
}

func passes(summary FrameSummary, capturing *reivm.Realm, opts Options) bool {
	if !summary.Debuggable {
		return false
	}
	if opts.Has(ExposeFramesAcrossOrigins) {
		return true
	}
	realm := summary.Realm
	if realm == nil {
		// functions without a realm belong to whatever VM runs them
		return true
	}
	return realm.SameOrigin(capturing)
}
