package traces

import (
	"iter"

	"github.com/reusee/rei/reivm"
)

// physicalFrame is a read-only view of one activation on a VM's call
// stack. It borrows from the VM and must not outlive the capture call.
type physicalFrame struct {
	fun    *reivm.Function
	ip     int
	elided []reivm.CallSite
	native string
}

func (p physicalFrame) executesScript() bool {
	return p.fun != nil
}

// stackFrames enumerates the physical frames of v, newest to oldest:
// native marker frames above the live activation, the live activation,
// then the saved call stack from newest to oldest.
func stackFrames(v *reivm.VM) iter.Seq[physicalFrame] {
	return func(yield func(physicalFrame) bool) {
		i := len(v.CallStack) - 1
		for ; i >= 0 && v.CallStack[i].IsNative(); i-- {
			if !yield(physicalFrame{native: v.CallStack[i].NativeName}) {
				return
			}
		}

		if v.CurrentFun != nil {
			ip := v.IP - 1
			if ip < 0 {
				ip = 0
			}
			if !yield(physicalFrame{
				fun:    v.CurrentFun,
				ip:     ip,
				elided: v.Elided,
			}) {
				return
			}
		}

		for ; i >= 0; i-- {
			frame := v.CallStack[i]
			if frame.IsNative() {
				if !yield(physicalFrame{native: frame.NativeName}) {
					return
				}
				continue
			}
			if !yield(physicalFrame{
				fun:    frame.Fun,
				ip:     frame.ReturnIP - 1,
				elided: frame.Elided,
			}) {
				return
			}
		}
	}
}

// collectCandidates gathers up to limit script-executing physical
// frames, newest first. Native frames are skipped and do not consume
// the limit.
func collectCandidates(v *reivm.VM, limit int) []physicalFrame {
	candidates := make([]physicalFrame, 0, limit)
	for p := range stackFrames(v) {
		if len(candidates) >= limit {
			break
		}
		if !p.executesScript() {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}
