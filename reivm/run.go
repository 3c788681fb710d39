package reivm

import "fmt"

func (v *VM) Run(yield func(*Interrupt, error) bool) {
	if v.execDisallowed > 0 {
		panic(fmt.Errorf("VM.Run entered while execution is disallowed"))
	}

	for {
		if v.CurrentFun == nil || v.IP < 0 || v.IP >= len(v.CurrentFun.Code) {
			return
		}

		inst := v.CurrentFun.Code[v.IP]
		v.IP++
		op := inst & 0xff

		switch op {
		case OpLoadConst:
			idx := int(inst >> 8)
			if v.SP >= len(v.OperandStack) {
				v.growOperandStack()
			}
			v.OperandStack[v.SP] = v.CurrentFun.Constants[idx]
			v.SP++

		case OpLoadVar:
			idx := int(inst >> 8)
			name := v.CurrentFun.Constants[idx].(string)
			val, ok := v.Scope.Get(name)
			if !ok {
				if !yield(nil, fmt.Errorf("undefined variable: %s", name)) {
					return
				}
				v.push(nil)
				continue
			}
			v.push(val)

		case OpDefVar:
			idx := int(inst >> 8)
			name := v.CurrentFun.Constants[idx].(string)
			v.Scope.Def(name, v.pop())

		case OpSetVar:
			idx := int(inst >> 8)
			name := v.CurrentFun.Constants[idx].(string)
			val := v.pop()
			if !v.Scope.Set(name, val) {
				if !yield(nil, fmt.Errorf("variable not found: %s", name)) {
					return
				}
			}

		case OpPop:
			if v.SP > 0 {
				v.SP--
				v.OperandStack[v.SP] = nil
			}

		case OpJump:
			offset := int(int32(inst) >> 8)
			v.IP += offset

		case OpJumpFalse:
			offset := int(int32(inst) >> 8)
			var val any
			if v.SP > 0 {
				v.SP--
				val = v.OperandStack[v.SP]
				v.OperandStack[v.SP] = nil
			}
			var jump bool
			switch x := val.(type) {
			case nil:
				jump = true
			case bool:
				jump = !x
			case int:
				jump = x == 0
			case string:
				jump = x == ""
			}
			if jump {
				v.IP += offset
			}

		case OpMakeClosure:
			idx := int(inst >> 8)
			fun := v.CurrentFun.Constants[idx].(*Function)
			v.push(&Closure{
				Fun: fun,
				Env: v.Scope,
			})

		case OpCall:
			argc := int(inst >> 8)
			if v.SP < argc+1 {
				if !yield(nil, fmt.Errorf("stack underflow during call")) {
					return
				}
				continue
			}

			// Callee is below args on the stack
			calleeIdx := v.SP - argc - 1
			callee := v.OperandStack[calleeIdx]

			switch fn := callee.(type) {
			case *Closure:
				if argc != fn.Fun.NumParams {
					if !yield(nil, fmt.Errorf("arity mismatch: want %d, got %d", fn.Fun.NumParams, argc)) {
						return
					}
					v.drop(argc + 1)
					v.push(nil)
					continue
				}

				newEnv := fn.Env.NewChild()
				for i := range argc {
					newEnv.Def(fn.Fun.ParamNames[i], v.OperandStack[calleeIdx+1+i])
				}

				if v.IP < len(v.CurrentFun.Code) && (v.CurrentFun.Code[v.IP]&0xff) == OpReturn {
					// Tail call: the callee reuses this activation. The
					// caller survives as an elided call site within it.
					v.Elided = append(v.Elided, CallSite{
						Fun: v.CurrentFun,
						IP:  v.IP - 1,
					})
					dst := v.BP
					if dst > 0 {
						dst--
					}
					src := calleeIdx
					count := argc + 1
					copy(v.OperandStack[dst:], v.OperandStack[src:src+count])

					startClean := dst + count
					clear(v.OperandStack[startClean:v.SP])

					v.SP = startClean
					v.BP = dst + 1
				} else {
					v.CallStack = append(v.CallStack, Frame{
						Fun:      v.CurrentFun,
						ReturnIP: v.IP,
						Env:      v.Scope,
						BaseSP:   calleeIdx,
						BP:       v.BP,
						Elided:   v.Elided,
					})
					v.Elided = nil
					v.BP = calleeIdx + 1
				}

				v.CurrentFun = fn.Fun
				v.IP = 0
				v.Scope = newEnv

			case NativeFunc:
				// A marker frame covers the native call so stack walkers
				// observe the non-script activation.
				v.CallStack = append(v.CallStack, Frame{
					NativeName: fn.Name,
					ReturnIP:   v.IP,
				})
				// Zero-allocation slice view of arguments, valid only
				// until the next stack modification
				args := v.OperandStack[calleeIdx+1 : v.SP]
				res, err := fn.Call(v, args)
				v.CallStack = v.CallStack[:len(v.CallStack)-1]

				if err != nil {
					if !yield(nil, err) {
						return
					}
					res = nil
				}
				v.OperandStack[calleeIdx] = res
				for i := calleeIdx + 1; i < v.SP; i++ {
					v.OperandStack[i] = nil
				}
				v.SP = calleeIdx + 1

			default:
				if !yield(nil, fmt.Errorf("calling non-function: %T", callee)) {
					return
				}
				v.drop(argc + 1)
				v.push(nil)
			}

		case OpReturn:
			retVal := v.pop()
			n := len(v.CallStack)
			if n == 0 {
				if v.BP > 0 {
					v.drop(v.SP - (v.BP - 1))
				} else {
					v.drop(v.SP)
				}
				v.push(retVal)
				return
			}
			frame := v.CallStack[n-1]
			v.CallStack = v.CallStack[:n-1]

			// Restore Call Frame
			v.CurrentFun = frame.Fun
			v.IP = frame.ReturnIP
			v.Scope = frame.Env
			v.BP = frame.BP
			v.Elided = frame.Elided
			// Discard any garbage left on stack by the called function
			v.drop(v.SP - frame.BaseSP)

			v.push(retVal)

		case OpSuspend:
			if !yield(InterruptSuspend, nil) {
				return
			}

		case OpEnterScope:
			v.Scope = v.Scope.NewChild()

		case OpLeaveScope:
			if v.Scope.Parent != nil {
				v.Scope = v.Scope.Parent
			}

		case OpSwap:
			if v.SP < 2 {
				if !yield(nil, fmt.Errorf("stack underflow during swap")) {
					return
				}
				continue
			}
			top := v.SP - 1
			under := v.SP - 2
			v.OperandStack[top], v.OperandStack[under] = v.OperandStack[under], v.OperandStack[top]

		case OpGetLocal:
			idx := int(inst >> 8)
			if v.SP >= len(v.OperandStack) {
				v.growOperandStack()
			}
			v.OperandStack[v.SP] = v.OperandStack[v.BP+idx]
			v.SP++

		case OpSetLocal:
			idx := int(inst >> 8)
			var val any
			if v.SP > 0 {
				v.SP--
				val = v.OperandStack[v.SP]
				v.OperandStack[v.SP] = nil
			}
			v.OperandStack[v.BP+idx] = val

		case OpDumpTrace:
			var msg string
			for _, frame := range v.CallStack {
				if frame.IsNative() {
					msg += fmt.Sprintf("%s:native\n", frame.NativeName)
					continue
				}
				msg += fmt.Sprintf("%s:%d\n", frame.Fun.Name, frame.ReturnIP)
			}
			msg += fmt.Sprintf("%s:%d", v.CurrentFun.Name, v.IP-1)
			if !yield(nil, fmt.Errorf("%s", msg)) {
				return
			}

		case OpAdd, OpSub, OpMul, OpDiv, OpMod:
			if v.SP < 2 {
				if !yield(nil, fmt.Errorf("stack underflow during math op")) {
					return
				}
				continue
			}
			b := v.pop()
			a := v.pop()

			if op == OpAdd {
				s1, ok1 := a.(string)
				s2, ok2 := b.(string)
				if ok1 && ok2 {
					v.push(s1 + s2)
					continue
				}
			}

			i1, ok1 := a.(int)
			i2, ok2 := b.(int)
			if !ok1 || !ok2 {
				if !yield(nil, fmt.Errorf("math operands must be int, got %T and %T", a, b)) {
					return
				}
				v.push(nil)
				continue
			}

			var res int
			switch op {
			case OpAdd:
				res = i1 + i2
			case OpSub:
				res = i1 - i2
			case OpMul:
				res = i1 * i2
			case OpDiv:
				if i2 == 0 {
					if !yield(nil, fmt.Errorf("division by zero")) {
						return
					}
					v.push(nil)
					continue
				}
				res = i1 / i2
			case OpMod:
				if i2 == 0 {
					if !yield(nil, fmt.Errorf("division by zero")) {
						return
					}
					v.push(nil)
					continue
				}
				res = i1 % i2
			}
			v.push(res)

		case OpEq, OpNe:
			if v.SP < 2 {
				if !yield(nil, fmt.Errorf("stack underflow during comparison")) {
					return
				}
				continue
			}
			b := v.pop()
			a := v.pop()
			match := a == b
			if op == OpEq {
				v.push(match)
			} else {
				v.push(!match)
			}

		case OpLt, OpLe, OpGt, OpGe:
			if v.SP < 2 {
				if !yield(nil, fmt.Errorf("stack underflow during comparison")) {
					return
				}
				continue
			}
			b := v.pop()
			a := v.pop()

			var res bool
			switch x := a.(type) {
			case int:
				y, ok := b.(int)
				if !ok {
					if !yield(nil, fmt.Errorf("comparison type mismatch: int vs %T", b)) {
						return
					}
					v.push(nil)
					continue
				}
				switch op {
				case OpLt:
					res = x < y
				case OpLe:
					res = x <= y
				case OpGt:
					res = x > y
				case OpGe:
					res = x >= y
				}
			case string:
				y, ok := b.(string)
				if !ok {
					if !yield(nil, fmt.Errorf("comparison type mismatch: string vs %T", b)) {
						return
					}
					v.push(nil)
					continue
				}
				switch op {
				case OpLt:
					res = x < y
				case OpLe:
					res = x <= y
				case OpGt:
					res = x > y
				case OpGe:
					res = x >= y
				}
			default:
				if !yield(nil, fmt.Errorf("unsupported type for comparison: %T", a)) {
					return
				}
				v.push(nil)
				continue
			}
			v.push(res)

		case OpNot:
			if v.SP < 1 {
				if !yield(nil, fmt.Errorf("stack underflow during not")) {
					return
				}
				continue
			}
			val := v.pop()
			var isFalse bool
			switch x := val.(type) {
			case nil:
				isFalse = true
			case bool:
				isFalse = !x
			case int:
				isFalse = x == 0
			case string:
				isFalse = x == ""
			}
			v.push(isFalse)
		}
	}
}
