package reivm

import "encoding/gob"

func init() {
	gob.Register(&Function{})
	gob.Register(&Closure{})
	gob.Register(Frame{})
	gob.Register(CallSite{})
	gob.Register(&Env{})
	gob.Register(&Script{})
	gob.Register(&Realm{})
	gob.Register(OpCode(0))
	gob.Register(NativeFunc{})
	gob.Register([]any{})
	gob.Register(map[any]any{})
	gob.Register(map[string]any{})
	gob.Register(&Interrupt{})
}
