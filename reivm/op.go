package reivm

type OpCode uint32

const (
	OpLoadConst OpCode = iota + 8
	OpLoadVar
	OpDefVar
	OpSetVar
	OpPop
	OpJump
	OpJumpFalse
	OpCall
	OpReturn
	OpSuspend
	OpEnterScope
	OpLeaveScope
	OpMakeClosure
	OpSwap
	OpGetLocal
	OpSetLocal
	OpDumpTrace
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpNot
)

func (o OpCode) With(arg int) OpCode {
	return o | (OpCode(arg) << 8)
}
