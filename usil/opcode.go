package usil

import "fmt"

// Opcode is a canonical USIL opcode.
type Opcode uint16

// Canonical opcodes. OpNone is only valid inside a Table, where it marks a
// backend opcode that translates to no instruction.
const (
	OpNone Opcode = iota
	OpNop
	OpComment

	// Data movement
	OpMove
	OpMoveConditional
	OpSelect
	OpLoad
	OpStore
	OpAccess
	OpConstruct
	OpExtract
	OpInsert
	OpShuffle

	// Arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMad
	OpMod
	OpNeg
	OpAbs
	OpSign
	OpMin
	OpMax
	OpClamp
	OpSaturate

	// Bitwise
	OpAnd
	OpOr
	OpXor
	OpNot
	OpShl
	OpShr
	OpBitCount
	OpBitReverse

	// Comparison and logic
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpLogicalAnd
	OpLogicalOr
	OpLogicalNot
	OpAny
	OpAll
	OpIsNaN
	OpIsInf

	// Math builtins
	OpSqrt
	OpRsqrt
	OpRcp
	OpExp
	OpExp2
	OpLog
	OpLog2
	OpPow
	OpFrac
	OpFloor
	OpCeil
	OpRound
	OpTrunc
	OpSin
	OpCos
	OpSinCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpAtan2

	// Vector builtins
	OpDot2
	OpDot3
	OpDot4
	OpDot
	OpCross
	OpLength
	OpDistance
	OpNormalize
	OpReflect
	OpMix
	OpStep
	OpSmoothstep

	// Conversion
	OpIntToFloat
	OpUintToFloat
	OpFloatToInt
	OpFloatToUint
	OpBitcast
	OpConvert

	// Resources
	OpSample
	OpSampleLOD
	OpSampleBias
	OpSampleGrad
	OpSampleCmp
	OpSampleCmpLOD
	OpLoadResource
	OpGather
	OpResourceInfo

	// Fragment
	OpDerivX
	OpDerivY
	OpFwidth
	OpDiscard

	// Structured control flow
	OpIf
	OpElse
	OpEndIf
	OpLoop
	OpEndLoop
	OpBreak
	OpBreakC
	OpContinue
	OpContinueC
	OpSwitch
	OpCase
	OpDefault
	OpEndSwitch
	OpReturn
	OpReturnC

	// Unstructured control flow
	OpLabel
	OpBranch
	OpBranchC
	OpPhi

	// Functions
	OpFunction
	OpCall
	OpCallC

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OpNone:            "none",
	OpNop:             "nop",
	OpComment:         "comment",
	OpMove:            "mov",
	OpMoveConditional: "movc",
	OpSelect:          "select",
	OpLoad:            "load",
	OpStore:           "store",
	OpAccess:          "access",
	OpConstruct:       "construct",
	OpExtract:         "extract",
	OpInsert:          "insert",
	OpShuffle:         "shuffle",
	OpAdd:             "add",
	OpSub:             "sub",
	OpMul:             "mul",
	OpDiv:             "div",
	OpMad:             "mad",
	OpMod:             "mod",
	OpNeg:             "neg",
	OpAbs:             "abs",
	OpSign:            "sign",
	OpMin:             "min",
	OpMax:             "max",
	OpClamp:           "clamp",
	OpSaturate:        "saturate",
	OpAnd:             "and",
	OpOr:              "or",
	OpXor:             "xor",
	OpNot:             "not",
	OpShl:             "shl",
	OpShr:             "shr",
	OpBitCount:        "countbits",
	OpBitReverse:      "bfrev",
	OpEq:              "eq",
	OpNe:              "ne",
	OpLt:              "lt",
	OpLe:              "le",
	OpGt:              "gt",
	OpGe:              "ge",
	OpLogicalAnd:      "land",
	OpLogicalOr:       "lor",
	OpLogicalNot:      "lnot",
	OpAny:             "any",
	OpAll:             "all",
	OpIsNaN:           "isnan",
	OpIsInf:           "isinf",
	OpSqrt:            "sqrt",
	OpRsqrt:           "rsq",
	OpRcp:             "rcp",
	OpExp:             "exp",
	OpExp2:            "exp2",
	OpLog:             "log",
	OpLog2:            "log2",
	OpPow:             "pow",
	OpFrac:            "frc",
	OpFloor:           "floor",
	OpCeil:            "ceil",
	OpRound:           "round",
	OpTrunc:           "trunc",
	OpSin:             "sin",
	OpCos:             "cos",
	OpSinCos:          "sincos",
	OpTan:             "tan",
	OpAsin:            "asin",
	OpAcos:            "acos",
	OpAtan:            "atan",
	OpAtan2:           "atan2",
	OpDot2:            "dp2",
	OpDot3:            "dp3",
	OpDot4:            "dp4",
	OpDot:             "dot",
	OpCross:           "cross",
	OpLength:          "length",
	OpDistance:        "distance",
	OpNormalize:       "normalize",
	OpReflect:         "reflect",
	OpMix:             "mix",
	OpStep:            "step",
	OpSmoothstep:      "smoothstep",
	OpIntToFloat:      "itof",
	OpUintToFloat:     "utof",
	OpFloatToInt:      "ftoi",
	OpFloatToUint:     "ftou",
	OpBitcast:         "bitcast",
	OpConvert:         "convert",
	OpSample:          "sample",
	OpSampleLOD:       "sample_l",
	OpSampleBias:      "sample_b",
	OpSampleGrad:      "sample_d",
	OpSampleCmp:       "sample_c",
	OpSampleCmpLOD:    "sample_c_lz",
	OpLoadResource:    "ld",
	OpGather:          "gather",
	OpResourceInfo:    "resinfo",
	OpDerivX:          "deriv_x",
	OpDerivY:          "deriv_y",
	OpFwidth:          "fwidth",
	OpDiscard:         "discard",
	OpIf:              "if",
	OpElse:            "else",
	OpEndIf:           "endif",
	OpLoop:            "loop",
	OpEndLoop:         "endloop",
	OpBreak:           "break",
	OpBreakC:          "breakc",
	OpContinue:        "continue",
	OpContinueC:       "continuec",
	OpSwitch:          "switch",
	OpCase:            "case",
	OpDefault:         "default",
	OpEndSwitch:       "endswitch",
	OpReturn:          "ret",
	OpReturnC:         "retc",
	OpLabel:           "label",
	OpBranch:          "branch",
	OpBranchC:         "branchc",
	OpPhi:             "phi",
	OpFunction:        "func",
	OpCall:            "call",
	OpCallC:           "callc",
}

var opcodesByName = func() map[string]Opcode {
	m := make(map[string]Opcode, opcodeCount)
	for op, name := range opcodeNames {
		m[name] = Opcode(op)
	}
	return m
}()

// String returns the USIL mnemonic.
func (op Opcode) String() string {
	if op < opcodeCount {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint16(op))
}

// Valid reports whether op is a member of the canonical set.
func (op Opcode) Valid() bool {
	return op < opcodeCount
}

// ParseOpcode looks up a canonical opcode by mnemonic.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// Opcodes returns every canonical opcode except OpNone, in declaration order.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, opcodeCount-1)
	for op := OpNop; op < opcodeCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// opensBlock reports whether op increases listing depth.
func (op Opcode) opensBlock() bool {
	switch op {
	case OpIf, OpElse, OpLoop, OpSwitch:
		return true
	}
	return false
}

// closesBlock reports whether op decreases listing depth.
func (op Opcode) closesBlock() bool {
	switch op {
	case OpElse, OpEndIf, OpEndLoop, OpEndSwitch:
		return true
	}
	return false
}
