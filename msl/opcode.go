// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	"fmt"

	"github.com/gogpu/usc/internal/cfront"
)

// Opcode identifies a lowered Metal instruction.
type Opcode uint16

// Statement and operator opcodes.
const (
	OpFunc Opcode = iota
	OpRet
	OpCall
	OpIf
	OpElse
	OpEndIf
	OpLoop
	OpEndLoop
	OpBreak
	OpBreakC
	OpContinue
	OpSwitch
	OpCase
	OpDefault
	OpEndSwitch
	OpDiscard
	OpAssign
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpNegate
	OpBitNot
	OpLogNot
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpLogAnd
	OpLogOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpCond
	OpConstruct
	OpAccess
	OpStore

	// Texture methods, called on a texture receiver.
	OpSample
	OpSampleCompare
	OpRead
	OpWrite
	OpGather
	OpGetWidth
	OpGetHeight

	// Free functions.
	OpDiscardFragment
	OpAsType
	OpStaticCast
	OpAbs
	OpFabs
	OpSign
	OpFloor
	OpCeil
	OpRound
	OpRint
	OpTrunc
	OpFract
	OpFmod
	OpMin
	OpMax
	OpFmin
	OpFmax
	OpClamp
	OpSaturate
	OpMix
	OpStep
	OpSmoothStep
	OpFma
	OpSqrt
	OpRsqrt
	OpPow
	OpPowr
	OpExp
	OpExp2
	OpLog
	OpLog2
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpAtan2
	OpDot
	OpCross
	OpLength
	OpDistance
	OpNormalize
	OpReflect
	OpDfdx
	OpDfdy
	OpFwidth
	OpAny
	OpAll
	OpSelect
	OpIsNaN
	OpIsInf
	OpPopcount
	OpReverseBits

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OpFunc:             "func",
	OpRet:              "ret",
	OpCall:             "call",
	OpIf:               "if",
	OpElse:             "else",
	OpEndIf:            "endif",
	OpLoop:             "loop",
	OpEndLoop:          "endloop",
	OpBreak:            "break",
	OpBreakC:           "breakc",
	OpContinue:         "continue",
	OpSwitch:           "switch",
	OpCase:             "case",
	OpDefault:          "default",
	OpEndSwitch:        "endswitch",
	OpDiscard:          "discard",
	OpAssign:           "assign",
	OpAdd:              "add",
	OpSub:              "sub",
	OpMul:              "mul",
	OpDiv:              "div",
	OpRem:              "rem",
	OpNegate:           "negate",
	OpBitNot:           "bitnot",
	OpLogNot:           "lognot",
	OpBitAnd:           "bitand",
	OpBitOr:            "bitor",
	OpBitXor:           "bitxor",
	OpShl:              "shl",
	OpShr:              "shr",
	OpLogAnd:           "logand",
	OpLogOr:            "logor",
	OpEq:               "eq",
	OpNe:               "ne",
	OpLt:               "lt",
	OpLe:               "le",
	OpGt:               "gt",
	OpGe:               "ge",
	OpCond:             "cond",
	OpConstruct:        "construct",
	OpAccess:           "access",
	OpStore:            "store",
	OpSample:           "sample",
	OpSampleCompare:    "sample_compare",
	OpRead:             "read",
	OpWrite:            "write",
	OpGather:           "gather",
	OpGetWidth:         "get_width",
	OpGetHeight:        "get_height",
	OpDiscardFragment:  "discard_fragment",
	OpAsType:           "as_type",
	OpStaticCast:       "static_cast",
	OpAbs:              "abs",
	OpFabs:             "fabs",
	OpSign:             "sign",
	OpFloor:            "floor",
	OpCeil:             "ceil",
	OpRound:            "round",
	OpRint:             "rint",
	OpTrunc:            "trunc",
	OpFract:            "fract",
	OpFmod:             "fmod",
	OpMin:              "min",
	OpMax:              "max",
	OpFmin:             "fmin",
	OpFmax:             "fmax",
	OpClamp:            "clamp",
	OpSaturate:         "saturate",
	OpMix:              "mix",
	OpStep:             "step",
	OpSmoothStep:       "smoothstep",
	OpFma:              "fma",
	OpSqrt:             "sqrt",
	OpRsqrt:            "rsqrt",
	OpPow:              "pow",
	OpPowr:             "powr",
	OpExp:              "exp",
	OpExp2:             "exp2",
	OpLog:              "log",
	OpLog2:             "log2",
	OpSin:              "sin",
	OpCos:              "cos",
	OpTan:              "tan",
	OpAsin:             "asin",
	OpAcos:             "acos",
	OpAtan:             "atan",
	OpAtan2:            "atan2",
	OpDot:              "dot",
	OpCross:            "cross",
	OpLength:           "length",
	OpDistance:         "distance",
	OpNormalize:        "normalize",
	OpReflect:          "reflect",
	OpDfdx:             "dfdx",
	OpDfdy:             "dfdy",
	OpFwidth:           "fwidth",
	OpAny:              "any",
	OpAll:              "all",
	OpSelect:           "select",
	OpIsNaN:            "isnan",
	OpIsInf:            "isinf",
	OpPopcount:         "popcount",
	OpReverseBits:      "reverse_bits",
}

var opcodesByName = func() map[string]Opcode {
	m := make(map[string]Opcode, opcodeCount)
	for op, name := range opcodeNames {
		m[name] = Opcode(op)
	}
	return m
}()

// String returns the source-level name of op.
func (op Opcode) String() string {
	if op < opcodeCount {
		return opcodeNames[op]
	}
	return fmt.Sprintf("msl(%d)", uint16(op))
}

// ParseOpcode resolves an opcode by name.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// IsMethod reports whether op is a texture method.
func (op Opcode) IsMethod() bool {
	return op >= OpSample && op < OpDiscardFragment
}

func namesBetween(lo, hi Opcode) []string {
	names := make([]string, 0, hi-lo)
	for op := lo; op < hi; op++ {
		names = append(names, op.String())
	}
	return names
}

func init() {
	for _, name := range cfront.CoreOps {
		if _, ok := opcodesByName[name]; !ok {
			panic("msl: missing core opcode " + name)
		}
	}
}
