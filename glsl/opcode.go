// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/usc/internal/cfront"
)

// Opcode identifies a lowered GLSL instruction: a statement or operator
// form, or a builtin function call.
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

	// Builtin functions.
	OpTexture
	OpTexture2D
	OpTextureCube
	OpTextureLod
	OpTexture2DLod
	OpTextureCubeLod
	OpTextureGrad
	OpTexelFetch
	OpTextureSize
	OpTextureGather
	OpShadow2D
	OpAbs
	OpSign
	OpFloor
	OpCeil
	OpRound
	OpTrunc
	OpFract
	OpMod
	OpMin
	OpMax
	OpClamp
	OpMix
	OpStep
	OpSmoothStep
	OpFma
	OpSqrt
	OpInverseSqrt
	OpPow
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
	OpDot
	OpCross
	OpLength
	OpDistance
	OpNormalize
	OpReflect
	OpDFdx
	OpDFdy
	OpFwidth
	OpAny
	OpAll
	OpNot
	OpEqual
	OpNotEqual
	OpLessThan
	OpLessThanEqual
	OpGreaterThan
	OpGreaterThanEqual
	OpIsNaN
	OpIsInf
	OpFloatBitsToInt
	OpFloatBitsToUint
	OpIntBitsToFloat
	OpUintBitsToFloat
	OpBitCount
	OpBitfieldReverse

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
	OpTexture:          "texture",
	OpTexture2D:        "texture2D",
	OpTextureCube:      "textureCube",
	OpTextureLod:       "textureLod",
	OpTexture2DLod:     "texture2DLod",
	OpTextureCubeLod:   "textureCubeLod",
	OpTextureGrad:      "textureGrad",
	OpTexelFetch:       "texelFetch",
	OpTextureSize:      "textureSize",
	OpTextureGather:    "textureGather",
	OpShadow2D:         "shadow2D",
	OpAbs:              "abs",
	OpSign:             "sign",
	OpFloor:            "floor",
	OpCeil:             "ceil",
	OpRound:            "round",
	OpTrunc:            "trunc",
	OpFract:            "fract",
	OpMod:              "mod",
	OpMin:              "min",
	OpMax:              "max",
	OpClamp:            "clamp",
	OpMix:              "mix",
	OpStep:             "step",
	OpSmoothStep:       "smoothstep",
	OpFma:              "fma",
	OpSqrt:             "sqrt",
	OpInverseSqrt:      "inversesqrt",
	OpPow:              "pow",
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
	OpDot:              "dot",
	OpCross:            "cross",
	OpLength:           "length",
	OpDistance:         "distance",
	OpNormalize:        "normalize",
	OpReflect:          "reflect",
	OpDFdx:             "dFdx",
	OpDFdy:             "dFdy",
	OpFwidth:           "fwidth",
	OpAny:              "any",
	OpAll:              "all",
	OpNot:              "not",
	OpEqual:            "equal",
	OpNotEqual:         "notEqual",
	OpLessThan:         "lessThan",
	OpLessThanEqual:    "lessThanEqual",
	OpGreaterThan:      "greaterThan",
	OpGreaterThanEqual: "greaterThanEqual",
	OpIsNaN:            "isnan",
	OpIsInf:            "isinf",
	OpFloatBitsToInt:   "floatBitsToInt",
	OpFloatBitsToUint:  "floatBitsToUint",
	OpIntBitsToFloat:   "intBitsToFloat",
	OpUintBitsToFloat:  "uintBitsToFloat",
	OpBitCount:         "bitCount",
	OpBitfieldReverse:  "bitfieldReverse",
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
	return fmt.Sprintf("glsl(%d)", uint16(op))
}

// ParseOpcode resolves an opcode by name.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// IsBuiltin reports whether op is a builtin function.
func (op Opcode) IsBuiltin() bool {
	return op >= OpTexture && op < opcodeCount
}

func builtinNames() []string {
	names := make([]string, 0, opcodeCount-OpTexture)
	for op := OpTexture; op < opcodeCount; op++ {
		names = append(names, op.String())
	}
	return names
}

func init() {
	for _, name := range cfront.CoreOps {
		if _, ok := opcodesByName[name]; !ok {
			panic("glsl: missing core opcode " + name)
		}
	}
}
