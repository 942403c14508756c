// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import (
	"fmt"

	"github.com/gogpu/usc/usil"
)

// OperandType is the register file of an operand token (bits 12..19).
type OperandType uint8

// Operand types.
const (
	OperandTemp OperandType = iota
	OperandInput
	OperandOutput
	OperandIndexableTemp
	OperandImmediate32
	OperandImmediate64
	OperandSampler
	OperandResource
	OperandConstantBuffer
	OperandImmediateConstantBuffer
	OperandLabel
	OperandInputPrimitiveID
	OperandOutputDepth
	OperandNull
	OperandRasterizer
	OperandOutputCoverageMask
	OperandStream
	OperandFunctionBody
	OperandFunctionTable
	OperandInterface
	OperandFunctionInput
	OperandFunctionOutput
	OperandOutputControlPointID
	OperandInputForkInstanceID
	OperandInputJoinInstanceID
	OperandInputControlPoint
	OperandOutputControlPoint
	OperandInputPatchConstant
	OperandInputDomainPoint
	OperandThisPointer
	OperandUnorderedAccessView
	OperandThreadGroupSharedMemory
	OperandInputThreadID
	OperandInputThreadGroupID
	OperandInputThreadIDInGroup
	OperandInputCoverageMask
	OperandInputThreadIDInGroupFlattened
	OperandInputGSInstanceID
	OperandOutputDepthGreaterEqual
	OperandOutputDepthLessEqual
	OperandCycleCounter

	operandTypeCount
)

// registerNames are the disassembler register file prefixes.
var registerNames = [operandTypeCount]string{
	OperandTemp:                          "r",
	OperandInput:                         "v",
	OperandOutput:                        "o",
	OperandIndexableTemp:                 "x",
	OperandImmediate32:                   "l",
	OperandImmediate64:                   "d",
	OperandSampler:                       "s",
	OperandResource:                      "t",
	OperandConstantBuffer:                "cb",
	OperandImmediateConstantBuffer:       "icb",
	OperandLabel:                         "label",
	OperandInputPrimitiveID:              "vPrim",
	OperandOutputDepth:                   "oDepth",
	OperandNull:                          "null",
	OperandRasterizer:                    "rasterizer",
	OperandOutputCoverageMask:            "oMask",
	OperandStream:                        "m",
	OperandFunctionBody:                  "fb",
	OperandFunctionTable:                 "ft",
	OperandInterface:                     "fp",
	OperandFunctionInput:                 "fi",
	OperandFunctionOutput:                "fo",
	OperandOutputControlPointID:          "vOutputControlPointID",
	OperandInputForkInstanceID:           "vForkInstanceID",
	OperandInputJoinInstanceID:           "vJoinInstanceID",
	OperandInputControlPoint:             "vicp",
	OperandOutputControlPoint:            "vocp",
	OperandInputPatchConstant:            "vpc",
	OperandInputDomainPoint:              "vDomain",
	OperandThisPointer:                   "this",
	OperandUnorderedAccessView:           "u",
	OperandThreadGroupSharedMemory:       "g",
	OperandInputThreadID:                 "vThreadID",
	OperandInputThreadGroupID:            "vThreadGroupID",
	OperandInputThreadIDInGroup:          "vThreadIDInGroup",
	OperandInputCoverageMask:             "vCoverage",
	OperandInputThreadIDInGroupFlattened: "vThreadIDInGroupFlattened",
	OperandInputGSInstanceID:             "vGSInstanceID",
	OperandOutputDepthGreaterEqual:       "oDepthGE",
	OperandOutputDepthLessEqual:          "oDepthLE",
	OperandCycleCounter:                  "vCycleCounter",
}

func (t OperandType) String() string {
	if t < operandTypeCount {
		return registerNames[t]
	}
	return fmt.Sprintf("operand_%d", uint8(t))
}

// Operand token fields.
const (
	numComponentsMask  = 0x3
	selectionModeShift = 2
	selectionModeMask  = 0x3
	componentShift     = 4
	operandTypeShift   = 12
	operandTypeMask    = 0xFF
	indexDimShift      = 20
	indexDimMask       = 0x3
	indexRepShift      = 22
	indexRepBits       = 3
	extendedBit        = 1 << 31

	extendedTypeMask     = 0x3F
	extendedTypeModifier = 1
	modifierShift        = 6
	modifierMask         = 0xFF
)

// Component selection modes.
const (
	selectMask = iota
	selectSwizzle
	selectOne
)

// Index representations.
const (
	indexImm32 = iota
	indexImm64
	indexRelative
	indexImm32Relative
	indexImm64Relative
)

const components = "xyzw"

// reader walks a dword slice.
type reader struct {
	words []uint32
	pos   int
}

func (r *reader) next() (uint32, error) {
	if r.pos >= len(r.words) {
		return 0, fmt.Errorf("unexpected end of instruction at dword %d", r.pos)
	}
	w := r.words[r.pos]
	r.pos++
	return w, nil
}

func (r *reader) done() bool {
	return r.pos >= len(r.words)
}

// decodeOperand reads one operand token and its trailing dwords.
func decodeOperand(r *reader) (usil.Operand, error) {
	tok, err := r.next()
	if err != nil {
		return usil.Operand{}, err
	}

	typ := OperandType((tok >> operandTypeShift) & operandTypeMask)
	if typ >= operandTypeCount {
		return usil.Operand{}, fmt.Errorf("unknown operand type %d", typ)
	}
	op := usil.Operand{Kind: usil.OperandRegister, Name: typ.String()}

	if tok&extendedBit != 0 {
		ext, err := r.next()
		if err != nil {
			return usil.Operand{}, err
		}
		if ext&extendedTypeMask == extendedTypeModifier {
			op.Modifier = usil.Modifier((ext >> modifierShift) & modifierMask)
		}
	}

	numComponents := 0
	switch tok & numComponentsMask {
	case 1:
		numComponents = 1
	case 2:
		numComponents = 4
		op.Swizzle = decodeSelection(tok)
	case 3:
		return usil.Operand{}, fmt.Errorf("n-component operands are not supported")
	}

	if typ == OperandImmediate32 || typ == OperandImmediate64 {
		n := max(numComponents, 1)
		if typ == OperandImmediate64 {
			n *= 2
		}
		op.Kind = usil.OperandLiteral
		op.Name = ""
		op.Swizzle = ""
		op.Imm = make([]uint32, n)
		for i := range op.Imm {
			if op.Imm[i], err = r.next(); err != nil {
				return usil.Operand{}, err
			}
		}
		return op, nil
	}

	dims := int((tok >> indexDimShift) & indexDimMask)
	if dims > 0 {
		op.Index = make([]uint32, dims)
	}
	for d := range dims {
		rep := (tok >> (indexRepShift + uint(d)*indexRepBits)) & (1<<indexRepBits - 1)
		switch rep {
		case indexImm32, indexImm32Relative:
			if op.Index[d], err = r.next(); err != nil {
				return usil.Operand{}, err
			}
		case indexImm64, indexImm64Relative:
			hi, err := r.next()
			if err != nil {
				return usil.Operand{}, err
			}
			lo, err := r.next()
			if err != nil {
				return usil.Operand{}, err
			}
			if hi != 0 {
				return usil.Operand{}, fmt.Errorf("64-bit index %#x%08x out of range", hi, lo)
			}
			op.Index[d] = lo
		case indexRelative:
		default:
			return usil.Operand{}, fmt.Errorf("unknown index representation %d", rep)
		}

		if rep == indexRelative || rep == indexImm32Relative || rep == indexImm64Relative {
			if op.Rel != nil {
				return usil.Operand{}, fmt.Errorf("more than one relative index on %s", typ)
			}
			rel, err := decodeOperand(r)
			if err != nil {
				return usil.Operand{}, fmt.Errorf("relative index: %w", err)
			}
			op.Rel = &rel
			op.RelDim = d
		}
	}
	return op, nil
}

func decodeSelection(tok uint32) string {
	bits := tok >> componentShift
	switch (tok >> selectionModeShift) & selectionModeMask {
	case selectMask:
		var s []byte
		for i := range 4 {
			if bits&(1<<i) != 0 {
				s = append(s, components[i])
			}
		}
		return string(s)
	case selectSwizzle:
		s := make([]byte, 4)
		for i := range 4 {
			s[i] = components[(bits>>(2*i))&3]
		}
		return string(s)
	case selectOne:
		return string(components[bits&3])
	}
	return ""
}
