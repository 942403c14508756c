// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package dxbctest assembles small DXBC programs for tests.
package dxbctest

import (
	"encoding/binary"
	"strings"

	"github.com/gogpu/usc/dxbc"
)

// Inst is an instruction to encode.
type Inst struct {
	Op       dxbc.Opcode
	Sat      bool
	NonZero  bool
	Operands [][]uint32
}

// I is shorthand for an Inst with operands.
func I(op dxbc.Opcode, operands ...[]uint32) Inst {
	return Inst{Op: op, Operands: operands}
}

// Encode returns the token stream of insts without a program header.
func Encode(insts ...Inst) []uint32 {
	var out []uint32
	for _, in := range insts {
		body := []uint32{}
		for _, o := range in.Operands {
			body = append(body, o...)
		}
		if in.Op == dxbc.OpCustomdata {
			out = append(out, uint32(in.Op), uint32(len(body)+2))
			out = append(out, body...)
			continue
		}
		tok := uint32(in.Op) | uint32(len(body)+1)<<24
		if in.Sat {
			tok |= 1 << 13
		}
		if in.NonZero {
			tok |= 1 << 18
		}
		out = append(out, tok)
		out = append(out, body...)
	}
	return out
}

// Program returns a SHDR/SHEX token stream.
func Program(pt dxbc.ProgramType, major, minor uint32, insts ...Inst) []byte {
	code := Encode(insts...)
	words := append([]uint32{uint32(pt)<<16 | major<<4 | minor, uint32(len(code) + 2)}, code...)
	return wordsToBytes(words)
}

// Container wraps a program in a DXBC container with one chunk.
func Container(fourcc string, program []byte) []byte {
	const header = 32 + 4
	total := header + 8 + len(program)
	buf := make([]byte, 0, total)
	buf = append(buf, "DXBC"...)
	buf = append(buf, make([]byte, 16)...)
	buf = binary.LittleEndian.AppendUint32(buf, 1)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(total))
	buf = binary.LittleEndian.AppendUint32(buf, 1)
	buf = binary.LittleEndian.AppendUint32(buf, header)
	buf = append(buf, fourcc...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(program)))
	return append(buf, program...)
}

// Blob prefixes a container with an engine program header of the given size
// whose first byte is headerVersion.
func Blob(headerVersion byte, headerSize int, container []byte) []byte {
	if headerSize == 0 {
		return append([]byte(nil), container...)
	}
	buf := make([]byte, headerSize, headerSize+len(container))
	buf[0] = headerVersion
	return append(buf, container...)
}

func wordsToBytes(words []uint32) []byte {
	buf := make([]byte, 0, 4*len(words))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return buf
}

const xyzw = "xyzw"

func operandToken(typ dxbc.OperandType, dims int) uint32 {
	return uint32(typ)<<12 | uint32(dims)<<20
}

// Mask returns a 4-component register operand with a write mask.
func Mask(typ dxbc.OperandType, index uint32, mask string) []uint32 {
	tok := operandToken(typ, 1) | 2
	for _, c := range mask {
		tok |= 1 << (4 + strings.IndexRune(xyzw, c))
	}
	return []uint32{tok, index}
}

// Swizzle returns a 4-component register operand with a swizzle.
func Swizzle(typ dxbc.OperandType, index uint32, swizzle string) []uint32 {
	return []uint32{swizzleToken(operandToken(typ, 1), swizzle), index}
}

// Select returns a 4-component register operand selecting one component.
func Select(typ dxbc.OperandType, index uint32, comp rune) []uint32 {
	tok := operandToken(typ, 1) | 2 | 2<<2 | uint32(strings.IndexRune(xyzw, comp))<<4
	return []uint32{tok, index}
}

// Bare returns a register operand without components, e.g. s0.
func Bare(typ dxbc.OperandType, index uint32) []uint32 {
	return []uint32{operandToken(typ, 1), index}
}

// CB returns a constant buffer operand cb<slot>[<vec>] with a swizzle.
func CB(slot, vec uint32, swizzle string) []uint32 {
	return []uint32{swizzleToken(operandToken(dxbc.OperandConstantBuffer, 2), swizzle), slot, vec}
}

// CBRel returns cb<slot>[rel + vec].
func CBRel(slot, vec uint32, swizzle string, rel []uint32) []uint32 {
	tok := swizzleToken(operandToken(dxbc.OperandConstantBuffer, 2), swizzle) | 3<<25
	return append([]uint32{tok, slot, vec}, rel...)
}

// Imm32 returns a 1- or 4-component immediate.
func Imm32(vals ...uint32) []uint32 {
	tok := operandToken(dxbc.OperandImmediate32, 0)
	if len(vals) == 1 {
		tok |= 1
	} else {
		tok |= 2 | 0xE4<<4
	}
	return append([]uint32{tok}, vals...)
}

// Neg negates an operand through the extended modifier token.
func Neg(op []uint32) []uint32 {
	out := []uint32{op[0] | 1<<31, 1 | 1<<6}
	return append(out, op[1:]...)
}

// Raw returns raw declaration words.
func Raw(words ...uint32) []uint32 {
	return words
}

func swizzleToken(tok uint32, swizzle string) uint32 {
	tok |= 2 | 1<<2
	for i, c := range swizzle {
		tok |= uint32(strings.IndexRune(xyzw, c)) << (4 + 2*i)
	}
	return tok
}
