// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package nvn

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/usc/usil"
)

const (
	// HeaderSize is the size of the shader program header preceding the
	// code.
	HeaderSize = 0x50

	// PredicateTrue is the always-true predicate PT.
	PredicateTrue = 7

	// RZ is the zero register index.
	RZ = 255

	wordSize    = 8
	bundleWords = 4
)

// codec is the operand layout of an encoding.
type codec uint8

const (
	codecNone codec = iota
	codecDA         // Rd, Ra
	codecDB         // Rd, Rb
	codecDAB        // Rd, Ra, Rb
	codecDABC       // Rd, Ra, Rb, Rc
	codecIPA        // Rd, a[attr]
	codecTEX        // Rd, Ra, t<handle>
	codecBRA        // target
)

// encoding matches the top 16 bits of an instruction word: a word is an
// instance when top&mask == test.
type encoding struct {
	op    Opcode
	test  uint16
	mask  uint16
	codec codec
}

// encodings are tried in order.
var encodings = []encoding{
	{OpFADD, 0x5C58, 0xFFF8, codecDAB},
	{OpFMUL, 0x5C68, 0xFFF8, codecDAB},
	{OpFFMA, 0x5980, 0xFF80, codecDABC},
	{OpIADD, 0x5C10, 0xFFF8, codecDAB},
	{OpMOV, 0x5C98, 0xFFF8, codecDB},
	{OpMUFUCos, 0x5080, 0xFFF8, codecDA},
	{OpSHL, 0x5C48, 0xFFF8, codecDAB},
	{OpSHR, 0x5C28, 0xFFF8, codecDAB},
	{OpLOPAnd, 0x5C40, 0xFFF8, codecDAB},
	{OpIPA, 0xE000, 0xFF00, codecIPA},
	{OpTEX, 0xC038, 0xFC38, codecTEX},
	{OpKIL, 0xE330, 0xFFF8, codecNone},
	{OpBRA, 0xE240, 0xFFF0, codecBRA},
	{OpSYNC, 0xF0F8, 0xFFF8, codecNone},
	{OpEXIT, 0xE300, 0xFFF8, codecNone},
	{OpNOP, 0x50B0, 0xFFF8, codecNone},
}

// MUFU function field, bits 20..23.
var mufuOps = map[uint64]Opcode{
	0: OpMUFUCos,
	1: OpMUFUSin,
	2: OpMUFUEx2,
	3: OpMUFULg2,
	4: OpMUFURcp,
	5: OpMUFURsq,
	8: OpMUFUSqrt,
}

// LOP operation field, bits 41..42.
var lopOps = [4]Opcode{OpLOPAnd, OpLOPOr, OpLOPXor, OpLOPPassB}

// MaxwellTranslator decodes Maxwell machine code, the instruction set of
// the console GPU.
//
// Code after the header is a sequence of bundles of four 64-bit words; the
// first word of each bundle holds scheduling control for the other three.
// Decoding stops at the end of the buffer or at an all-zero instruction
// word. Branch targets get a synthesized label instruction.
type MaxwellTranslator struct{}

// Translate implements Translator. Malformed code is a usil.ErrFormat
// error naming the offending word.
func (MaxwellTranslator) Translate(code []byte) (Context, error) {
	const op = "nvn.Translate"

	if len(code) < HeaderSize {
		return nil, usil.Errorf(usil.ErrFormat, usil.PhaseParse, op,
			"%d bytes is shorter than the %#x-byte program header", len(code), HeaderSize)
	}
	body := code[HeaderSize:]
	if len(body)%wordSize != 0 {
		return nil, usil.Errorf(usil.ErrFormat, usil.PhaseParse, op,
			"code length %d is not a multiple of %d", len(body), wordSize)
	}

	s := &Shader{Header: bytes.Clone(code[:HeaderSize])}
	targets := make(map[uint32]bool)
	end := uint32(len(body))
	for i := 0; i*wordSize < len(body); i++ {
		if i%bundleWords == 0 {
			continue
		}
		addr := uint32(i * wordSize)
		w := binary.LittleEndian.Uint64(body[addr:])
		if w == 0 {
			end = addr
			break
		}
		in, err := decode(addr, w)
		if err != nil {
			return nil, usil.Errorf(usil.ErrFormat, usil.PhaseParse, op,
				"word %#016x at %#x: %v", w, addr, err)
		}
		if in.Opcode == OpBRA {
			target, err := branchTarget(addr, w)
			if err != nil {
				return nil, usil.Errorf(usil.ErrFormat, usil.PhaseParse, op,
					"word %#016x at %#x: %v", w, addr, err)
			}
			targets[target] = true
			in.Operands = []usil.Operand{usil.Label(labelName(target))}
		}
		s.insts = append(s.insts, in)
	}

	insts, err := placeLabels(s.insts, targets, end)
	if err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseParse, op, err, "invalid branch")
	}
	s.insts = insts
	return s, nil
}

func decode(addr uint32, w uint64) (Instruction, error) {
	top := uint16(w >> 48)
	enc, ok := lookupEncoding(top)
	if !ok {
		return Instruction{}, fmt.Errorf("unknown encoding %#04x", top)
	}

	in := Instruction{
		Address:      addr,
		Opcode:       enc.op,
		Word:         w,
		Predicate:    uint8(bits(w, 16, 3)),
		PredicateNeg: bits(w, 19, 1) != 0,
	}

	switch enc.op {
	case OpMUFUCos:
		sub, ok := mufuOps[bits(w, 20, 4)]
		if !ok {
			return Instruction{}, fmt.Errorf("unknown mufu function %d", bits(w, 20, 4))
		}
		in.Opcode = sub
	case OpLOPAnd:
		in.Opcode = lopOps[bits(w, 41, 2)]
	}

	rd, ra, rb, rc := reg(bits(w, 0, 8)), reg(bits(w, 8, 8)), reg(bits(w, 20, 8)), reg(bits(w, 39, 8))
	switch enc.op {
	case OpFADD:
		ra = ra.WithModifier(modifier(bits(w, 48, 1), bits(w, 46, 1)))
		rb = rb.WithModifier(modifier(bits(w, 45, 1), bits(w, 49, 1)))
		in.Saturate = bits(w, 50, 1) != 0
	case OpFMUL:
		rb = rb.WithModifier(modifier(bits(w, 48, 1), 0))
		in.Saturate = bits(w, 50, 1) != 0
	case OpFFMA:
		rb = rb.WithModifier(modifier(bits(w, 48, 1), 0))
		rc = rc.WithModifier(modifier(bits(w, 49, 1), 0))
		in.Saturate = bits(w, 50, 1) != 0
	}

	switch enc.codec {
	case codecDA:
		in.Operands = []usil.Operand{rd, ra}
	case codecDB:
		in.Operands = []usil.Operand{rd, rb}
	case codecDAB:
		in.Operands = []usil.Operand{rd, ra, rb}
	case codecDABC:
		in.Operands = []usil.Operand{rd, ra, rb, rc}
	case codecIPA:
		in.Operands = []usil.Operand{rd, usil.Sym(fmt.Sprintf("a[%#x]", bits(w, 28, 10)))}
	case codecTEX:
		in.Operands = []usil.Operand{rd, ra, usil.Reg("t", uint32(bits(w, 36, 13)))}
	}
	return in, nil
}

func lookupEncoding(top uint16) (encoding, bool) {
	for _, e := range encodings {
		if top&e.mask == e.test {
			return e, true
		}
	}
	return encoding{}, false
}

// branchTarget returns the address a BRA at addr jumps to: a signed 24-bit
// offset at bit 20, relative to the next instruction.
func branchTarget(addr uint32, w uint64) (uint32, error) {
	off := int64(int32(uint32(bits(w, 20, 24))<<8) >> 8)
	target := int64(addr) + wordSize + off
	if target < 0 || target%wordSize != 0 || (target/wordSize)%bundleWords == 0 {
		return 0, fmt.Errorf("branch target %#x is not an instruction slot", target)
	}
	return uint32(target), nil
}

// placeLabels inserts a label before each branch target. A target may also
// be the end of the code.
func placeLabels(insts []Instruction, targets map[uint32]bool, end uint32) ([]Instruction, error) {
	if len(targets) == 0 {
		return insts, nil
	}
	out := make([]Instruction, 0, len(insts)+len(targets))
	placed := 0
	label := func(addr uint32) Instruction {
		placed++
		return Instruction{Address: addr, Opcode: OpLabel, Predicate: PredicateTrue,
			Operands: []usil.Operand{usil.Label(labelName(addr))}}
	}
	for _, in := range insts {
		if targets[in.Address] {
			out = append(out, label(in.Address))
		}
		out = append(out, in)
	}
	if targets[end] {
		out = append(out, label(end))
	}
	if placed != len(targets) {
		for t := range targets {
			if t != end && !hasAddress(insts, t) {
				return nil, fmt.Errorf("branch target %#x is outside the decoded code", t)
			}
		}
	}
	return out, nil
}

func hasAddress(insts []Instruction, addr uint32) bool {
	for _, in := range insts {
		if in.Address == addr {
			return true
		}
	}
	return false
}

func labelName(addr uint32) string {
	return fmt.Sprintf("L%x", addr)
}

func bits(w uint64, shift, width uint) uint64 {
	return (w >> shift) & (1<<width - 1)
}

func reg(n uint64) usil.Operand {
	if n == RZ {
		return usil.Reg("RZ")
	}
	return usil.Reg("R", uint32(n))
}

func modifier(neg, abs uint64) usil.Modifier {
	switch {
	case neg != 0 && abs != 0:
		return usil.ModAbsNeg
	case neg != 0:
		return usil.ModNeg
	case abs != 0:
		return usil.ModAbs
	}
	return usil.ModNone
}
