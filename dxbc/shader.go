// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gogpu/usc/usil"
)

// Opcode token fields.
const (
	opcodeMask         = 0x7FF
	opcodeSaturateBit  = 1 << 13
	opcodeTestBit      = 1 << 18
	opcodeLengthShift  = 24
	opcodeLengthMask   = 0x7F
	opcodeExtendedBit  = 1 << 31
	versionTypeShift   = 16
	versionMajorShift  = 4
	versionNibbleMask  = 0xF
	programHeaderWords = 2
)

// Instruction is one decoded shader instruction.
type Instruction struct {
	Opcode   Opcode
	Operands []usil.Operand
	// Saturate is the _sat modifier.
	Saturate bool
	// TestNonZero selects the _nz form of conditional instructions.
	TestNonZero bool
	// Conditional is set for opcodes that test a value.
	Conditional bool
}

// BackendOpcode implements usil.Source.
func (i Instruction) BackendOpcode() Opcode { return i.Opcode }

// BackendOperands implements usil.Source.
func (i Instruction) BackendOperands() []usil.Operand { return i.Operands }

// BackendFlags implements usil.Flagged.
func (i Instruction) BackendFlags() usil.Flags {
	var f usil.Flags
	if i.Saturate {
		f |= usil.FlagSaturate
	}
	if i.Conditional {
		if i.TestNonZero {
			f |= usil.FlagTestNonZero
		} else {
			f |= usil.FlagTestZero
		}
	}
	return f
}

// String renders the instruction in disassembly form.
func (i Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(i.Opcode.String())
	if i.Conditional {
		if i.TestNonZero {
			sb.WriteString("_nz")
		} else {
			sb.WriteString("_z")
		}
	}
	if i.Saturate {
		sb.WriteString("_sat")
	}
	for n, o := range i.Operands {
		if n == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(o.String())
	}
	return sb.String()
}

// Shader is a decoded DXBC program.
type Shader struct {
	ProgramType  ProgramType
	ShaderModel  ShaderModel
	Instructions []Instruction
}

// Profile returns the shader's profile name, e.g. "vs_5_0".
func (s *Shader) Profile() string {
	return Profile(s.ProgramType, s.ShaderModel)
}

// Parse decodes a DXBC container. Malformed input is a usil.ErrFormat error.
func Parse(data []byte) (*Shader, error) {
	c, err := ParseContainer(data)
	if err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseParse, "dxbc.Parse", err, "invalid container")
	}
	chunk, ok := c.Chunk("SHEX", "SHDR")
	if !ok {
		return nil, usil.NewError(usil.ErrFormat, usil.PhaseParse, "dxbc.Parse", "container has no SHDR or SHEX chunk")
	}
	s, err := ParseProgram(chunk.Data)
	if err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseParse, "dxbc.Parse", err, "invalid "+chunk.FourCC+" chunk")
	}
	return s, nil
}

// ParseProgram decodes a bare SHDR/SHEX token stream.
func ParseProgram(code []byte) (*Shader, error) {
	if len(code)%4 != 0 {
		return nil, fmt.Errorf("program length %d is not a multiple of 4", len(code))
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[4*i:])
	}
	if len(words) < programHeaderWords {
		return nil, fmt.Errorf("program has no version and length tokens")
	}

	version := words[0]
	sm, err := shaderModelFor((version>>versionMajorShift)&versionNibbleMask, version&versionNibbleMask)
	if err != nil {
		return nil, err
	}
	pt := ProgramType(version >> versionTypeShift)
	if pt > ProgramCompute {
		return nil, fmt.Errorf("unknown program type %d", pt)
	}
	length := int(words[1])
	if length < programHeaderWords || length > len(words) {
		return nil, fmt.Errorf("program length %d dwords does not fit %d available", length, len(words))
	}

	s := &Shader{ProgramType: pt, ShaderModel: sm}
	pos := programHeaderWords
	for pos < length {
		in, n, err := decodeInstruction(words[pos:length])
		if err != nil {
			return nil, fmt.Errorf("instruction at dword %d: %w", pos, err)
		}
		s.Instructions = append(s.Instructions, in)
		pos += n
	}
	return s, nil
}

// decodeInstruction decodes the instruction at the start of words and
// returns it with its length in dwords.
func decodeInstruction(words []uint32) (Instruction, int, error) {
	tok := words[0]
	op := Opcode(tok & opcodeMask)
	if op >= opcodeCount {
		return Instruction{}, 0, fmt.Errorf("unknown opcode %d", uint16(op))
	}

	n := int((tok >> opcodeLengthShift) & opcodeLengthMask)
	if op == OpCustomdata {
		if len(words) < 2 {
			return Instruction{}, 0, fmt.Errorf("customdata without length")
		}
		n = int(words[1])
	}
	if n == 0 || n > len(words) {
		return Instruction{}, 0, fmt.Errorf("%s length %d does not fit %d remaining dwords", op, n, len(words))
	}

	in := Instruction{
		Opcode:      op,
		Saturate:    tok&opcodeSaturateBit != 0,
		Conditional: op.hasTest(),
		TestNonZero: op.hasTest() && tok&opcodeTestBit != 0,
	}

	body := words[1:n]
	if op == OpCustomdata {
		body = words[2:n]
	}
	if op.hasRawOperands() {
		for _, w := range body {
			in.Operands = append(in.Operands, usil.Imm(w))
		}
		return in, n, nil
	}

	r := &reader{words: body}
	if tok&opcodeExtendedBit != 0 {
		// Extended opcode tokens (sample offsets, resource dims) chain on bit 31.
		for {
			ext, err := r.next()
			if err != nil {
				return Instruction{}, 0, err
			}
			if ext&opcodeExtendedBit == 0 {
				break
			}
		}
	}
	for !r.done() {
		o, err := decodeOperand(r)
		if err != nil {
			return Instruction{}, 0, fmt.Errorf("%s operand %d: %w", op, len(in.Operands), err)
		}
		in.Operands = append(in.Operands, o)
	}
	return in, n, nil
}
