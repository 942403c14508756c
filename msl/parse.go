// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	"fmt"
	"strings"

	"github.com/gogpu/usc/internal/cfront"
	"github.com/gogpu/usc/usil"
)

// Instruction is one lowered Metal instruction. When it produces a value,
// the destination is the first operand.
type Instruction struct {
	Opcode   Opcode
	Operands []usil.Operand
	Flags    usil.Flags
}

// BackendOpcode implements usil.Source.
func (i Instruction) BackendOpcode() Opcode { return i.Opcode }

// BackendOperands implements usil.Source.
func (i Instruction) BackendOperands() []usil.Operand { return i.Operands }

// BackendFlags implements usil.Flagged.
func (i Instruction) BackendFlags() usil.Flags { return i.Flags }

func (i Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(i.Opcode.String())
	switch {
	case i.Flags&usil.FlagTestZero != 0:
		sb.WriteString("_z")
	case i.Flags&usil.FlagTestNonZero != 0:
		sb.WriteString("_nz")
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

var dialect = &cfront.Dialect{
	Builtins: cfront.Set(namesBetween(OpDiscardFragment, opcodeCount)...),
	Methods:  cfront.Set(namesBetween(OpSample, OpDiscardFragment)...),
	Void:     cfront.Set(OpWrite.String(), OpDiscardFragment.String()),
	Types:    cfront.Set(scalarAndVectorTypes()...),
	Templated: cfront.Set(
		"as_type", "static_cast", "vec", "array",
	),
	Qualifiers: cfront.Set(
		"thread", "constant", "device", "threadgroup", "const", "constexpr", "static",
	),
	Attributes: true,
	Templates:  true,
}

func scalarAndVectorTypes() []string {
	names := []string{"void", "vec", "array"}
	for _, base := range []string{"float", "half", "int", "uint", "short", "ushort", "bool"} {
		names = append(names, base, base+"2", base+"3", base+"4")
	}
	for _, base := range []string{"float", "half"} {
		for c := 2; c <= 4; c++ {
			for r := 2; r <= 4; r++ {
				names = append(names, fmt.Sprintf("%s%dx%d", base, c, r))
			}
		}
		names = append(names, "packed_"+base+"3")
	}
	return names
}

// Parse lowers every function of a Metal source. Syntax errors are
// usil.ErrFormat errors wrapping a *cfront.SourceError.
func Parse(source string) ([]Instruction, error) {
	lowered, err := cfront.Parse(source, dialect)
	if err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseParse, "msl.Parse", err, "invalid Metal source")
	}
	out := make([]Instruction, len(lowered))
	for i, in := range lowered {
		op, ok := ParseOpcode(in.Op)
		if !ok {
			return nil, usil.Errorf(usil.ErrFormat, usil.PhaseParse, "msl.Parse", "unknown lowered opcode %q", in.Op)
		}
		operands := in.Operands
		if op == OpSelect && len(operands) == 4 {
			// select(f, t, c) becomes (c, t, f).
			operands = []usil.Operand{operands[0], operands[3], operands[2], operands[1]}
		}
		out[i] = Instruction{Opcode: op, Operands: operands, Flags: in.Flags}
	}
	return out, nil
}
