// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"

	"github.com/gogpu/usc/internal/cfront"
	"github.com/gogpu/usc/usil"
)

// Instruction is one lowered GLSL instruction. When it produces a value,
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

// String renders the instruction as "op[_z|_nz] a, b".
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
	Builtins: cfront.Set(builtinNames()...),
	Types: cfront.Set(
		"void", "bool", "int", "uint", "float",
		"vec2", "vec3", "vec4", "ivec2", "ivec3", "ivec4",
		"uvec2", "uvec3", "uvec4", "bvec2", "bvec3", "bvec4",
		"mat2", "mat3", "mat4", "mat2x2", "mat2x3", "mat2x4",
		"mat3x2", "mat3x3", "mat3x4", "mat4x2", "mat4x3", "mat4x4",
	),
	Qualifiers: cfront.Set(
		"const", "highp", "mediump", "lowp", "precise", "invariant",
		"in", "out", "inout",
	),
}

// Parse lowers the functions of the stage's section of source. Sources
// without stage sections are parsed whole. Syntax errors are
// usil.ErrFormat errors wrapping a *cfront.SourceError.
func Parse(source string, stage usil.Stage) ([]Instruction, error) {
	if HasStageSections(source) {
		source = SelectStage(source, stage)
	}
	lowered, err := cfront.Parse(source, dialect)
	if err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseParse, "glsl.Parse", err, "invalid GLSL source")
	}
	out := make([]Instruction, len(lowered))
	for i, in := range lowered {
		op, ok := ParseOpcode(in.Op)
		if !ok {
			return nil, usil.Errorf(usil.ErrFormat, usil.PhaseParse, "glsl.Parse", "unknown lowered opcode %q", in.Op)
		}
		out[i] = Instruction{Opcode: op, Operands: in.Operands, Flags: in.Flags}
	}
	return out, nil
}
