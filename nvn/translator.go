// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package nvn

import (
	"fmt"
	"strings"

	"github.com/gogpu/usc/usil"
)

// Translator turns one stage's console shader binary into a decoded
// context.
type Translator interface {
	Translate(code []byte) (Context, error)
}

// Context is a translated shader stage.
type Context interface {
	Instructions() []Instruction
}

// Instruction is one decoded machine instruction.
type Instruction struct {
	// Address is the byte offset of the instruction after the program
	// header.
	Address uint32
	Opcode  Opcode
	// Word is the raw encoding; zero for synthesized labels.
	Word     uint64
	Operands []usil.Operand
	Saturate bool

	// Predicate is the guard predicate register; PT (7) always executes.
	Predicate    uint8
	PredicateNeg bool
}

// Guarded reports whether the instruction is predicated.
func (i Instruction) Guarded() bool {
	return i.Predicate != PredicateTrue || i.PredicateNeg
}

// BackendOpcode implements usil.Source.
func (i Instruction) BackendOpcode() Opcode { return i.Opcode }

// BackendOperands implements usil.Source.
func (i Instruction) BackendOperands() []usil.Operand { return i.Operands }

// BackendFlags implements usil.Flagged.
func (i Instruction) BackendFlags() usil.Flags {
	if i.Saturate {
		return usil.FlagSaturate
	}
	return 0
}

// String renders the instruction as "@P0 fadd.sat R0, R1, R2".
func (i Instruction) String() string {
	var sb strings.Builder
	if i.Guarded() {
		sb.WriteByte('@')
		if i.PredicateNeg {
			sb.WriteByte('!')
		}
		if i.Predicate == PredicateTrue {
			sb.WriteString("PT ")
		} else {
			fmt.Fprintf(&sb, "P%d ", i.Predicate)
		}
	}
	sb.WriteString(i.Opcode.String())
	if i.Saturate {
		sb.WriteString(".sat")
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

// Shader is the Context produced by MaxwellTranslator.
type Shader struct {
	// Header is the shader program header.
	Header []byte
	insts  []Instruction
}

// Instructions implements Context.
func (s *Shader) Instructions() []Instruction { return s.insts }

// Pair is a translated vertex/fragment pair.
type Pair struct {
	Vertex   Context
	Fragment Context
}

// Stage returns the context of stage.
func (p *Pair) Stage(stage usil.Stage) Context {
	if stage == usil.StageVertex {
		return p.Vertex
	}
	return p.Fragment
}
