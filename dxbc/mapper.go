// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import (
	_ "embed"

	"github.com/gogpu/usc/usil"
)

//go:embed opcodes.yaml
var opcodesYAML []byte

// DefaultTable maps DirectX bytecode opcodes to USIL.
var DefaultTable = usil.MustLoadTable("dxbc", opcodesYAML, ParseOpcode)

// LoadTable builds a table from a YAML overlay document, for callers that
// replace the embedded defaults wholesale.
func LoadTable(data []byte) (*usil.Table[Opcode], error) {
	return usil.LoadTable("dxbc", data, ParseOpcode)
}

// Translate maps the shader's instructions through t, or DefaultTable when
// t is nil.
func Translate(s *Shader, t *usil.Table[Opcode]) ([]usil.Instruction, error) {
	if t == nil {
		t = DefaultTable
	}
	return usil.Translate(t, s.Instructions)
}

// Stage returns the USIL stage of a program type: vertex programs are
// vertex, everything else is fragment until metadata says otherwise.
func Stage(t ProgramType) usil.Stage {
	if t == ProgramVertex {
		return usil.StageVertex
	}
	return usil.StageFragment
}
