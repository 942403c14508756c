// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	_ "embed"

	"github.com/gogpu/usc/usil"
)

//go:embed opcodes.yaml
var opcodesYAML []byte

// DefaultTable maps lowered Metal opcodes to USIL.
var DefaultTable = usil.MustLoadTable("msl", opcodesYAML, ParseOpcode)

// LoadTable builds a table from a YAML document.
func LoadTable(data []byte) (*usil.Table[Opcode], error) {
	return usil.LoadTable("msl", data, ParseOpcode)
}

// Translate maps instructions through t, or DefaultTable when t is nil.
func Translate(instructions []Instruction, t *usil.Table[Opcode]) ([]usil.Instruction, error) {
	if t == nil {
		t = DefaultTable
	}
	return usil.Translate(t, instructions)
}
