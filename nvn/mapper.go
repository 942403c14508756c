// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package nvn

import (
	_ "embed"

	"github.com/gogpu/usc/usil"
)

//go:embed opcodes.yaml
var opcodesYAML []byte

// DefaultTable maps Maxwell opcodes to USIL.
var DefaultTable = usil.MustLoadTable("nvn", opcodesYAML, ParseOpcode)

// LoadTable builds a table from a YAML document.
func LoadTable(data []byte) (*usil.Table[Opcode], error) {
	return usil.LoadTable("nvn", data, ParseOpcode)
}

// Translate maps a context's instructions through t, or DefaultTable when
// t is nil.
func Translate(ctx Context, t *usil.Table[Opcode]) ([]usil.Instruction, error) {
	if t == nil {
		t = DefaultTable
	}
	return usil.Translate(t, ctx.Instructions())
}

// TranslatePair runs tr over both stages of a pair. Nothing is returned
// unless both succeed.
func TranslatePair(tr Translator, vertex, fragment []byte) (*Pair, error) {
	vs, err := tr.Translate(vertex)
	if err != nil {
		return nil, stageError(err, "vertex")
	}
	fs, err := tr.Translate(fragment)
	if err != nil {
		return nil, stageError(err, "fragment")
	}
	return &Pair{Vertex: vs, Fragment: fs}, nil
}

// stageError keeps the kind of a translator error, defaulting to
// usil.ErrFormat for foreign translators.
func stageError(err error, stage string) error {
	kind, ok := usil.KindOf(err)
	if !ok {
		kind = usil.ErrFormat
	}
	return usil.Wrap(kind, usil.PhaseParse, "nvn.TranslatePair", err, stage+" stage")
}
