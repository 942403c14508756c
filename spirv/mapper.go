package spirv

import (
	_ "embed"

	"github.com/gogpu/usc/usil"
)

//go:embed opcodes.yaml
var opcodesYAML []byte

// DefaultTable maps SPIR-V opcodes to USIL.
var DefaultTable = usil.MustLoadTable("spirv", opcodesYAML, ParseOpCode)

// LoadTable builds a table from a YAML document keyed by SPIR-V opcode name.
func LoadTable(data []byte) (*usil.Table[OpCode], error) {
	return usil.LoadTable("spirv", data, ParseOpCode)
}

// Translate maps instructions through t, or DefaultTable when t is nil.
func Translate(instructions []Instruction, t *usil.Table[OpCode]) ([]usil.Instruction, error) {
	if t == nil {
		t = DefaultTable
	}
	return usil.Translate(t, instructions)
}
