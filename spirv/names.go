package spirv

import (
	"fmt"
	"sync"
)

// String returns the opcode's SPIR-V name, e.g. "OpFAdd" or
// "GLSL.std.450.Sqrt".
func (op OpCode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	if op >= GLSLStd450Base {
		return fmt.Sprintf("GLSL.std.450.%d", uint16(op-GLSLStd450Base))
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

// IsGLSLStd450 reports whether op is a lifted GLSL.std.450 instruction.
func (op OpCode) IsGLSLStd450() bool {
	return op >= GLSLStd450Base
}

var (
	opcodesByNameOnce sync.Once
	opcodesByName     map[string]OpCode
)

// ParseOpCode returns the opcode with the given name.
func ParseOpCode(name string) (OpCode, bool) {
	opcodesByNameOnce.Do(func() {
		opcodesByName = make(map[string]OpCode, len(opcodeNames))
		for op, n := range opcodeNames {
			opcodesByName[n] = op
		}
	})
	op, ok := opcodesByName[name]
	return op, ok
}
