// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package nvn

import "fmt"

// Opcode is a decoded Maxwell operation. Sub-operations selected by a
// field of the instruction word (MUFU functions, LOP operations) are
// separate opcodes.
type Opcode uint8

const (
	OpFADD Opcode = iota
	OpFMUL
	OpFFMA
	OpIADD
	OpMOV
	OpMUFUCos
	OpMUFUSin
	OpMUFUEx2
	OpMUFULg2
	OpMUFURcp
	OpMUFURsq
	OpMUFUSqrt
	OpSHL
	OpSHR
	OpLOPAnd
	OpLOPOr
	OpLOPXor
	OpLOPPassB
	OpIPA
	OpTEX
	OpKIL
	OpBRA
	OpSYNC
	OpEXIT
	OpNOP

	// OpLabel marks a branch target. It is synthesized, not decoded.
	OpLabel

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OpFADD:     "fadd",
	OpFMUL:     "fmul",
	OpFFMA:     "ffma",
	OpIADD:     "iadd",
	OpMOV:      "mov",
	OpMUFUCos:  "mufu.cos",
	OpMUFUSin:  "mufu.sin",
	OpMUFUEx2:  "mufu.ex2",
	OpMUFULg2:  "mufu.lg2",
	OpMUFURcp:  "mufu.rcp",
	OpMUFURsq:  "mufu.rsq",
	OpMUFUSqrt: "mufu.sqrt",
	OpSHL:      "shl",
	OpSHR:      "shr",
	OpLOPAnd:   "lop.and",
	OpLOPOr:    "lop.or",
	OpLOPXor:   "lop.xor",
	OpLOPPassB: "lop.pass_b",
	OpIPA:      "ipa",
	OpTEX:      "tex",
	OpKIL:      "kil",
	OpBRA:      "bra",
	OpSYNC:     "sync",
	OpEXIT:     "exit",
	OpNOP:      "nop",
	OpLabel:    "label",
}

var opcodesByName = func() map[string]Opcode {
	m := make(map[string]Opcode, opcodeCount)
	for op, name := range opcodeNames {
		m[name] = Opcode(op)
	}
	return m
}()

func (op Opcode) String() string {
	if op < opcodeCount {
		return opcodeNames[op]
	}
	return fmt.Sprintf("nvn(%d)", uint8(op))
}

// ParseOpcode resolves an opcode by mnemonic.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// Opcodes returns every opcode in enum order.
func Opcodes() []Opcode {
	ops := make([]Opcode, opcodeCount)
	for i := range ops {
		ops[i] = Opcode(i)
	}
	return ops
}
