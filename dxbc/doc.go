// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package dxbc decodes Direct3D 10/11 shader bytecode (shader models 4.0
// through 5.1) and maps it onto USIL.
//
// # Container
//
// A DXBC blob is a chunk directory:
//
//	"DXBC" | checksum[16] | 1 | total size | chunk count | chunk offsets...
//
// The program lives in the SHDR (SM4) or SHEX (SM5) chunk. Signature and
// reflection chunks are ignored.
//
// # Token stream
//
// The program starts with a version token (program type in the high word,
// major and minor nibbles in the low byte) and a length token, followed by
// instructions. Each instruction token carries the opcode in bits 0..10 and
// its length in dwords in bits 24..30; customdata blocks carry their length
// in the following dword instead.
//
// Operands of ordinary instructions are decoded into usil.Operand values:
// register file and indices (relative indices recursively), component
// mask/swizzle/select, modifiers, and 32/64-bit immediates. Declaration
// operands are kept as raw literal words.
//
// # Mapping
//
// The embedded opcodes.yaml maps every supported opcode to USIL. Declarations
// and customdata map to nothing; geometry stream, atomic and bit-field
// opcodes are absent and rejected with usil.ErrUnsupportedOpcode.
package dxbc
