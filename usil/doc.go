// Package usil defines USIL, the canonical shader instruction language.
//
// Every backend frontend (DirectX bytecode, GLSL, SPIR-V, MSL, NVN) parses
// its native format into backend instructions, and a per-backend opcode
// Table maps those onto the shared canonical opcode set defined here.
//
// # Structure
//
// A Program holds:
//   - Stage: the pipeline stage (vertex or fragment)
//   - Instructions: canonical instructions in source order
//   - Bindings: parameter bindings attached by the optimizer
//
// # Translation Pipeline
//
//	container stream → payload → backend instructions → USIL → optimized USIL
//
// Opcode tables are data: each backend embeds an opcodes.yaml keyed by its
// own opcode names and loads it with LoadTable. An entry whose canonical
// value is "none" translates to zero instructions; an opcode missing from
// the table is an ErrUnsupportedOpcode error, never a silent drop.
package usil
