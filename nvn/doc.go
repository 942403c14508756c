// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package nvn decodes console (NVN) shader binaries and maps them onto
// USIL.
//
// Instruction-level translation sits behind the Translator interface so
// callers can plug in a full decompiler. The built-in MaxwellTranslator
// covers the register forms of the common ALU operations, attribute
// interpolation, texture fetch, kill and the basic control flow
// instructions:
//
//	header[0x50] | bundle | bundle | ...
//	bundle = sched | insn | insn | insn
//
// Operation fields are matched against a mask/test table on the top 16
// bits of each word. Register fields are Rd (bits 0..7), Ra (8..15), Rb
// (20..27) and Rc (39..46); register 255 is RZ. Predicate guards are
// decoded and printed but do not change the mapped opcode.
package nvn
