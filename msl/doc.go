// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package msl lowers Metal Shading Language source to three-address
// instructions and maps them onto USIL.
//
// The grammar is shared with the glsl package. Metal specifics:
//   - [[attribute]] lists are skipped
//   - #include and using namespace lines are dropped
//   - metal:: qualifiers are dropped
//   - template arguments on declaration types are skipped
//   - texture methods such as tex.sample(s, uv) lower to their own opcode
//     with the texture as the first source operand
//
// Calls without a result (tex.write, discard_fragment) lower without a
// destination.
package msl
