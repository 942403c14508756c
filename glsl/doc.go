// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl lowers OpenGL ES shader source to three-address
// instructions and maps them onto USIL.
//
// Engine GLES programs carry both stages in one source, split by
// preprocessor sections:
//
//	#ifdef VERTEX
//	void main() { ... }
//	#endif
//	#ifdef FRAGMENT
//	void main() { ... }
//	#endif
//
// Parse keeps the section of the requested stage and drops every other
// preprocessor line. Only function bodies produce instructions; uniforms,
// varyings, structs and blocks are skipped. Builtin calls such as texture
// or inversesqrt get their own opcode, user functions lower to call, and
// intermediate values are held in temporaries _t0, _t1, ... numbered per
// function.
package glsl
