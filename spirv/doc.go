// Package spirv decodes SPIR-V binaries and maps them onto USIL.
//
// SPIR-V is the standard intermediate language for GPU shaders,
// used by Vulkan, OpenCL, and other APIs.
//
// # Decoding
//
// Decode accepts modules in either byte order and returns the header and
// every instruction in stream order:
//
//	m, err := spirv.Decode(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, in := range m.Instructions {
//		fmt.Println(in)
//	}
//
// Operands are decoded by a per-opcode layout: ids become %N register
// operands, literal numbers decimal literals, and strings quoted literals.
// OpExtInst calls into an imported GLSL.std.450 set are lifted to dedicated
// opcodes (GLSLSqrt, GLSLFMix, ...) so that they map like core arithmetic.
//
// # Mapping
//
// The embedded opcodes.yaml drops module-level declarations, debug
// information and types, and maps function bodies onto USIL with the
// result-type and result ids kept as the leading operands.
package spirv
