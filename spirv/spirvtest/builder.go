// Package spirvtest assembles small SPIR-V modules for tests.
package spirvtest

import (
	"encoding/binary"

	"github.com/gogpu/usc/spirv"
)

// Generator is the header generator word of assembled modules.
const Generator = 0x00000000

// Words builds the operand words of one instruction.
type Words []uint32

// Str appends a nul-terminated, word-padded UTF-8 string.
func (w Words) Str(s string) Words {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	for i := 0; i < len(b); i += 4 {
		w = append(w, binary.LittleEndian.Uint32(b[i:]))
	}
	return w
}

// Builder assembles a module section by section. Sections are emitted in
// SPIR-V logical layout order regardless of call order.
type Builder struct {
	version spirv.Version

	preamble    []uint32 // capabilities, imports, memory model, entry points
	debug       []uint32 // OpName, OpMemberName
	annotations []uint32 // OpDecorate, OpMemberDecorate
	types       []uint32 // OpType*, OpConstant*, global OpVariable
	functions   []uint32

	nextID uint32
}

// New returns a builder for a module of the given version.
func New(version spirv.Version) *Builder {
	return &Builder{version: version, nextID: 1}
}

// ID allocates a new result id.
func (b *Builder) ID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

func encode(op spirv.OpCode, operands []uint32) []uint32 {
	out := make([]uint32, 0, len(operands)+1)
	out = append(out, uint32(len(operands)+1)<<16|uint32(op))
	return append(out, operands...)
}

// Capability declares a capability.
func (b *Builder) Capability(c uint32) {
	b.preamble = append(b.preamble, encode(spirv.OpCapability, Words{c})...)
}

// ExtInstImport imports an extended instruction set and returns its id.
func (b *Builder) ExtInstImport(name string) uint32 {
	id := b.ID()
	b.preamble = append(b.preamble, encode(spirv.OpExtInstImport, Words{id}.Str(name))...)
	return id
}

// MemoryModel sets Logical GLSL450 addressing.
func (b *Builder) MemoryModel() {
	b.preamble = append(b.preamble, encode(spirv.OpMemoryModel, Words{0, 1})...)
}

// EntryPoint declares an entry point with its interface ids.
func (b *Builder) EntryPoint(model, fn uint32, name string, interfaces ...uint32) {
	w := Words{model, fn}.Str(name)
	b.preamble = append(b.preamble, encode(spirv.OpEntryPoint, append(w, interfaces...))...)
}

// Name attaches a debug name.
func (b *Builder) Name(id uint32, name string) {
	b.debug = append(b.debug, encode(spirv.OpName, Words{id}.Str(name))...)
}

// Decorate decorates id.
func (b *Builder) Decorate(id, decoration uint32, params ...uint32) {
	b.annotations = append(b.annotations, encode(spirv.OpDecorate, append(Words{id, decoration}, params...))...)
}

// Type emits a type or constant instruction and returns its result id.
func (b *Builder) Type(op spirv.OpCode, operands ...uint32) uint32 {
	id := b.ID()
	b.types = append(b.types, encode(op, append(Words{id}, operands...))...)
	return id
}

// Constant emits OpConstant of typ and returns its id.
func (b *Builder) Constant(typ uint32, value ...uint32) uint32 {
	id := b.ID()
	b.types = append(b.types, encode(spirv.OpConstant, append(Words{typ, id}, value...))...)
	return id
}

// Variable emits a global OpVariable and returns its id.
func (b *Builder) Variable(ptrType, storageClass uint32) uint32 {
	id := b.ID()
	b.types = append(b.types, encode(spirv.OpVariable, Words{ptrType, id, storageClass})...)
	return id
}

// Op emits a function-body instruction with raw operand words.
func (b *Builder) Op(op spirv.OpCode, operands ...uint32) {
	b.functions = append(b.functions, encode(op, operands)...)
}

// Result emits a function-body instruction with a fresh result id after the
// result type and returns that id.
func (b *Builder) Result(op spirv.OpCode, resultType uint32, operands ...uint32) uint32 {
	id := b.ID()
	b.Op(op, append(Words{resultType, id}, operands...)...)
	return id
}

// Words returns the module as words, header included.
func (b *Builder) Words() []uint32 {
	out := []uint32{spirv.MagicNumber, b.version.Word(), Generator, b.nextID, 0}
	out = append(out, b.preamble...)
	out = append(out, b.debug...)
	out = append(out, b.annotations...)
	out = append(out, b.types...)
	return append(out, b.functions...)
}

// Build returns the little-endian module binary.
func (b *Builder) Build() []byte {
	return Bytes(binary.LittleEndian, b.Words())
}

// Bytes serializes words in the given byte order.
func Bytes(order binary.ByteOrder, words []uint32) []byte {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		order.PutUint32(buf[4*i:], w)
	}
	return buf
}
