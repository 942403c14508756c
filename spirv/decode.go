package spirv

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/gogpu/usc/usil"
)

// Instruction is one decoded SPIR-V instruction. Ids decode to %N register
// operands, literal numbers and strings to literal operands.
type Instruction struct {
	Opcode   OpCode
	Operands []usil.Operand
}

// BackendOpcode implements usil.Source.
func (i Instruction) BackendOpcode() OpCode { return i.Opcode }

// BackendOperands implements usil.Source.
func (i Instruction) BackendOperands() []usil.Operand { return i.Operands }

// String renders the instruction in disassembly form.
func (i Instruction) String() string {
	parts := make([]string, 0, len(i.Operands)+1)
	parts = append(parts, i.Opcode.String())
	for _, o := range i.Operands {
		parts = append(parts, o.String())
	}
	return strings.Join(parts, " ")
}

// Module is a decoded SPIR-V module.
type Module struct {
	Version      Version
	Generator    uint32
	Bound        uint32
	Schema       uint32
	Instructions []Instruction
}

// Parse decodes a SPIR-V binary and returns its instructions in stream
// order.
func Parse(data []byte) ([]Instruction, error) {
	m, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return m.Instructions, nil
}

// Decode decodes a SPIR-V binary of either byte order. Instructions that
// call into an imported GLSL.std.450 set are lifted to their GLSLStd450
// opcodes with the set and instruction number dropped from the operands.
// Malformed input is a usil.ErrFormat error.
func Decode(data []byte) (*Module, error) {
	words, err := toWords(data)
	if err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseParse, "spirv.Parse", err, "invalid module")
	}

	m := &Module{
		Version:   versionFromWord(words[1]),
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
	}
	glslSets := map[uint32]bool{}

	for pos := headerWords; pos < len(words); {
		w := words[pos]
		op := OpCode(w & 0xFFFF)
		count := int(w >> 16)
		if count == 0 {
			return nil, usil.Errorf(usil.ErrFormat, usil.PhaseParse, "spirv.Parse",
				"%s at word %d has zero word count", op, pos)
		}
		if pos+count > len(words) {
			return nil, usil.Errorf(usil.ErrFormat, usil.PhaseParse, "spirv.Parse",
				"%s at word %d needs %d words, %d remain", op, pos, count, len(words)-pos)
		}

		in, err := decodeInstruction(op, words[pos+1:pos+count])
		if err != nil {
			return nil, usil.Wrap(usil.ErrFormat, usil.PhaseParse, "spirv.Parse", err,
				fmt.Sprintf("%s at word %d", op, pos))
		}
		switch op {
		case OpExtInstImport:
			if name, ok := stringOperand(in.Operands, 1); ok && name == extGLSLStd450 {
				glslSets[words[pos+1]] = true
			}
		case OpExtInst:
			if count >= 5 && glslSets[words[pos+3]] {
				in = liftGLSLStd450(in, words[pos+4])
			}
		}
		m.Instructions = append(m.Instructions, in)
		pos += count
	}
	return m, nil
}

// toWords checks the header and returns the module as host-order words.
func toWords(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of 4", len(data))
	}
	if len(data) < 4*headerWords {
		return nil, fmt.Errorf("length %d is shorter than the %d-word header", len(data), headerWords)
	}

	var order binary.ByteOrder = binary.LittleEndian
	switch magic := binary.LittleEndian.Uint32(data); magic {
	case MagicNumber:
	case bits.ReverseBytes32(MagicNumber):
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("bad magic number 0x%08x", magic)
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[4*i:])
	}
	return words, nil
}

func decodeInstruction(op OpCode, words []uint32) (Instruction, error) {
	in := Instruction{Opcode: op}
	l := layoutFor(op)

	pos := 0
	decode := func(kind byte) error {
		switch kind {
		case kindID:
			in.Operands = append(in.Operands, usil.ID(words[pos]))
			pos++
		case kindString:
			s, n, err := readString(words[pos:])
			if err != nil {
				return err
			}
			in.Operands = append(in.Operands, usil.Lit(strconv.Quote(s)))
			pos += n
		default:
			in.Operands = append(in.Operands, usil.Lit(strconv.FormatUint(uint64(words[pos]), 10)))
			pos++
		}
		return nil
	}

	for i := 0; i < len(l.prefix) && pos < len(words); i++ {
		if err := decode(l.prefix[i]); err != nil {
			return Instruction{}, err
		}
	}
	for pos < len(words) {
		for i := 0; i < len(l.repeat) && pos < len(words); i++ {
			if err := decode(l.repeat[i]); err != nil {
				return Instruction{}, err
			}
		}
	}
	return in, nil
}

// readString decodes a nul-terminated, word-padded UTF-8 string and returns
// it with the number of words it occupies.
func readString(words []uint32) (string, int, error) {
	var buf []byte
	for n, w := range words {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], w)
		if i := bytes.IndexByte(b[:], 0); i >= 0 {
			buf = append(buf, b[:i]...)
			return string(buf), n + 1, nil
		}
		buf = append(buf, b[:]...)
	}
	return "", 0, fmt.Errorf("unterminated string literal")
}

func stringOperand(ops []usil.Operand, i int) (string, bool) {
	if i >= len(ops) || ops[i].Kind != usil.OperandLiteral {
		return "", false
	}
	s, err := strconv.Unquote(ops[i].Name)
	return s, err == nil
}

// liftGLSLStd450 rewrites OpExtInst %type %result %set N args... into the
// GLSL.std.450 opcode N with operands %type %result args....
func liftGLSLStd450(in Instruction, number uint32) Instruction {
	if number > 0xFFF {
		return in
	}
	ops := make([]usil.Operand, 0, len(in.Operands)-2)
	ops = append(ops, in.Operands[:2]...)
	ops = append(ops, in.Operands[4:]...)
	return Instruction{Opcode: GLSLStd450Base + OpCode(number), Operands: ops}
}
