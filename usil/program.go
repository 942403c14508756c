package usil

import "strings"

// Flags are instruction modifiers carried through from the backend.
type Flags uint8

const (
	// FlagSaturate clamps the result to [0, 1].
	FlagSaturate Flags = 1 << iota
	// FlagTestZero inverts a conditional to test for zero.
	FlagTestZero
	// FlagTestNonZero marks an explicit non-zero test.
	FlagTestNonZero
)

// Instruction is a canonical instruction.
type Instruction struct {
	Op       Opcode
	Operands []Operand
	Flags    Flags
}

// Inst is a convenience constructor.
func Inst(op Opcode, operands ...Operand) Instruction {
	return Instruction{Op: op, Operands: operands}
}

// Clone returns a deep copy of in.
func (in Instruction) Clone() Instruction {
	if in.Operands != nil {
		ops := make([]Operand, len(in.Operands))
		for i, o := range in.Operands {
			ops[i] = o.Clone()
		}
		in.Operands = ops
	}
	return in
}

// String renders the instruction without indentation.
func (in Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(in.Op.String())
	if in.Flags&FlagTestZero != 0 {
		sb.WriteString("_z")
	}
	if in.Flags&FlagTestNonZero != 0 {
		sb.WriteString("_nz")
	}
	if in.Flags&FlagSaturate != 0 {
		sb.WriteString("_sat")
	}
	for i, o := range in.Operands {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(o.String())
	}
	return sb.String()
}

// Stage is a pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// BindingKind classifies a parameter binding.
type BindingKind uint8

const (
	BindingConstant BindingKind = iota
	BindingTexture
	BindingSampler
)

func (k BindingKind) String() string {
	switch k {
	case BindingConstant:
		return "constant"
	case BindingTexture:
		return "texture"
	case BindingSampler:
		return "sampler"
	default:
		return "unknown"
	}
}

// Binding ties a program operand to a declared shader parameter.
type Binding struct {
	// Name is the declared parameter name.
	Name string
	Kind BindingKind
	// Slot is the constant buffer, texture or sampler slot.
	Slot int
	// Offset is the byte offset inside the constant buffer.
	Offset int
}

// Program is a canonical USIL program.
type Program struct {
	Stage        Stage
	Instructions []Instruction
	Bindings     []Binding
}

// Build assembles a program from mapped instructions. The program owns a
// copy of the slice; the caller's slice is not retained.
func Build(stage Stage, instructions []Instruction) *Program {
	owned := make([]Instruction, len(instructions))
	copy(owned, instructions)
	return &Program{
		Stage:        stage,
		Instructions: owned,
	}
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Instructions)
}

// Clone returns a deep copy of p.
func (p *Program) Clone() *Program {
	c := &Program{Stage: p.Stage}
	if p.Instructions != nil {
		c.Instructions = make([]Instruction, len(p.Instructions))
		for i, in := range p.Instructions {
			c.Instructions[i] = in.Clone()
		}
	}
	if p.Bindings != nil {
		c.Bindings = append([]Binding(nil), p.Bindings...)
	}
	return c
}
