package usil

import (
	"fmt"
	"strconv"
	"strings"
)

// OperandKind classifies an operand.
type OperandKind uint8

const (
	// OperandRegister is a register file reference such as r0, cb1[4] or %12.
	OperandRegister OperandKind = iota
	// OperandLiteral is an immediate value, either source text or raw words.
	OperandLiteral
	// OperandSymbol is a named value from source-level backends.
	OperandSymbol
	// OperandLabel names a function, block or branch target.
	OperandLabel
)

func (k OperandKind) String() string {
	switch k {
	case OperandRegister:
		return "register"
	case OperandLiteral:
		return "literal"
	case OperandSymbol:
		return "symbol"
	case OperandLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Modifier is a source operand modifier.
type Modifier uint8

const (
	ModNone Modifier = iota
	ModNeg
	ModAbs
	ModAbsNeg
)

// Operand is a single instruction operand. Operands are carried from the
// backend instruction into the canonical one without reinterpretation.
type Operand struct {
	Kind OperandKind

	// Name is the register file ("r", "cb", "%"), the symbol or label name,
	// or the literal text.
	Name string

	// Index holds register indices, outermost first.
	Index []uint32

	// Rel is a relative addressing operand added to Index[RelDim].
	Rel    *Operand
	RelDim int

	// Swizzle is the component mask, swizzle or select, e.g. "xyzw" or "x".
	Swizzle string

	// Imm holds the raw words of a binary immediate.
	Imm []uint32

	Modifier Modifier
}

// Reg returns a register operand.
func Reg(file string, index ...uint32) Operand {
	return Operand{Kind: OperandRegister, Name: file, Index: index}
}

// ID returns a SPIR-V style result-id operand.
func ID(id uint32) Operand {
	return Reg("%", id)
}

// Sym returns a symbol operand.
func Sym(name string) Operand {
	return Operand{Kind: OperandSymbol, Name: name}
}

// Lit returns a literal operand carrying source text.
func Lit(text string) Operand {
	return Operand{Kind: OperandLiteral, Name: text}
}

// Imm returns a literal operand carrying raw immediate words.
func Imm(words ...uint32) Operand {
	return Operand{Kind: OperandLiteral, Imm: words}
}

// Label returns a label operand.
func Label(name string) Operand {
	return Operand{Kind: OperandLabel, Name: name}
}

// WithSwizzle returns a copy of o with the given swizzle.
func (o Operand) WithSwizzle(s string) Operand {
	o.Swizzle = s
	return o
}

// WithModifier returns a copy of o with the given modifier.
func (o Operand) WithModifier(m Modifier) Operand {
	o.Modifier = m
	return o
}

// Clone returns a deep copy of o.
func (o Operand) Clone() Operand {
	if o.Index != nil {
		o.Index = append([]uint32(nil), o.Index...)
	}
	if o.Imm != nil {
		o.Imm = append([]uint32(nil), o.Imm...)
	}
	if o.Rel != nil {
		rel := o.Rel.Clone()
		o.Rel = &rel
	}
	return o
}

// BaseName returns the symbol name without member or swizzle suffixes.
func (o Operand) BaseName() string {
	name := o.Name
	if i := strings.IndexAny(name, ".["); i >= 0 {
		name = name[:i]
	}
	return name
}

// String renders the operand in listing form.
func (o Operand) String() string {
	var sb strings.Builder
	switch o.Modifier {
	case ModNeg:
		sb.WriteByte('-')
	case ModAbsNeg:
		sb.WriteString("-|")
	case ModAbs:
		sb.WriteByte('|')
	}

	switch o.Kind {
	case OperandLiteral:
		if o.Name != "" || len(o.Imm) == 0 {
			sb.WriteString(o.Name)
		} else {
			sb.WriteString("l(")
			for i, w := range o.Imm {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString("0x")
				sb.WriteString(strconv.FormatUint(uint64(w), 16))
			}
			sb.WriteByte(')')
		}
	case OperandLabel:
		sb.WriteByte('@')
		sb.WriteString(o.Name)
	default:
		sb.WriteString(o.Name)
		o.writeIndices(&sb)
	}

	if o.Swizzle != "" {
		sb.WriteByte('.')
		sb.WriteString(o.Swizzle)
	}
	if o.Modifier == ModAbs || o.Modifier == ModAbsNeg {
		sb.WriteByte('|')
	}
	return sb.String()
}

func (o Operand) writeIndices(sb *strings.Builder) {
	for i, idx := range o.Index {
		switch {
		case o.Rel != nil && i == o.RelDim:
			fmt.Fprintf(sb, "[%s + %d]", o.Rel, idx)
		case i == 0:
			sb.WriteString(strconv.FormatUint(uint64(idx), 10))
		default:
			fmt.Fprintf(sb, "[%d]", idx)
		}
	}
}
