package usil

import "fmt"

// ValidationError is a structural problem in a program.
type ValidationError struct {
	Message string
	// Instruction is the index of the offending instruction, or -1 for
	// problems found at the end of the program.
	Instruction int
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Instruction >= 0 {
		return fmt.Sprintf("instruction %d: %s", e.Instruction, e.Message)
	}
	return e.Message
}

// validator walks a program tracking open structured blocks.
type validator struct {
	errors []ValidationError
	blocks []block
	labels map[string]bool
	// branches are label uses, checked once all labels are known.
	branches []labelUse
}

type block struct {
	op  Opcode
	at  int
	saw bool // else or default already seen
}

type labelUse struct {
	name string
	at   int
}

// Validate checks structured control flow nesting and branch targets.
// It returns nil for a well-formed program. Unstructured code (label,
// branch, phi) is only checked for unresolved targets.
func Validate(p *Program) []ValidationError {
	v := &validator{labels: make(map[string]bool)}
	for i, in := range p.Instructions {
		v.instruction(i, in)
	}
	for i := len(v.blocks) - 1; i >= 0; i-- {
		b := v.blocks[i]
		v.errors = append(v.errors, ValidationError{
			Message:     fmt.Sprintf("%s opened at instruction %d is never closed", b.op, b.at),
			Instruction: -1,
		})
	}
	for _, use := range v.branches {
		if !v.labels[use.name] {
			v.addError(use.at, "branch to undefined label @%s", use.name)
		}
	}
	return v.errors
}

func (v *validator) instruction(i int, in Instruction) {
	switch in.Op {
	case OpFunction:
		for len(v.blocks) > 0 {
			b := v.pop()
			v.addError(b.at, "%s not closed before func", b.op)
		}
	case OpIf, OpLoop, OpSwitch:
		v.blocks = append(v.blocks, block{op: in.Op, at: i})
	case OpElse:
		if b := v.top(OpIf); b == nil {
			v.addError(i, "else without if")
		} else if b.saw {
			v.addError(i, "second else for if at instruction %d", b.at)
		} else {
			b.saw = true
		}
	case OpEndIf:
		v.close(i, OpIf)
	case OpEndLoop:
		v.close(i, OpLoop)
	case OpEndSwitch:
		v.close(i, OpSwitch)
	case OpCase, OpDefault:
		b := v.top(OpSwitch)
		switch {
		case b == nil:
			v.addError(i, "%s outside switch", in.Op)
		case in.Op == OpDefault && b.saw:
			v.addError(i, "second default in switch at instruction %d", b.at)
		case in.Op == OpDefault:
			b.saw = true
		}
	case OpBreak, OpBreakC:
		if !v.inside(OpLoop, OpSwitch) {
			v.addError(i, "%s outside loop or switch", in.Op)
		}
	case OpContinue, OpContinueC:
		if !v.inside(OpLoop) {
			v.addError(i, "%s outside loop", in.Op)
		}
	case OpLabel:
		if name, ok := labelOperand(in); ok {
			if v.labels[name] {
				v.addError(i, "duplicate label @%s", name)
			}
			v.labels[name] = true
		}
	case OpBranch, OpBranchC:
		for _, o := range in.Operands {
			if o.Kind == OperandLabel {
				v.branches = append(v.branches, labelUse{name: o.Name, at: i})
			}
		}
	}
}

func (v *validator) top(op Opcode) *block {
	if n := len(v.blocks); n > 0 && v.blocks[n-1].op == op {
		return &v.blocks[n-1]
	}
	return nil
}

func (v *validator) pop() block {
	b := v.blocks[len(v.blocks)-1]
	v.blocks = v.blocks[:len(v.blocks)-1]
	return b
}

func (v *validator) close(i int, op Opcode) {
	if v.top(op) == nil {
		v.addError(i, "unmatched end of %s", op)
		return
	}
	v.pop()
}

func (v *validator) inside(ops ...Opcode) bool {
	for i := len(v.blocks) - 1; i >= 0; i-- {
		for _, op := range ops {
			if v.blocks[i].op == op {
				return true
			}
		}
	}
	return false
}

func (v *validator) addError(i int, format string, args ...any) {
	v.errors = append(v.errors, ValidationError{Message: fmt.Sprintf(format, args...), Instruction: i})
}

func labelOperand(in Instruction) (string, bool) {
	for _, o := range in.Operands {
		if o.Kind == OperandLabel {
			return o.Name, true
		}
	}
	return "", false
}
