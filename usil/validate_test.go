package usil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	x := Sym("x")
	tests := []struct {
		name string
		ins  []Instruction
		want []string
	}{
		{
			name: "well formed",
			ins: []Instruction{
				Inst(OpFunction, Label("main")),
				Inst(OpLoop),
				Inst(OpIf, x),
				Inst(OpBreak),
				Inst(OpElse),
				Inst(OpContinue),
				Inst(OpEndIf),
				Inst(OpSwitch, x),
				Inst(OpCase, Lit("1")),
				Inst(OpBreak),
				Inst(OpDefault),
				Inst(OpEndSwitch),
				Inst(OpEndLoop),
				Inst(OpBranch, Label("L8")),
				Inst(OpLabel, Label("L8")),
				Inst(OpReturn),
			},
		},
		{
			name: "unclosed blocks",
			ins:  []Instruction{Inst(OpLoop), Inst(OpIf, x)},
			want: []string{
				"if opened at instruction 1 is never closed",
				"loop opened at instruction 0 is never closed",
			},
		},
		{
			name: "mismatched ends",
			ins:  []Instruction{Inst(OpIf, x), Inst(OpEndLoop), Inst(OpElse), Inst(OpElse), Inst(OpEndIf)},
			want: []string{
				"instruction 1: unmatched end of loop",
				"instruction 3: second else for if at instruction 0",
			},
		},
		{
			name: "misplaced control",
			ins:  []Instruction{Inst(OpBreak), Inst(OpContinue), Inst(OpCase, Lit("0")), Inst(OpElse)},
			want: []string{
				"instruction 0: break outside loop or switch",
				"instruction 1: continue outside loop",
				"instruction 2: case outside switch",
				"instruction 3: else without if",
			},
		},
		{
			name: "labels",
			ins: []Instruction{
				Inst(OpBranch, Label("nowhere")),
				Inst(OpLabel, Label("a")),
				Inst(OpLabel, Label("a")),
			},
			want: []string{
				"instruction 2: duplicate label @a",
				"instruction 0: branch to undefined label @nowhere",
			},
		},
		{
			name: "function closes dangling blocks",
			ins:  []Instruction{Inst(OpFunction, Label("f")), Inst(OpIf, x), Inst(OpFunction, Label("g"))},
			want: []string{"instruction 1: if not closed before func"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range Validate(Build(StageFragment, tt.ins)) {
				got = append(got, e.Error())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgram_Clone(t *testing.T) {
	p := Build(StageVertex, []Instruction{Inst(OpMove, Reg("r", 0), Reg("r", 1))})
	p.Bindings = []Binding{{Name: "tint", Kind: BindingConstant}}

	c := p.Clone()
	require.Equal(t, p, c)

	c.Instructions[0].Operands[0].Index[0] = 7
	c.Bindings[0].Name = "other"
	assert.Equal(t, uint32(0), p.Instructions[0].Operands[0].Index[0])
	assert.Equal(t, "tint", p.Bindings[0].Name)
}
