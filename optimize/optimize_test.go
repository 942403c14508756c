package optimize_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/optimize"
	"github.com/gogpu/usc/usil"
)

func r(i uint32) usil.Operand { return usil.Reg("r", i) }

func listing(p *usil.Program) []string {
	out := make([]string, len(p.Instructions))
	for i, in := range p.Instructions {
		out[i] = in.String()
	}
	return out
}

func TestDropNops(t *testing.T) {
	p := usil.Build(usil.StageFragment, []usil.Instruction{
		usil.Inst(usil.OpNop),
		usil.Inst(usil.OpAdd, r(0), r(1), r(2)),
		usil.Inst(usil.OpComment, usil.Lit("; hi")),
		usil.Inst(usil.OpReturn),
	})
	require.NoError(t, optimize.DropNops.Run(p, asset.Params{}))
	assert.Equal(t, []string{"add r0, r1, r2", "ret"}, listing(p))
}

func TestDropSelfMoves(t *testing.T) {
	tests := []struct {
		name string
		in   usil.Instruction
		drop bool
	}{
		{"full swizzle", usil.Inst(usil.OpMove, r(0).WithSwizzle("xyzw"), r(0).WithSwizzle("xyzw")), true},
		{"no swizzle", usil.Inst(usil.OpMove, usil.Sym("c"), usil.Sym("c")), true},
		{"masked dxbc swizzle", usil.Inst(usil.OpMove, r(0).WithSwizzle("xy"), r(0).WithSwizzle("xyxx")), true},
		{"positional swizzle", usil.Inst(usil.OpMove, usil.Sym("c").WithSwizzle("zw"), usil.Sym("c").WithSwizzle("zw")), true},
		{"different register", usil.Inst(usil.OpMove, r(0), r(1)), false},
		{"shuffled", usil.Inst(usil.OpMove, r(0).WithSwizzle("xy"), r(0).WithSwizzle("yxzw")), false},
		{"negated", usil.Inst(usil.OpMove, r(0), r(0).WithModifier(usil.ModNeg)), false},
		{"saturated", usil.Instruction{Op: usil.OpMove, Operands: []usil.Operand{r(0), r(0)}, Flags: usil.FlagSaturate}, false},
		{"not a move", usil.Inst(usil.OpAdd, r(0), r(0)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := usil.Build(usil.StageVertex, []usil.Instruction{tt.in})
			require.NoError(t, optimize.DropSelfMoves.Run(p, asset.Params{}))
			if tt.drop {
				assert.Empty(t, p.Instructions)
			} else {
				assert.Len(t, p.Instructions, 1)
			}
		})
	}
}

var params = asset.Params{
	ConstantBuffers: []asset.ConstantBuffer{{
		Name: "Globals",
		Slot: 0,
		Size: 96,
		Params: []asset.NumericParam{
			{Name: "_Color", Index: 0, Rows: 1, Columns: 4},
			{Name: "_MainTex_ST", Index: 16, Rows: 1, Columns: 4},
			{Name: "_Matrix", Index: 32, Rows: 4, Columns: 4},
		},
	}},
	Textures: []asset.TextureParam{{Name: "_MainTex", Index: 0, SamplerIndex: 0, Dim: 2}},
}

func TestBindParameters(t *testing.T) {
	p := usil.Build(usil.StageFragment, []usil.Instruction{
		usil.Inst(usil.OpSample, r(0), usil.Reg("v", 1), usil.Reg("t", 0), usil.Reg("s", 0)),
		usil.Inst(usil.OpMul, r(0), r(0), usil.Reg("cb", 0, 0)),
		usil.Inst(usil.OpMad, r(1), usil.Reg("cb", 0, 3), r(0), usil.Sym("_Color")),
		usil.Inst(usil.OpMul, r(1), usil.Sym("Globals._MainTex_ST.xy"), usil.Sym("unrelated")),
		usil.Inst(usil.OpMove, r(2), usil.Reg("cb", 4, 0)),
	})
	require.NoError(t, optimize.BindParameters.Run(p, params))

	want := []usil.Binding{
		{Name: "_MainTex", Kind: usil.BindingTexture, Slot: 0},
		{Name: "_MainTex", Kind: usil.BindingSampler, Slot: 0},
		{Name: "_Color", Kind: usil.BindingConstant, Slot: 0, Offset: 0},
		{Name: "_Matrix", Kind: usil.BindingConstant, Slot: 0, Offset: 32},
		{Name: "_MainTex_ST", Kind: usil.BindingConstant, Slot: 0, Offset: 16},
	}
	if diff := cmp.Diff(want, p.Bindings); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestBindParameters_TextureWithoutSampler(t *testing.T) {
	var params asset.Params
	require.NoError(t, yaml.Unmarshal([]byte("textures:\n  - {name: _Noise, index: 0, dim: 2}\n"), &params))
	p := usil.Build(usil.StageFragment, []usil.Instruction{
		usil.Inst(usil.OpSample, r(0), usil.Reg("v", 1), usil.Reg("t", 0), usil.Reg("s", 0)),
	})
	require.NoError(t, optimize.BindParameters.Run(p, params))
	assert.Equal(t, []usil.Binding{{Name: "_Noise", Kind: usil.BindingTexture, Slot: 0}}, p.Bindings)
}

func TestBindParameters_RelativeIndex(t *testing.T) {
	rel := usil.Reg("cb", 0, 2)
	idx := usil.Sym("_Color").WithSwizzle("x")
	rel.Rel, rel.RelDim = &idx, 1
	p := usil.Build(usil.StageVertex, []usil.Instruction{usil.Inst(usil.OpMove, r(0), rel)})

	require.NoError(t, optimize.BindParameters.Run(p, params))
	require.Len(t, p.Bindings, 2)
	assert.Equal(t, "_Color", p.Bindings[0].Name)
	assert.Equal(t, "_Matrix", p.Bindings[1].Name)
}

func TestOptimizer_Default(t *testing.T) {
	o := optimize.Default()
	assert.Equal(t, []string{"DropNops", "DropSelfMoves", "BindParameters"}, o.Passes())

	p := usil.Build(usil.StageFragment, []usil.Instruction{
		usil.Inst(usil.OpNop),
		usil.Inst(usil.OpMove, r(0).WithSwizzle("xyzw"), r(0).WithSwizzle("xyzw")),
		usil.Inst(usil.OpMul, usil.Reg("o", 0), r(0), usil.Reg("cb", 0, 1)),
		usil.Inst(usil.OpReturn),
	})
	require.NoError(t, o.Optimize(p, params))
	assert.Equal(t, []string{"mul o0, r0, cb0[1]", "ret"}, listing(p))
	assert.Equal(t, []usil.Binding{{Name: "_MainTex_ST", Kind: usil.BindingConstant, Offset: 16}}, p.Bindings)
}

func TestOptimizer_PassFailure(t *testing.T) {
	cause := errors.New("boom")
	o := optimize.New(optimize.DropNops, optimize.Pass{
		Name: "Explode",
		Run:  func(*usil.Program, asset.Params) error { return cause },
	})
	err := o.Optimize(usil.Build(usil.StageVertex, nil), asset.Params{})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "optimize.Explode")
}
