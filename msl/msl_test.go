// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/usc/internal/cfront"
	"github.com/gogpu/usc/msl"
	"github.com/gogpu/usc/usil"
)

const fragmentSource = `#include <metal_stdlib>
using namespace metal;

struct FragIn { float4 pos [[position]]; float2 uv; };

fragment float4 frag_main(FragIn in [[stage_in]],
                          texture2d<float> tex [[texture(0)]],
                          sampler smp [[sampler(0)]],
                          constant float& cutoff [[buffer(0)]]) {
    float4 c = tex.sample(smp, in.uv);
    if (c.a < cutoff) {
        discard_fragment();
    }
    float l = metal::length(c.rgb);
    return select(c, float4(l), l > 0.5);
}
`

func listing(ins []msl.Instruction) []string {
	out := make([]string, len(ins))
	for i, in := range ins {
		out[i] = in.String()
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "fragment",
			source: fragmentSource,
			want: []string{
				"func @frag_main, in, tex, smp, cutoff",
				"sample c, tex, smp, in.uv",
				"lt _t1, c.w, cutoff",
				"if_nz _t1",
				"discard_fragment",
				"endif",
				"length l, c.xyz",
				"construct _t4, float4, l",
				"gt _t5, l, 0.5",
				"select _t6, _t5, _t4, c",
				"ret _t6",
			},
		},
		{
			name: "texture write",
			source: `kernel void k(texture2d<float> dst [[texture(0)]], uint2 gid [[thread_position_in_grid]]) {
    dst.write(float4(as_type<float>(gid.x)), gid);
}`,
			want: []string{
				"func @k, dst, gid",
				"as_type _t0, float, gid.x",
				"construct _t1, float4, _t0",
				"write dst, _t1, gid",
				"ret",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := msl.Parse(tt.source)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, listing(got)); diff != "" {
				t.Errorf("listing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Error(t *testing.T) {
	_, err := msl.Parse("fragment float4 f() {\n    return $;\n}")
	require.Error(t, err)
	assert.True(t, usil.IsKind(err, usil.ErrFormat))

	var se *cfront.SourceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Line)
}

func TestParse_TruncatedSource(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"parameter list", "void f(float a[) {}", "unterminated parameter list"},
		{"template arguments", "void f() { vector<float", ""},
		{"attribute opener", "x ( [[ ) {", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func(src string) {
				_, err := msl.Parse(src)
				done <- err
			}(tt.src)

			var err error
			select {
			case err = <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("Parse(%q) did not return", tt.src)
			}
			require.Error(t, err)
			assert.True(t, usil.IsKind(err, usil.ErrFormat), "got %v", err)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	ins, err := msl.Parse(fragmentSource)
	require.NoError(t, err)

	got, err := msl.Translate(ins, nil)
	require.NoError(t, err)

	var ops []usil.Opcode
	for _, in := range got {
		ops = append(ops, in.Op)
	}
	want := []usil.Opcode{
		usil.OpFunction, usil.OpSample, usil.OpLt, usil.OpIf, usil.OpDiscard, usil.OpEndIf,
		usil.OpLength, usil.OpConstruct, usil.OpGt, usil.OpSelect, usil.OpReturn,
	}
	assert.Equal(t, want, ops)
	assert.Equal(t, "tex", got[1].Operands[1].String(), "texture is the first source operand")
}

func TestDefaultTable_Totality(t *testing.T) {
	for _, name := range cfront.CoreOps {
		op, ok := msl.ParseOpcode(name)
		require.True(t, ok, name)
		_, ok = msl.DefaultTable.Lookup(op)
		assert.True(t, ok, "%s missing from table", name)
	}
	for _, name := range []string{"sample", "sample_compare", "read", "write", "gather", "get_width", "get_height"} {
		op, ok := msl.ParseOpcode(name)
		require.True(t, ok, name)
		assert.True(t, op.IsMethod(), name)
		c, ok := msl.DefaultTable.Lookup(op)
		require.True(t, ok, name)
		assert.True(t, c.Valid(), name)
	}
	assert.False(t, msl.OpRsqrt.IsMethod())
}
