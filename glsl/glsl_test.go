// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/usc/glsl"
	"github.com/gogpu/usc/internal/cfront"
	"github.com/gogpu/usc/usil"
)

const combined = `#version 300 es
#ifdef VERTEX
uniform mat4 mvp;
in vec4 pos;
void main() {
    gl_Position = mvp * pos;
}
#endif
#ifdef FRAGMENT
precision mediump float;
uniform sampler2D tex;
in vec2 uv;
out vec4 color;
void main() {
    vec4 c = texture(tex, uv);
    color = vec4(c.rgb * inversesqrt(c.a), 1.0);
}
#endif
`

func listing(ins []glsl.Instruction) []string {
	out := make([]string, len(ins))
	for i, in := range ins {
		out[i] = in.String()
	}
	return out
}

func TestParse_Stages(t *testing.T) {
	tests := []struct {
		stage usil.Stage
		want  []string
	}{
		{usil.StageVertex, []string{
			"func @main",
			"mul gl_Position, mvp, pos",
			"ret",
		}},
		{usil.StageFragment, []string{
			"func @main",
			"texture c, tex, uv",
			"inversesqrt _t1, c.w",
			"mul _t2, c.xyz, _t1",
			"construct color, vec4, _t2, 1.0",
			"ret",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			got, err := glsl.Parse(combined, tt.stage)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, listing(got)); diff != "" {
				t.Errorf("listing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_NoSections(t *testing.T) {
	src := `void main() { if (x > 0.5) { discard; } gl_FragColor = vec4(1.0); }`
	got, err := glsl.Parse(src, usil.StageVertex)
	require.NoError(t, err)

	want := []string{
		"func @main",
		"gt _t0, x, 0.5",
		"if_nz _t0",
		"discard",
		"endif",
		"construct gl_FragColor, vec4, 1.0",
		"ret",
	}
	assert.Equal(t, want, listing(got))
	assert.Equal(t, usil.FlagTestNonZero, got[2].BackendFlags())
}

func TestParse_Error(t *testing.T) {
	_, err := glsl.Parse("void main() {\n  x = $;\n}", usil.StageFragment)
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
		{"parameter list", "void main(float a[) {}", "unterminated parameter list"},
		{"call arguments", "void main() { x = f(a, b", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func(src string) {
				_, err := glsl.Parse(src, usil.StageFragment)
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

func TestSelectStage(t *testing.T) {
	src := strings.Join([]string{
		"#if defined(VERTEX)",
		"vertex",
		"#elif defined(FRAGMENT)",
		"fragment",
		"#else",
		"other",
		"#endif",
		"#ifndef FRAGMENT",
		"not fragment",
		"#endif",
		"#ifdef GL_ES",
		"first",
		"#else",
		"second",
		"#endif",
	}, "\n")

	kept := func(s string) []string {
		var out []string
		for _, line := range strings.Split(s, "\n") {
			if line != "" {
				out = append(out, line)
			}
		}
		return out
	}

	vs := glsl.SelectStage(src, usil.StageVertex)
	assert.Equal(t, []string{"vertex", "not fragment", "first"}, kept(vs))
	assert.Equal(t, strings.Count(src, "\n"), strings.Count(vs, "\n"), "line count must be preserved")

	fs := glsl.SelectStage(src, usil.StageFragment)
	assert.Equal(t, []string{"fragment", "first"}, kept(fs))

	assert.True(t, glsl.HasStageSections(src))
	assert.False(t, glsl.HasStageSections("#ifdef GL_ES\n#endif\n"))
}

func TestTranslate(t *testing.T) {
	ins, err := glsl.Parse(combined, usil.StageFragment)
	require.NoError(t, err)

	got, err := glsl.Translate(ins, nil)
	require.NoError(t, err)

	var ops []usil.Opcode
	for _, in := range got {
		ops = append(ops, in.Op)
	}
	want := []usil.Opcode{usil.OpFunction, usil.OpSample, usil.OpRsqrt, usil.OpMul, usil.OpConstruct, usil.OpReturn}
	assert.Equal(t, want, ops)
}

func TestTranslate_Overlay(t *testing.T) {
	table, err := glsl.DefaultTable.ExtendNames(map[string]string{"texture": "sample_b"}, glsl.ParseOpcode)
	require.NoError(t, err)

	ins := []glsl.Instruction{{Opcode: glsl.OpTexture, Operands: []usil.Operand{usil.Sym("c"), usil.Sym("tex"), usil.Sym("uv")}}}
	got, err := glsl.Translate(ins, table)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, usil.OpSampleBias, got[0].Op)

	_, err = glsl.LoadTable([]byte("texture: nosuchop\n"))
	assert.True(t, usil.IsKind(err, usil.ErrFormat))
}

func TestDefaultTable_Totality(t *testing.T) {
	for _, name := range cfront.CoreOps {
		op, ok := glsl.ParseOpcode(name)
		require.True(t, ok, name)
		c, ok := glsl.DefaultTable.Lookup(op)
		require.True(t, ok, "%s missing from table", name)
		assert.True(t, c.Valid(), name)
	}
	for _, op := range glsl.DefaultTable.Domain() {
		c, _ := glsl.DefaultTable.Lookup(op)
		assert.NotEqual(t, usil.OpNone, c, "%s drops instructions", op)
	}
	assert.True(t, glsl.OpInverseSqrt.IsBuiltin())
	assert.False(t, glsl.OpAssign.IsBuiltin())
}
