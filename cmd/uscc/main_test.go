package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/usc/dxbc"
	"github.com/gogpu/usc/dxbc/dxbctest"
)

const vertexSource = `#ifdef VERTEX
uniform mat4 mvp;
in vec4 pos;
void main() {
    gl_Position = mvp * pos;
}
#endif
`

func pixelBlob() []byte {
	return dxbctest.Blob(0, 5, dxbctest.Container("SHEX", dxbctest.Program(dxbc.ProgramPixel, 5, 0,
		dxbctest.I(dxbc.OpMov,
			dxbctest.Mask(dxbc.OperandOutput, 0, "xyzw"),
			dxbctest.CB(0, 1, "xyzw")),
		dxbctest.I(dxbc.OpRet),
	)))
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"convert", "disasm", "batch", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("opcodes"))
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "uscc version "+usccVersion+"\n", out)
}

func TestConvert_DirectX(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ps.bin", pixelBlob())
	params := writeFile(t, t.TempDir(), "params.yaml", []byte(`constant_buffers:
  - name: Globals
    slot: 0
    size: 32
    params:
      - {name: _Color, index: 16, rows: 1, columns: 4}
`))

	out, _, err := run(t, "convert", "--platform", "d3d11", "--engine", "5.3.0",
		"--metadata-type", "18", "--params", params, path)
	require.NoError(t, err)
	assert.Equal(t, `; stage: fragment
; instructions: 2
; binding: constant _Color slot=0 offset=16

mov o0.xyzw, cb0[1].xyzw
ret
`, out)
}

func TestConvert_GLESWithOverlayAndLogging(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "vs.glsl", []byte(vertexSource))
	overlay := writeFile(t, dir, "ops.yaml", []byte("gles:\n  mul: mad\n"))

	out, logs, err := run(t, "convert", "-v", "--opcodes", overlay,
		"--platform", "gles3", "--engine", "2019.4.31f1", "--type", "GLESVertex", src)
	require.NoError(t, err)
	assert.Contains(t, out, "mad gl_Position, mvp, pos")
	assert.Contains(t, logs, "program converted")
	assert.Contains(t, logs, "backend=gles")
}

func TestConvert_Errors(t *testing.T) {
	dir := t.TempDir()
	blob := writeFile(t, dir, "ps.bin", pixelBlob())
	engineOnly := writeFile(t, dir, "engine.yaml", []byte("engine: 2021.3.1f1\n"))
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no platform", []string{"convert", blob}, "--platform or --backend is required"},
		{"config without platform", []string{"--config", engineOnly, "convert", blob}, "--platform or --backend is required"},
		{"disasm without platform", []string{"disasm", blob}, "--platform or --backend is required"},
		{"bad platform", []string{"convert", "--platform", "amiga", blob}, "unknown platform"},
		{"bad type", []string{"convert", "--platform", "switch", "--type", "Nope", blob}, "unknown program type"},
		{"missing file", []string{"convert", "--platform", "d3d11", filepath.Join(dir, "nope.bin")}, "open payload"},
		{"bad config", []string{"--config", filepath.Join(dir, "nope.yaml"), "convert", blob}, "read config"},
		{"unknown metadata type", []string{"convert", "--platform", "d3d11", "--backend", "dx", "--metadata-type", "99", blob}, "UnsupportedStageError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDisasm(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vs.glsl", []byte(vertexSource))
	out, _, err := run(t, "disasm", "--backend", "gles", "--stage", "vertex", path)
	require.NoError(t, err)
	assert.Equal(t, "func @main\nmul gl_Position, mvp, pos\nret\n", out)

	_, _, err = run(t, "disasm", "--backend", "gles", "--stage", "hull", path)
	assert.ErrorContains(t, err, "invalid stage")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", pixelBlob())
	writeFile(t, dir, "b.bin", pixelBlob())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))
	writeFile(t, filepath.Join(dir, "sub"), "c.bin", pixelBlob())

	out, _, err := run(t, "batch", "--platform", "d3d11", "--engine", "5.3.0", "-j", "2", dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"ok   a.bin: fragment, 2 instructions",
		"ok   b.bin: fragment, 2 instructions",
		"ok   sub/c.bin: fragment, 2 instructions",
	}, lines)

	writeFile(t, dir, "z.bin", []byte{1})
	out, _, err = run(t, "batch", "--platform", "d3d11", "--engine", "5.3.0", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 payloads failed")
	assert.Contains(t, out, "FAIL z.bin")
}
