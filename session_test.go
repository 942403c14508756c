package usc_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/usc"
	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/extract"
	"github.com/gogpu/usc/nvn"
	"github.com/gogpu/usc/usil"
)

func loadDirectX(t *testing.T, s *usc.Session) {
	t.Helper()
	require.NoError(t, s.LoadDirectX(bytes.NewReader(directXBlob()), asset.PlatformD3D11, engine56))
}

func convertDirectX(t *testing.T, s *usc.Session) {
	t.Helper()
	loadDirectX(t, s)
	require.NoError(t, s.ConvertDirectX())
}

func TestSession_DirectX(t *testing.T) {
	s := usc.NewSession(usc.DefaultOptions())
	assert.Equal(t, usc.StateEmpty, s.State())
	assert.NotEmpty(t, s.ID())

	loadDirectX(t, s)
	assert.Equal(t, usc.StateLoaded, s.State())
	assert.Equal(t, extract.BackendDirectX, s.Backend())
	assert.Equal(t, 0x26, s.Payload().Offset)
	assert.Equal(t, 2, s.Payload().HeaderVersion)

	require.NoError(t, s.ConvertDirectX())
	assert.Equal(t, usc.StateConverted, s.State())

	p, err := s.Program()
	require.NoError(t, err)
	assert.Equal(t, usil.StageFragment, p.Stage)
	want := []string{
		"sample r0.xyzw, v1.xyxx, t0.xyzw, s0",
		"mul_sat o0.xyzw, r0.xyzw, cb0[2].xyzw",
		"ret",
	}
	if diff := cmp.Diff(want, listing(p)); diff != "" {
		t.Errorf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_DirectXThenNVNIsSequencing(t *testing.T) {
	s := usc.NewSession(usc.DefaultOptions())
	loadDirectX(t, s)
	require.Equal(t, 0x26, s.Payload().Offset)

	err := s.ConvertNVN(asset.ProgramTypeConsoleVS)
	require.Error(t, err)
	assert.True(t, usil.IsKind(err, usil.ErrSequencing))
	assert.Contains(t, err.Error(), "LoadNVN")
	assert.Equal(t, usc.StateLoaded, s.State())
	assert.Equal(t, extract.BackendDirectX, s.Backend())
}

func TestSession_Sequencing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*testing.T, *usc.Session)
		call  func(*usc.Session) error
		want  string
	}{
		{
			name: "convert directx on empty session",
			call: func(s *usc.Session) error { return s.ConvertDirectX() },
			want: "call LoadDirectX first",
		},
		{
			name: "convert nvn on empty session",
			call: func(s *usc.Session) error { return s.ConvertNVN(asset.ProgramTypeConsoleFS) },
			want: "call LoadNVN first",
		},
		{
			name:  "gles convert after directx load",
			setup: loadDirectX,
			call:  func(s *usc.Session) error { return s.Convert(asset.ProgramTypeGLESVertex) },
			want:  "call LoadGLES first",
		},
		{
			name:  "vulkan convert after directx load",
			setup: loadDirectX,
			call:  func(s *usc.Session) error { return s.Convert(asset.ProgramTypeVulkanFS) },
			want:  "call LoadVulkan first",
		},
		{
			name:  "metal convert after directx load",
			setup: loadDirectX,
			call:  func(s *usc.Session) error { return s.Convert(asset.ProgramTypeMetalFS) },
			want:  "call LoadMetal first",
		},
		{
			name:  "second load",
			setup: loadDirectX,
			call: func(s *usc.Session) error {
				return s.LoadNVN(bytes.NewReader(nvnBlob(vertexCode(), fragmentCode())), asset.PlatformSwitch, engine56)
			},
			want: "session already loaded",
		},
		{
			name:  "convert twice",
			setup: convertDirectX,
			call:  func(s *usc.Session) error { return s.ConvertDirectX() },
			want:  "program already converted",
		},
		{
			name:  "dispatch after conversion",
			setup: convertDirectX,
			call:  func(s *usc.Session) error { return s.Convert(asset.ProgramTypeDX11PixelSM50) },
			want:  "program already converted",
		},
		{
			name:  "metadata before conversion",
			setup: loadDirectX,
			call: func(s *usc.Session) error {
				return s.ApplyMetadata(asset.SubProgram{RawProgramType: int(asset.ProgramTypeDX11PixelSM50)}, asset.Params{}, engine56)
			},
			want: "call ConvertDirectX first",
		},
		{
			name: "metadata twice",
			setup: func(t *testing.T, s *usc.Session) {
				convertDirectX(t, s)
				require.NoError(t, s.ApplyMetadata(asset.SubProgram{RawProgramType: int(asset.ProgramTypeDX11PixelSM50)}, asset.Params{}, engine56))
			},
			call: func(s *usc.Session) error {
				return s.ApplyMetadata(asset.SubProgram{RawProgramType: int(asset.ProgramTypeDX11PixelSM50)}, asset.Params{}, engine56)
			},
			want: "metadata already applied",
		},
		{
			name:  "program before conversion",
			setup: loadDirectX,
			call: func(s *usc.Session) error {
				_, err := s.Program()
				return err
			},
			want: "call a Convert method first",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := usc.NewSession(usc.DefaultOptions())
			if tt.setup != nil {
				tt.setup(t, s)
			}
			before := s.State()

			err := tt.call(s)
			require.Error(t, err)
			assert.True(t, usil.IsKind(err, usil.ErrSequencing), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, before, s.State())
		})
	}
}

func TestSession_FailedLoadCommitsNothing(t *testing.T) {
	s := usc.NewSession(usc.DefaultOptions())

	err := s.LoadDirectX(bytes.NewReader([]byte{2, 0, 0}), asset.PlatformD3D11, engine56)
	require.Error(t, err)
	assert.True(t, usil.IsKind(err, usil.ErrFormat))
	assert.Equal(t, usc.StateEmpty, s.State())
	assert.Nil(t, s.Payload())

	loadDirectX(t, s)
	assert.Equal(t, usc.StateLoaded, s.State())
}

func TestSession_NVN(t *testing.T) {
	tests := []struct {
		pt    asset.ProgramType
		stage usil.Stage
		want  []string
	}{
		{asset.ProgramTypeConsoleVS, usil.StageVertex, []string{"load R0, a[0x70]", "ret"}},
		{asset.ProgramTypeConsoleFS, usil.StageFragment, []string{"sample R4, R0, t1", "rsq R5, R4", "ret"}},
	}
	for _, tt := range tests {
		t.Run(tt.pt.String(), func(t *testing.T) {
			s := usc.NewSession(usc.DefaultOptions())
			require.NoError(t, s.LoadNVN(bytes.NewReader(nvnBlob(vertexCode(), fragmentCode())), asset.PlatformSwitch, engine56))
			require.NoError(t, s.Convert(tt.pt))

			p, err := s.Program()
			require.NoError(t, err)
			assert.Equal(t, tt.stage, p.Stage)
			if diff := cmp.Diff(tt.want, listing(p)); diff != "" {
				t.Errorf("program mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSession_NVNUnsupportedType(t *testing.T) {
	s := usc.NewSession(usc.DefaultOptions())
	require.NoError(t, s.LoadNVN(bytes.NewReader(nvnBlob(vertexCode(), fragmentCode())), asset.PlatformSwitch, engine56))

	err := s.ConvertNVN(asset.ProgramTypeConsoleGS)
	require.Error(t, err)
	assert.True(t, usil.IsKind(err, usil.ErrUnsupportedType))
	assert.Equal(t, usc.StateLoaded, s.State())
}

type failingTranslator struct{}

func (failingTranslator) Translate([]byte) (nvn.Context, error) {
	return nil, errors.New("bad microcode")
}

func TestSession_NVNTranslatorFailure(t *testing.T) {
	opts := usc.DefaultOptions()
	opts.Translator = failingTranslator{}
	s := usc.NewSession(opts)

	err := s.LoadNVN(bytes.NewReader(nvnBlob(vertexCode(), fragmentCode())), asset.PlatformSwitch, engine56)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex stage")
	assert.Equal(t, usc.StateEmpty, s.State())
}

func TestSession_SourceBackends(t *testing.T) {
	tests := []struct {
		name  string
		load  func(*usc.Session) error
		pt    asset.ProgramType
		stage usil.Stage
		want  []usil.Opcode
	}{
		{
			name: "gles vertex",
			load: func(s *usc.Session) error {
				return s.LoadGLES(strings.NewReader(glesSource), asset.PlatformGLES3Plus, engine56)
			},
			pt:    asset.ProgramTypeGLESVertex,
			stage: usil.StageVertex,
			want:  []usil.Opcode{usil.OpFunction, usil.OpMul, usil.OpReturn},
		},
		{
			name: "gles fragment",
			load: func(s *usc.Session) error {
				return s.LoadGLES(strings.NewReader(glesSource), asset.PlatformGLES3Plus, engine56)
			},
			pt:    asset.ProgramTypeGLESFragment,
			stage: usil.StageFragment,
			want:  []usil.Opcode{usil.OpFunction, usil.OpSample, usil.OpRsqrt, usil.OpMul, usil.OpConstruct, usil.OpReturn},
		},
		{
			name: "vulkan",
			load: func(s *usc.Session) error {
				return s.LoadVulkan(bytes.NewReader(spirvModule()), asset.PlatformVulkan, engine56)
			},
			pt:    asset.ProgramTypeVulkanFS,
			stage: usil.StageFragment,
			want:  []usil.Opcode{usil.OpFunction, usil.OpLabel, usil.OpSqrt, usil.OpConstruct, usil.OpStore, usil.OpReturn},
		},
		{
			name: "metal",
			load: func(s *usc.Session) error {
				return s.LoadMetal(strings.NewReader(metalSource), asset.PlatformMetal, engine56)
			},
			pt:    asset.ProgramTypeMetalFS,
			stage: usil.StageFragment,
			want: []usil.Opcode{usil.OpFunction, usil.OpSample, usil.OpLt, usil.OpIf, usil.OpDiscard,
				usil.OpEndIf, usil.OpReturn},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := usc.NewSession(usc.DefaultOptions())
			require.NoError(t, tt.load(s))
			require.NoError(t, s.Convert(tt.pt))

			p, err := s.Program()
			require.NoError(t, err)
			assert.Equal(t, tt.stage, p.Stage)
			assert.Equal(t, tt.want, ops(p))
		})
	}
}

func TestSession_GLESListing(t *testing.T) {
	s := usc.NewSession(usc.DefaultOptions())
	require.NoError(t, s.LoadGLES(strings.NewReader(glesSource), asset.PlatformGLES3Plus, engine56))
	require.NoError(t, s.Convert(asset.ProgramTypeGLESFragment))

	p, err := s.Program()
	require.NoError(t, err)
	want := []string{
		"func @main",
		"sample c, tex, uv",
		"rsq _t1, c.w",
		"mul _t2, c.xyz, _t1",
		"construct color, vec4, _t2, 1.0",
		"ret",
	}
	if diff := cmp.Diff(want, listing(p)); diff != "" {
		t.Errorf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ConvertUnsupportedType(t *testing.T) {
	for _, pt := range []asset.ProgramType{asset.ProgramTypeDX9PixelSM30, asset.ProgramTypeSPIRV, asset.ProgramTypeRayTracing} {
		t.Run(pt.String(), func(t *testing.T) {
			s := usc.NewSession(usc.DefaultOptions())
			err := s.Convert(pt)
			require.Error(t, err)
			assert.True(t, usil.IsKind(err, usil.ErrUnsupportedType), "got %v", err)
		})
	}
}

func TestSession_ConvertDispatchesDirectX(t *testing.T) {
	s := usc.NewSession(usc.DefaultOptions())
	loadDirectX(t, s)
	require.NoError(t, s.Convert(asset.ProgramTypeDX11PixelSM50))
	assert.Equal(t, usc.StateConverted, s.State())
}

func TestSession_TableOverlay(t *testing.T) {
	opts := usc.DefaultOptions()
	tables, err := opts.Tables.Overlay(map[string]map[string]string{
		"dx": {"mul": "mad"},
	})
	require.NoError(t, err)
	opts.Tables = tables

	s := usc.NewSession(opts)
	convertDirectX(t, s)
	p, err := s.Program()
	require.NoError(t, err)
	assert.Equal(t, []usil.Opcode{usil.OpSample, usil.OpMad, usil.OpReturn}, ops(p))

	_, err = opts.Tables.Overlay(map[string]map[string]string{"psp": {}})
	assert.Error(t, err)
	_, err = opts.Tables.Overlay(map[string]map[string]string{"dx": {"mul": "frobnicate"}})
	assert.Error(t, err)
}

func TestSession_Logging(t *testing.T) {
	var buf bytes.Buffer
	opts := usc.DefaultOptions()
	opts.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := usc.NewSession(opts)
	convertDirectX(t, s)
	require.Error(t, s.ConvertDirectX())

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	require.Len(t, records, 3)

	for _, rec := range records {
		assert.Equal(t, s.ID(), rec["session"])
	}
	assert.Equal(t, "DEBUG", records[0]["level"])
	assert.Equal(t, "usc.LoadDirectX", records[0]["op"])
	assert.Equal(t, "directx", records[0]["backend"])
	assert.Equal(t, "ps_5_0", records[0]["profile"])

	assert.Equal(t, "usc.ConvertDirectX", records[1]["op"])
	assert.EqualValues(t, 3, records[1]["instructions"])

	assert.Equal(t, "WARN", records[2]["level"])
	assert.Equal(t, "converted", records[2]["state"])
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { usc.SetLogger(nil) })

	var buf bytes.Buffer
	usc.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s := usc.NewSession(usc.DefaultOptions())
	loadDirectX(t, s)
	assert.Contains(t, buf.String(), "payload loaded")

	usc.SetLogger(nil)
	buf.Reset()
	s = usc.NewSession(usc.DefaultOptions())
	loadDirectX(t, s)
	assert.Empty(t, buf.String())
	assert.False(t, usc.Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger_OptionsLoggerWins(t *testing.T) {
	t.Cleanup(func() { usc.SetLogger(nil) })

	var pkg, own bytes.Buffer
	usc.SetLogger(slog.New(slog.NewTextHandler(&pkg, &slog.HandlerOptions{Level: slog.LevelDebug})))
	opts := usc.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&own, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := usc.NewSession(opts)
	loadDirectX(t, s)
	assert.Contains(t, own.String(), "session="+s.ID())
	assert.Empty(t, pkg.String())
}
