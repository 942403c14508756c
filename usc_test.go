package usc_test

import (
	"bytes"
	"errors"
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

func TestConvert(t *testing.T) {
	p, err := usc.Convert(bytes.NewReader(directXBlob()), usc.Request{
		Platform: asset.PlatformD3D11,
		Version:  engine56,
		Metadata: &usc.Metadata{
			SubProgram: asset.SubProgram{RawProgramType: int(asset.ProgramTypeDX11PixelSM50)},
			Params:     globals,
		},
	}, usc.DefaultOptions())
	require.NoError(t, err)

	want := `; stage: fragment
; instructions: 3
; binding: texture _MainTex slot=0
; binding: sampler _MainTex slot=0
; binding: constant _Tint slot=0 offset=32

sample r0.xyzw, v1.xyxx, t0.xyzw, s0
mul_sat o0.xyzw, r0.xyzw, cb0[2].xyzw
ret
`
	if diff := cmp.Diff(want, usil.Format(p)); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_BackendOverride(t *testing.T) {
	metal := extract.BackendMetal
	p, err := usc.Convert(strings.NewReader(metalSource), usc.Request{
		Backend:     &metal,
		Platform:    asset.PlatformUnknown,
		Version:     engine56,
		ProgramType: asset.ProgramTypeMetalFS,
	}, usc.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, usil.OpFunction, p.Instructions[0].Op)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		req  usc.Request
		kind usil.ErrorKind
	}{
		{
			name: "platform without backend",
			req:  usc.Request{Platform: asset.PlatformPS3, Version: engine56},
			kind: usil.ErrUnsupportedFormat,
		},
		{
			name: "wrong program type for backend",
			data: nvnBlob(vertexCode(), fragmentCode()),
			req:  usc.Request{Platform: asset.PlatformSwitch, Version: engine56, ProgramType: asset.ProgramTypeMetalVS},
			kind: usil.ErrSequencing,
		},
		{
			name: "unsupported console stage",
			data: nvnBlob(vertexCode(), fragmentCode()),
			req:  usc.Request{Platform: asset.PlatformSwitch, Version: engine56, ProgramType: asset.ProgramTypeConsoleHS},
			kind: usil.ErrUnsupportedType,
		},
		{
			name: "bad metadata",
			data: directXBlob(),
			req: usc.Request{Platform: asset.PlatformD3D11, Version: engine56, Metadata: &usc.Metadata{
				SubProgram: asset.SubProgram{RawProgramType: int(asset.ProgramTypeDX11HullSM50)},
			}},
			kind: usil.ErrUnsupportedStage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := usc.Convert(bytes.NewReader(tt.data), tt.req, usc.DefaultOptions())
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, usil.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		req   usc.Request
		stage usil.Stage
		want  []string
	}{
		{
			name: "directx",
			data: directXBlob(),
			req:  usc.Request{Platform: asset.PlatformD3D11, Version: engine56},
			want: []string{
				"; ps_5_0",
				"dcl_temps l(0x1)",
				"sample r0.xyzw, v1.xyxx, t0.xyzw, s0",
				"mul_sat o0.xyzw, r0.xyzw, cb0[2].xyzw",
				"ret",
			},
		},
		{
			name: "nvn",
			data: nvnBlob(vertexCode(), fragmentCode()),
			req:  usc.Request{Platform: asset.PlatformSwitch, Version: engine56},
			want: []string{
				"; vertex",
				"ipa R0, a[0x70]",
				"exit",
				"; fragment",
				"tex R4, R0, t1",
				"mufu.rsq R5, R4",
				"exit",
			},
		},
		{
			name:  "gles",
			data:  []byte(glesSource),
			req:   usc.Request{Platform: asset.PlatformGLES3Plus, Version: engine56},
			stage: usil.StageVertex,
			want:  []string{"func @main", "mul gl_Position, mvp, pos", "ret"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, usc.Disassemble(&out, bytes.NewReader(tt.data), tt.req, tt.stage, usc.DefaultOptions()))
			got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("disassembly mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type stubTranslator struct{ err error }

func (s stubTranslator) Translate([]byte) (nvn.Context, error) { return nil, s.err }

func TestDisassemble_UsesTranslator(t *testing.T) {
	cause := errors.New("unknown microcode")
	opts := usc.DefaultOptions()
	opts.Translator = stubTranslator{err: cause}

	var out bytes.Buffer
	err := usc.Disassemble(&out, bytes.NewReader(nvnBlob(vertexCode(), fragmentCode())),
		usc.Request{Platform: asset.PlatformSwitch, Version: engine56}, usil.StageVertex, opts)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "vertex stage")
	assert.Empty(t, out.String())
}
