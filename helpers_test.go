package usc_test

import (
	"bytes"
	"encoding/binary"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/dxbc"
	"github.com/gogpu/usc/dxbc/dxbctest"
	"github.com/gogpu/usc/nvn"
	"github.com/gogpu/usc/spirv"
	"github.com/gogpu/usc/spirv/spirvtest"
	"github.com/gogpu/usc/usil"
)

var engine56 = asset.MustParseVersion("5.6.0")

// pixelShader is ps_5_0: sample r0, v1, t0, s0; mul_sat o0, r0, cb0[2]; ret.
func pixelShader() []byte {
	return dxbctest.Container("SHEX", dxbctest.Program(dxbc.ProgramPixel, 5, 0,
		dxbctest.I(dxbc.OpDclTemps, dxbctest.Raw(1)),
		dxbctest.I(dxbc.OpSample,
			dxbctest.Mask(dxbc.OperandTemp, 0, "xyzw"),
			dxbctest.Swizzle(dxbc.OperandInput, 1, "xyxx"),
			dxbctest.Swizzle(dxbc.OperandResource, 0, "xyzw"),
			dxbctest.Bare(dxbc.OperandSampler, 0)),
		dxbctest.Inst{Op: dxbc.OpMul, Sat: true, Operands: [][]uint32{
			dxbctest.Mask(dxbc.OperandOutput, 0, "xyzw"),
			dxbctest.Swizzle(dxbc.OperandTemp, 0, "xyzw"),
			dxbctest.CB(0, 2, "xyzw"),
		}},
		dxbctest.I(dxbc.OpRet),
	))
}

// directXBlob is pixelShader behind a version-2 program header, laid out
// for d3d11 on engine 5.6.0.
func directXBlob() []byte {
	return dxbctest.Blob(2, 0x26, pixelShader())
}

const (
	maxwellPT      = uint64(nvn.PredicateTrue) << 16
	maxwellControl = 0x001f8000fc0007e0
)

// maxwell lays out instruction words three to a bundle after a zeroed
// program header.
func maxwell(words ...uint64) []byte {
	buf := make([]byte, nvn.HeaderSize)
	for i, w := range words {
		if i%3 == 0 {
			buf = binary.LittleEndian.AppendUint64(buf, maxwellControl)
		}
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	for i := len(words); i%3 != 0; i++ {
		buf = binary.LittleEndian.AppendUint64(buf, 0)
	}
	return buf
}

// vertexCode is "ipa R0, a[0x70]; exit".
func vertexCode() []byte {
	return maxwell(
		0xE000<<48|maxwellPT|0x70<<28,
		0xE300<<48|maxwellPT,
	)
}

// fragmentCode is "tex R4, R0, t1; mufu.rsq R5, R4; exit".
func fragmentCode() []byte {
	return maxwell(
		0xC038<<48|maxwellPT|1<<36|4,
		0x5080<<48|maxwellPT|5<<20|4<<8|5,
		0xE300<<48|maxwellPT,
	)
}

// nvnBlob merges two stages into the single-blob NVN layout.
func nvnBlob(vertex, fragment []byte) []byte {
	const stageHeader = 0x30
	var buf bytes.Buffer
	buf.Write(make([]byte, 8))
	_ = binary.Write(&buf, binary.LittleEndian, int64(-1))
	buf.Write(make([]byte, 8))

	table := make([]uint32, 18)
	table[0] = uint32(stageHeader + len(vertex)) // fragment offset
	table[1] = 0                                 // vertex offset
	_ = binary.Write(&buf, binary.LittleEndian, table)

	buf.Write(make([]byte, stageHeader))
	buf.Write(vertex)
	buf.Write(make([]byte, stageHeader))
	buf.Write(fragment)
	return buf.Bytes()
}

const glesSource = `#version 300 es
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

const metalSource = `#include <metal_stdlib>
using namespace metal;

struct FragIn { float4 pos [[position]]; float2 uv; };

fragment float4 frag_main(FragIn in [[stage_in]],
                          texture2d<float> tex [[texture(0)]],
                          sampler smp [[sampler(0)]]) {
    float4 c = tex.sample(smp, in.uv);
    if (c.a < 0.5) {
        discard_fragment();
    }
    return c;
}
`

// spirvModule is a fragment shader storing vec4(sqrt(1.0)) to an output.
func spirvModule() []byte {
	const (
		execModelFragment  = 4
		storageClassOutput = 3
	)
	b := spirvtest.New(spirv.Version1_3)
	b.Capability(1)
	std := b.ExtInstImport("GLSL.std.450")
	b.MemoryModel()
	void := b.Type(spirv.OpTypeVoid)
	fnType := b.Type(spirv.OpTypeFunction, void)
	f32 := b.Type(spirv.OpTypeFloat, 32)
	vec4 := b.Type(spirv.OpTypeVector, f32, 4)
	ptr := b.Type(spirv.OpTypePointer, storageClassOutput, vec4)
	out := b.Variable(ptr, storageClassOutput)
	one := b.Constant(f32, 0x3f800000)
	main := b.ID()
	b.EntryPoint(execModelFragment, main, "main", out)

	b.Op(spirv.OpFunction, void, main, 0, fnType)
	b.Op(spirv.OpLabel, b.ID())
	s := b.Result(spirv.OpExtInst, f32, std, 31, one)
	v := b.Result(spirv.OpCompositeConstruct, vec4, s, s, s, one)
	b.Op(spirv.OpStore, out, v)
	b.Op(spirv.OpReturn)
	b.Op(spirv.OpFunctionEnd)
	return b.Build()
}

func listing(p *usil.Program) []string {
	out := make([]string, len(p.Instructions))
	for i, in := range p.Instructions {
		out[i] = in.String()
	}
	return out
}

func ops(p *usil.Program) []usil.Opcode {
	out := make([]usil.Opcode, len(p.Instructions))
	for i, in := range p.Instructions {
		out[i] = in.Op
	}
	return out
}
