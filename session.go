package usc

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/dxbc"
	"github.com/gogpu/usc/extract"
	"github.com/gogpu/usc/glsl"
	"github.com/gogpu/usc/msl"
	"github.com/gogpu/usc/nvn"
	"github.com/gogpu/usc/spirv"
	"github.com/gogpu/usc/usil"
)

// State is the position of a session in its lifecycle. A session only
// moves forward.
type State uint8

const (
	StateEmpty State = iota
	StateLoaded
	StateConverted
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateConverted:
		return "converted"
	case StateFinalized:
		return "finalized"
	}
	return "unknown"
}

// loadOps names the load operation each backend requires.
var loadOps = [...]string{
	extract.BackendDirectX: "LoadDirectX",
	extract.BackendGLES:    "LoadGLES",
	extract.BackendVulkan:  "LoadVulkan",
	extract.BackendMetal:   "LoadMetal",
	extract.BackendNVN:     "LoadNVN",
}

// Session converts one shader payload. Call exactly one Load method, then
// a Convert method, then optionally ApplyMetadata:
//
//	s := usc.NewSession(usc.DefaultOptions())
//	if err := s.LoadDirectX(r, asset.PlatformD3D11, version); err != nil { ... }
//	if err := s.ConvertDirectX(); err != nil { ... }
//	p, err := s.Program()
//
// An operation called out of order fails with usil.ErrSequencing and
// leaves the session unchanged, as does any failed operation.
//
// A Session is not safe for concurrent use.
type Session struct {
	id    string
	opts  Options
	log   *slog.Logger
	state State

	backend extract.Backend
	payload *extract.RawPayload
	dx      *dxbc.Shader
	spv     []spirv.Instruction
	metal   []msl.Instruction
	pair    *nvn.Pair

	program *usil.Program
}

// NewSession returns an empty session.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	id := uuid.Must(uuid.NewV7()).String()
	return &Session{
		id:   id,
		opts: opts,
		log:  opts.logger().With(slog.String("session", id)),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the session's current state.
func (s *Session) State() State { return s.state }

// Backend returns the loaded backend. It is meaningful once the session
// has left StateEmpty.
func (s *Session) Backend() extract.Backend { return s.backend }

// Payload returns the extracted payload, or nil before loading. For NVN
// it is the vertex stage.
func (s *Session) Payload() *extract.RawPayload { return s.payload }

// Load dispatches to the Load method of backend.
func (s *Session) Load(r io.Reader, backend extract.Backend, platform asset.Platform, version asset.Version) error {
	switch backend {
	case extract.BackendDirectX:
		return s.LoadDirectX(r, platform, version)
	case extract.BackendGLES:
		return s.LoadGLES(r, platform, version)
	case extract.BackendVulkan:
		return s.LoadVulkan(r, platform, version)
	case extract.BackendMetal:
		return s.LoadMetal(r, platform, version)
	case extract.BackendNVN:
		return s.LoadNVN(r, platform, version)
	}
	return s.fail("usc.Load", usil.Errorf(usil.ErrUnsupportedFormat, usil.PhaseSession, "usc.Load",
		"unknown backend %s", backend))
}

// LoadDirectX extracts and decodes DirectX bytecode.
func (s *Session) LoadDirectX(r io.Reader, platform asset.Platform, version asset.Version) error {
	const op = "usc.LoadDirectX"
	if err := s.requireEmpty(op); err != nil {
		return err
	}
	payload, err := extract.DirectX(r, platform, version)
	if err != nil {
		return s.fail(op, err)
	}
	shader, err := dxbc.Parse(payload.Data)
	if err != nil {
		return s.fail(op, err)
	}
	s.dx = shader
	s.loaded(op, extract.BackendDirectX, payload, slog.String("profile", shader.Profile()))
	return nil
}

// LoadGLES extracts GLSL source. Parsing is deferred to Convert, which
// selects the stage.
func (s *Session) LoadGLES(r io.Reader, platform asset.Platform, version asset.Version) error {
	const op = "usc.LoadGLES"
	if err := s.requireEmpty(op); err != nil {
		return err
	}
	payload, err := extract.Text(r, extract.BackendGLES, platform, version)
	if err != nil {
		return s.fail(op, err)
	}
	s.loaded(op, extract.BackendGLES, payload)
	return nil
}

// LoadVulkan extracts and decodes a SPIR-V module.
func (s *Session) LoadVulkan(r io.Reader, platform asset.Platform, version asset.Version) error {
	const op = "usc.LoadVulkan"
	if err := s.requireEmpty(op); err != nil {
		return err
	}
	payload, err := extract.Binary(r, extract.BackendVulkan, platform, version)
	if err != nil {
		return s.fail(op, err)
	}
	ins, err := spirv.Parse(payload.Data)
	if err != nil {
		return s.fail(op, err)
	}
	s.spv = ins
	s.loaded(op, extract.BackendVulkan, payload, slog.Int("instructions", len(ins)))
	return nil
}

// LoadMetal extracts and parses Metal source.
func (s *Session) LoadMetal(r io.Reader, platform asset.Platform, version asset.Version) error {
	const op = "usc.LoadMetal"
	if err := s.requireEmpty(op); err != nil {
		return err
	}
	payload, err := extract.Text(r, extract.BackendMetal, platform, version)
	if err != nil {
		return s.fail(op, err)
	}
	ins, err := msl.Parse(payload.Text())
	if err != nil {
		return s.fail(op, err)
	}
	s.metal = ins
	s.loaded(op, extract.BackendMetal, payload, slog.Int("instructions", len(ins)))
	return nil
}

// LoadNVN extracts both stages of a merged NVN blob and translates them
// with Options.Translator.
func (s *Session) LoadNVN(r io.Reader, platform asset.Platform, version asset.Version) error {
	const op = "usc.LoadNVN"
	if err := s.requireEmpty(op); err != nil {
		return err
	}
	payload, err := extract.NVN(r, platform, version)
	if err != nil {
		return s.fail(op, err)
	}
	pair, err := nvn.TranslatePair(s.opts.Translator, payload.Vertex.Data, payload.Fragment.Data)
	if err != nil {
		return s.fail(op, err)
	}
	s.pair = pair
	s.loaded(op, extract.BackendNVN, payload.Vertex,
		slog.Int("vertex_bytes", payload.Vertex.Len()),
		slog.Int("fragment_bytes", payload.Fragment.Len()))
	return nil
}

// ConvertDirectX maps the loaded DirectX shader. The stage comes from the
// bytecode's program type.
func (s *Session) ConvertDirectX() error {
	const op = "usc.ConvertDirectX"
	if err := s.requireLoaded(op, extract.BackendDirectX); err != nil {
		return err
	}
	ins, err := dxbc.Translate(s.dx, s.opts.Tables.DirectX)
	if err != nil {
		return s.fail(op, err)
	}
	s.converted(op, usil.Build(dxbc.Stage(s.dx.ProgramType), ins))
	return nil
}

// ConvertNVN maps one stage of the loaded NVN pair: ConsoleVS selects the
// vertex stage and ConsoleFS the fragment stage.
func (s *Session) ConvertNVN(pt asset.ProgramType) error {
	const op = "usc.ConvertNVN"
	if err := s.requireLoaded(op, extract.BackendNVN); err != nil {
		return err
	}
	var stage usil.Stage
	switch pt {
	case asset.ProgramTypeConsoleVS:
		stage = usil.StageVertex
	case asset.ProgramTypeConsoleFS:
		stage = usil.StageFragment
	default:
		return s.fail(op, usil.Errorf(usil.ErrUnsupportedType, usil.PhaseSession, op,
			"program type %s is not a console vertex or fragment type", pt))
	}
	ins, err := nvn.Translate(s.pair.Stage(stage), s.opts.Tables.NVN)
	if err != nil {
		return s.fail(op, err)
	}
	s.converted(op, usil.Build(stage, ins))
	return nil
}

// Convert dispatches on the program type:
//   - GLESVertex, GLESFragment: the loaded GLSL source
//   - VulkanVS, VulkanFS: the loaded SPIR-V module
//   - MetalVS, MetalFS: the loaded Metal source
//   - DX11 types: ConvertDirectX
//   - ConsoleVS, ConsoleFS: ConvertNVN
//
// Any other type is usil.ErrUnsupportedType.
func (s *Session) Convert(pt asset.ProgramType) error {
	const op = "usc.Convert"
	switch pt {
	case asset.ProgramTypeGLESVertex, asset.ProgramTypeGLESFragment:
		return s.convertSource(op, extract.BackendGLES, pt)
	case asset.ProgramTypeVulkanVS, asset.ProgramTypeVulkanFS:
		return s.convertSource(op, extract.BackendVulkan, pt)
	case asset.ProgramTypeMetalVS, asset.ProgramTypeMetalFS:
		return s.convertSource(op, extract.BackendMetal, pt)
	case asset.ProgramTypeConsoleVS, asset.ProgramTypeConsoleFS:
		return s.ConvertNVN(pt)
	}
	if pt.IsDirectX11() {
		return s.ConvertDirectX()
	}
	if err := s.requireNotConverted(op); err != nil {
		return err
	}
	return s.fail(op, usil.Errorf(usil.ErrUnsupportedType, usil.PhaseSession, op,
		"no conversion for program type %s", pt))
}

func (s *Session) convertSource(op string, backend extract.Backend, pt asset.ProgramType) error {
	if err := s.requireLoaded(op, backend); err != nil {
		return err
	}
	stage := usil.StageFragment
	if pt.IsVertex() {
		stage = usil.StageVertex
	}

	var (
		ins []usil.Instruction
		err error
	)
	switch backend {
	case extract.BackendGLES:
		var src []glsl.Instruction
		src, err = glsl.Parse(s.payload.Text(), stage)
		if err == nil {
			ins, err = glsl.Translate(src, s.opts.Tables.GLES)
		}
	case extract.BackendVulkan:
		ins, err = spirv.Translate(s.spv, s.opts.Tables.Vulkan)
	case extract.BackendMetal:
		ins, err = msl.Translate(s.metal, s.opts.Tables.Metal)
	}
	if err != nil {
		return s.fail(op, err)
	}
	s.converted(op, usil.Build(stage, ins))
	return nil
}

// Program returns the converted program. It is a usil.ErrSequencing error
// before conversion.
func (s *Session) Program() (*usil.Program, error) {
	if s.state < StateConverted {
		return nil, usil.NewError(usil.ErrSequencing, usil.PhaseSession, "usc.Program",
			"no program: call a Convert method first")
	}
	return s.program, nil
}

func (s *Session) requireEmpty(op string) error {
	if s.state != StateEmpty {
		return s.fail(op, usil.Errorf(usil.ErrSequencing, usil.PhaseSession, op,
			"session already loaded with %s", s.backend))
	}
	return nil
}

func (s *Session) requireNotConverted(op string) error {
	if s.state >= StateConverted {
		return s.fail(op, usil.NewError(usil.ErrSequencing, usil.PhaseSession, op, "program already converted"))
	}
	return nil
}

func (s *Session) requireLoaded(op string, backend extract.Backend) error {
	if err := s.requireNotConverted(op); err != nil {
		return err
	}
	if s.state != StateLoaded || s.backend != backend {
		return s.fail(op, usil.Errorf(usil.ErrSequencing, usil.PhaseSession, op,
			"call %s first", loadOps[backend]))
	}
	return nil
}

func (s *Session) loaded(op string, backend extract.Backend, payload *extract.RawPayload, attrs ...any) {
	s.backend = backend
	s.payload = payload
	s.state = StateLoaded
	s.log.Debug("payload loaded", append([]any{
		slog.String("op", op),
		slog.String("backend", backend.String()),
		slog.Int("offset", payload.Offset),
		slog.Int("bytes", payload.Len()),
	}, attrs...)...)
}

func (s *Session) converted(op string, p *usil.Program) {
	s.program = p
	s.state = StateConverted
	s.log.Debug("program converted",
		slog.String("op", op),
		slog.String("backend", s.backend.String()),
		slog.String("stage", p.Stage.String()),
		slog.Int("instructions", p.Len()))
}

func (s *Session) fail(op string, err error) error {
	s.log.Warn("operation failed",
		slog.String("op", op),
		slog.String("state", s.state.String()),
		slog.Any("error", err))
	return err
}
