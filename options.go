package usc

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/dxbc"
	"github.com/gogpu/usc/extract"
	"github.com/gogpu/usc/glsl"
	"github.com/gogpu/usc/msl"
	"github.com/gogpu/usc/nvn"
	"github.com/gogpu/usc/optimize"
	"github.com/gogpu/usc/spirv"
	"github.com/gogpu/usc/usil"
)

// Optimizer rewrites a converted program in place once metadata is known.
type Optimizer interface {
	Optimize(p *usil.Program, params asset.Params) error
}

// Tables holds the opcode table of each backend. A nil entry selects the
// backend's embedded default.
type Tables struct {
	DirectX *usil.Table[dxbc.Opcode]
	GLES    *usil.Table[glsl.Opcode]
	Vulkan  *usil.Table[spirv.OpCode]
	Metal   *usil.Table[msl.Opcode]
	NVN     *usil.Table[nvn.Opcode]
}

// DefaultTables returns the embedded tables of every backend.
func DefaultTables() Tables {
	return Tables{
		DirectX: dxbc.DefaultTable,
		GLES:    glsl.DefaultTable,
		Vulkan:  spirv.DefaultTable,
		Metal:   msl.DefaultTable,
		NVN:     nvn.DefaultTable,
	}
}

// Overlay returns a copy of t with name→name overrides applied per
// backend. Keys of overlays are backend names as accepted by
// extract.ParseBackend.
func (t Tables) Overlay(overlays map[string]map[string]string) (Tables, error) {
	out := t.withDefaults()
	for name, names := range overlays {
		b, err := extract.ParseBackend(name)
		if err != nil {
			return Tables{}, fmt.Errorf("opcode overlay: %w", err)
		}
		switch b {
		case extract.BackendDirectX:
			out.DirectX, err = out.DirectX.ExtendNames(names, dxbc.ParseOpcode)
		case extract.BackendGLES:
			out.GLES, err = out.GLES.ExtendNames(names, glsl.ParseOpcode)
		case extract.BackendVulkan:
			out.Vulkan, err = out.Vulkan.ExtendNames(names, spirv.ParseOpCode)
		case extract.BackendMetal:
			out.Metal, err = out.Metal.ExtendNames(names, msl.ParseOpcode)
		case extract.BackendNVN:
			out.NVN, err = out.NVN.ExtendNames(names, nvn.ParseOpcode)
		}
		if err != nil {
			return Tables{}, fmt.Errorf("opcode overlay %s: %w", b, err)
		}
	}
	return out, nil
}

func (t Tables) withDefaults() Tables {
	d := DefaultTables()
	if t.DirectX == nil {
		t.DirectX = d.DirectX
	}
	if t.GLES == nil {
		t.GLES = d.GLES
	}
	if t.Vulkan == nil {
		t.Vulkan = d.Vulkan
	}
	if t.Metal == nil {
		t.Metal = d.Metal
	}
	if t.NVN == nil {
		t.NVN = d.NVN
	}
	return t
}

// Options configures conversion sessions.
type Options struct {
	// Logger receives session events. Nil uses the package logger.
	Logger *slog.Logger

	// Optimizer runs during ApplyMetadata. Nil uses optimize.Default().
	Optimizer Optimizer

	// Translator decodes console machine code. Nil uses
	// nvn.MaxwellTranslator.
	Translator nvn.Translator

	// Tables are the opcode tables; nil entries use the embedded defaults.
	Tables Tables

	// Parallelism bounds concurrent sessions in ConvertBatch. Zero or less
	// means one.
	Parallelism int
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{
		Optimizer:   optimize.Default(),
		Translator:  nvn.MaxwellTranslator{},
		Tables:      DefaultTables(),
		Parallelism: 4,
	}
}

func (o Options) withDefaults() Options {
	if o.Optimizer == nil {
		o.Optimizer = optimize.Default()
	}
	if o.Translator == nil {
		o.Translator = nvn.MaxwellTranslator{}
	}
	o.Tables = o.Tables.withDefaults()
	if o.Parallelism <= 0 {
		o.Parallelism = 1
	}
	return o
}
