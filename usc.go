// Package usc converts engine shader payloads from several graphics
// backends into USIL, a canonical shader instruction list.
//
// USC (Ultra Shader Converter) handles five backend families:
//   - DirectX bytecode (SM4/SM5 DXBC)
//   - GLES source (GLSL with VERTEX/FRAGMENT sections)
//   - Vulkan (SPIR-V)
//   - Metal source (MSL)
//   - NVN (console Maxwell machine code)
//
// Conversion runs in stages:
//
//	Payload → Extract → Parse → Map → Program → [Metadata + Optimize]
//
// A Session drives one conversion step by step. Convert runs a whole
// conversion from a Request, and ConvertBatch runs many in parallel.
//
// Example:
//
//	p, err := usc.Convert(blob, usc.Request{
//	    Platform: asset.PlatformD3D11,
//	    Version:  asset.MustParseVersion("2021.3.1f1"),
//	}, usc.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	usil.Print(os.Stdout, p)
package usc

import (
	"fmt"
	"io"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/dxbc"
	"github.com/gogpu/usc/extract"
	"github.com/gogpu/usc/glsl"
	"github.com/gogpu/usc/msl"
	"github.com/gogpu/usc/nvn"
	"github.com/gogpu/usc/spirv"
	"github.com/gogpu/usc/usil"
)

// Request describes one conversion.
type Request struct {
	// Backend overrides the backend implied by Platform.
	Backend *extract.Backend

	Platform asset.Platform
	Version  asset.Version

	// ProgramType selects the stage for GLES, Vulkan, Metal and NVN
	// payloads. DirectX payloads carry their own.
	ProgramType asset.ProgramType

	// Metadata, when set, is applied after conversion.
	Metadata *Metadata
}

// Metadata is the engine-side description of a sub-program.
type Metadata struct {
	SubProgram asset.SubProgram `yaml:"sub_program"`
	Params     asset.Params     `yaml:"params"`
}

// BackendFor returns the backend a request converts from.
func (req Request) BackendFor() (extract.Backend, error) {
	if req.Backend != nil {
		return *req.Backend, nil
	}
	b, ok := extract.BackendFor(req.Platform)
	if !ok {
		return 0, usil.Errorf(usil.ErrUnsupportedFormat, usil.PhaseSession, "usc.Convert",
			"platform %s has no shader backend", req.Platform)
	}
	return b, nil
}

// Convert reads one payload from r and converts it as described by req.
func Convert(r io.Reader, req Request, opts Options) (*usil.Program, error) {
	p, _, err := convert(r, req, opts)
	return p, err
}

// convert also returns the session ID for batch results.
func convert(r io.Reader, req Request, opts Options) (*usil.Program, string, error) {
	s := NewSession(opts)

	backend, err := req.BackendFor()
	if err != nil {
		return nil, s.ID(), err
	}
	if err := s.Load(r, backend, req.Platform, req.Version); err != nil {
		return nil, s.ID(), fmt.Errorf("load: %w", err)
	}

	if backend == extract.BackendDirectX {
		err = s.ConvertDirectX()
	} else {
		err = s.Convert(req.ProgramType)
	}
	if err != nil {
		return nil, s.ID(), fmt.Errorf("convert: %w", err)
	}

	if req.Metadata != nil {
		if err := s.ApplyMetadata(req.Metadata.SubProgram, req.Metadata.Params, req.Version); err != nil {
			return nil, s.ID(), fmt.Errorf("metadata: %w", err)
		}
	}

	p, err := s.Program()
	return p, s.ID(), err
}

// Disassemble writes the backend-native instructions of a payload, one per
// line, before any mapping. Stage selects the GLSL section; NVN payloads
// print both stages, decoded with opts.Translator.
func Disassemble(w io.Writer, r io.Reader, req Request, stage usil.Stage, opts Options) error {
	opts = opts.withDefaults()
	backend, err := req.BackendFor()
	if err != nil {
		return err
	}

	if backend == extract.BackendNVN {
		payload, err := extract.NVN(r, req.Platform, req.Version)
		if err != nil {
			return err
		}
		pair, err := nvn.TranslatePair(opts.Translator, payload.Vertex.Data, payload.Fragment.Data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "; vertex"); err != nil {
			return err
		}
		if err := writeLines(w, pair.Vertex.Instructions()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "; fragment"); err != nil {
			return err
		}
		return writeLines(w, pair.Fragment.Instructions())
	}

	payload, err := extract.Extract(r, backend, req.Platform, req.Version)
	if err != nil {
		return err
	}
	switch backend {
	case extract.BackendDirectX:
		s, err := dxbc.Parse(payload.Data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, ";", s.Profile()); err != nil {
			return err
		}
		return writeLines(w, s.Instructions)
	case extract.BackendGLES:
		ins, err := glsl.Parse(payload.Text(), stage)
		if err != nil {
			return err
		}
		return writeLines(w, ins)
	case extract.BackendVulkan:
		ins, err := spirv.Parse(payload.Data)
		if err != nil {
			return err
		}
		return writeLines(w, ins)
	default:
		ins, err := msl.Parse(payload.Text())
		if err != nil {
			return err
		}
		return writeLines(w, ins)
	}
}

func writeLines[T fmt.Stringer](w io.Writer, items []T) error {
	for _, it := range items {
		if _, err := fmt.Fprintln(w, it.String()); err != nil {
			return err
		}
	}
	return nil
}
