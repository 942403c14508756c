package usc

import (
	"log/slog"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/usil"
)

// ApplyMetadata sets the program's stage from the sub-program's type and
// runs Options.Optimizer with params. It is valid once, after conversion.
//
// The raw program type is resolved against version: engines before 5.5
// use the legacy numbering. Types that are neither vertex nor fragment are
// usil.ErrUnsupportedStage. When the optimizer fails the session keeps its
// unoptimized program and stays converted.
func (s *Session) ApplyMetadata(sub asset.SubProgram, params asset.Params, version asset.Version) error {
	const op = "usc.ApplyMetadata"
	switch s.state {
	case StateConverted:
	case StateFinalized:
		return s.fail(op, usil.NewError(usil.ErrSequencing, usil.PhaseMetadata, op, "metadata already applied"))
	default:
		return s.fail(op, usil.NewError(usil.ErrSequencing, usil.PhaseMetadata, op, "call ConvertDirectX first"))
	}

	pt, ok := sub.ProgramType(version)
	if !ok {
		return s.fail(op, usil.Errorf(usil.ErrUnsupportedStage, usil.PhaseMetadata, op,
			"program type %d is unknown to engine %s", sub.RawProgramType, version))
	}
	var stage usil.Stage
	switch {
	case pt.IsVertex():
		stage = usil.StageVertex
	case pt.IsFragment():
		stage = usil.StageFragment
	default:
		return s.fail(op, usil.Errorf(usil.ErrUnsupportedStage, usil.PhaseMetadata, op,
			"program type %s is neither vertex nor fragment", pt))
	}

	p := s.program.Clone()
	p.Stage = stage
	if err := s.opts.Optimizer.Optimize(p, params); err != nil {
		return s.fail(op, err)
	}

	s.program = p
	s.state = StateFinalized
	s.log.Debug("metadata applied",
		slog.String("op", op),
		slog.String("backend", s.backend.String()),
		slog.String("program_type", pt.String()),
		slog.Int("bindings", len(p.Bindings)),
		slog.Int("instructions", p.Len()))
	return nil
}
