// Package optimize is the default program optimizer: a fixed pipeline of
// in-place passes run after metadata is applied.
package optimize

import (
	"slices"
	"strings"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/usil"
)

// Pass is one optimizer step. Run mutates p in place.
type Pass struct {
	Name string
	Run  func(p *usil.Program, params asset.Params) error
}

// Optimizer runs passes in order, stopping at the first failure.
type Optimizer struct {
	passes []Pass
}

// New returns an optimizer running passes in order.
func New(passes ...Pass) *Optimizer {
	return &Optimizer{passes: passes}
}

// Default returns the standard pipeline: DropNops, DropSelfMoves and
// BindParameters.
func Default() *Optimizer {
	return New(DropNops, DropSelfMoves, BindParameters)
}

// Passes returns the pass names in run order.
func (o *Optimizer) Passes() []string {
	names := make([]string, len(o.passes))
	for i, p := range o.passes {
		names[i] = p.Name
	}
	return names
}

// Optimize runs every pass over p. A failing pass is reported with its
// name; p may be partially transformed, so callers that need atomicity
// optimize a clone.
func (o *Optimizer) Optimize(p *usil.Program, params asset.Params) error {
	for _, pass := range o.passes {
		if err := pass.Run(p, params); err != nil {
			kind, ok := usil.KindOf(err)
			if !ok {
				kind = usil.ErrFormat
			}
			return usil.Wrap(kind, usil.PhaseOptimize, "optimize."+pass.Name, err, "pass failed")
		}
	}
	return nil
}

// DropNops removes nop and comment instructions.
var DropNops = Pass{
	Name: "DropNops",
	Run: func(p *usil.Program, _ asset.Params) error {
		p.Instructions = filter(p.Instructions, func(in usil.Instruction) bool {
			return in.Op != usil.OpNop && in.Op != usil.OpComment
		})
		return nil
	},
}

// DropSelfMoves removes moves whose destination components read back
// exactly the same source components, such as mov r0.xy, r0.xyxx.
var DropSelfMoves = Pass{
	Name: "DropSelfMoves",
	Run: func(p *usil.Program, _ asset.Params) error {
		p.Instructions = filter(p.Instructions, func(in usil.Instruction) bool {
			return !isSelfMove(in)
		})
		return nil
	},
}

func filter(ins []usil.Instruction, keep func(usil.Instruction) bool) []usil.Instruction {
	out := ins[:0]
	for _, in := range ins {
		if keep(in) {
			out = append(out, in)
		}
	}
	return out
}

func isSelfMove(in usil.Instruction) bool {
	if in.Op != usil.OpMove || len(in.Operands) != 2 || in.Flags&usil.FlagSaturate != 0 {
		return false
	}
	dst, src := in.Operands[0], in.Operands[1]
	if src.Modifier != usil.ModNone || dst.Modifier != usil.ModNone || src.Rel != nil || dst.Rel != nil {
		return false
	}
	if dst.Kind != src.Kind || dst.Name != src.Name || len(dst.Imm) != 0 || !slices.Equal(dst.Index, src.Index) {
		return false
	}
	return sameComponents(dst.Swizzle, src.Swizzle)
}

// sameComponents reports whether reading src into the components of mask
// leaves them unchanged. src is either positional (one component per mask
// component) or a full four-component swizzle indexed by component.
func sameComponents(mask, src string) bool {
	const xyzw = "xyzw"
	switch {
	case mask == "" || mask == xyzw:
		return src == "" || src == xyzw
	case len(src) == len(mask):
		return src == mask
	case len(src) == 4:
		for i := 0; i < len(mask); i++ {
			c := mask[i]
			pos := strings.IndexByte(xyzw, c)
			if pos < 0 || src[pos] != c {
				return false
			}
		}
		return true
	}
	return false
}
