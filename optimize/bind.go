package optimize

import (
	"strings"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/usil"
)

// Register files that address declared resources.
const (
	fileConstantBuffer = "cb"
	fileTexture        = "t"
	fileSampler        = "s"

	registerBytes = 16
)

// BindParameters records every operand that refers to a declared
// parameter as a usil.Binding, deduplicated in first-use order. Symbols
// are matched by name (optionally through their buffer's name, as in
// ubo.tint); constant buffer registers cb<slot>[<vec>] by slot and byte
// offset; texture and sampler registers by slot. Operands naming nothing
// declared are left unbound.
var BindParameters = Pass{
	Name: "BindParameters",
	Run: func(p *usil.Program, params asset.Params) error {
		b := newBinder(params)
		for _, in := range p.Instructions {
			for _, o := range in.Operands {
				b.operand(o)
			}
		}
		p.Bindings = b.bindings
		return nil
	},
}

type binder struct {
	params   asset.Params
	seen     map[usil.Binding]bool
	bindings []usil.Binding
}

func newBinder(params asset.Params) *binder {
	return &binder{params: params, seen: make(map[usil.Binding]bool)}
}

func (b *binder) add(binding usil.Binding) {
	if b.seen[binding] {
		return
	}
	b.seen[binding] = true
	b.bindings = append(b.bindings, binding)
}

func (b *binder) operand(o usil.Operand) {
	if o.Rel != nil {
		b.operand(*o.Rel)
	}
	switch o.Kind {
	case usil.OperandSymbol:
		b.symbol(o.Name)
	case usil.OperandRegister:
		b.register(o)
	}
}

func (b *binder) symbol(name string) {
	base, member, _ := strings.Cut(name, ".")
	if i := strings.IndexByte(base, '['); i >= 0 {
		base = base[:i]
	}
	if i := strings.IndexAny(member, ".["); i >= 0 {
		member = member[:i]
	}

	for _, cb := range b.params.ConstantBuffers {
		for _, np := range cb.Params {
			if np.Name == base || (cb.Name == base && np.Name == member) {
				b.add(usil.Binding{Name: np.Name, Kind: usil.BindingConstant, Slot: cb.Slot, Offset: np.Index})
				return
			}
		}
	}
	for _, tex := range b.params.Textures {
		if tex.Name == base {
			b.add(usil.Binding{Name: tex.Name, Kind: usil.BindingTexture, Slot: tex.Index})
			return
		}
	}
}

func (b *binder) register(o usil.Operand) {
	if len(o.Index) == 0 {
		return
	}
	slot := int(o.Index[0])
	switch o.Name {
	case fileConstantBuffer:
		if len(o.Index) < 2 {
			return
		}
		offset := int(o.Index[1]) * registerBytes
		for _, cb := range b.params.ConstantBuffers {
			if cb.Slot != slot {
				continue
			}
			for _, np := range cb.Params {
				if np.Contains(offset) {
					b.add(usil.Binding{Name: np.Name, Kind: usil.BindingConstant, Slot: slot, Offset: np.Index})
					return
				}
			}
		}
	case fileTexture:
		for _, tex := range b.params.Textures {
			if tex.Index == slot {
				b.add(usil.Binding{Name: tex.Name, Kind: usil.BindingTexture, Slot: slot})
				return
			}
		}
	case fileSampler:
		for _, tex := range b.params.Textures {
			if tex.SamplerIndex == slot {
				b.add(usil.Binding{Name: tex.Name, Kind: usil.BindingSampler, Slot: slot})
				return
			}
		}
	}
}
