package usil

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// BackendOpcode is the constraint on backend opcode enums.
type BackendOpcode interface {
	comparable
	String() string
}

// Source is implemented by every backend instruction type.
type Source[K BackendOpcode] interface {
	BackendOpcode() K
	BackendOperands() []Operand
}

// Flagged is implemented by backend instructions that carry modifiers.
type Flagged interface {
	BackendFlags() Flags
}

// Table maps backend opcodes onto canonical opcodes. A Table is read-only
// after construction and safe for concurrent use.
type Table[K BackendOpcode] struct {
	backend string
	entries map[K]Opcode
}

// NewTable builds a table from an explicit entry map.
func NewTable[K BackendOpcode](backend string, entries map[K]Opcode) *Table[K] {
	return &Table[K]{
		backend: backend,
		entries: maps.Clone(entries),
	}
}

// LoadTable builds a table from a YAML document mapping backend opcode names
// to canonical mnemonics. lookup resolves a backend opcode name.
func LoadTable[K BackendOpcode](backend string, data []byte, lookup func(string) (K, bool)) (*Table[K], error) {
	var names map[string]string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, Wrap(ErrFormat, PhaseMap, backend+".LoadTable", err, "invalid opcode table")
	}
	entries, err := resolveNames(backend, names, lookup)
	if err != nil {
		return nil, err
	}
	return &Table[K]{backend: backend, entries: entries}, nil
}

// MustLoadTable is like LoadTable but panics on error. It is meant for
// embedded tables loaded at package init.
func MustLoadTable[K BackendOpcode](backend string, data []byte, lookup func(string) (K, bool)) *Table[K] {
	t, err := LoadTable(backend, data, lookup)
	if err != nil {
		panic(err)
	}
	return t
}

func resolveNames[K BackendOpcode](backend string, names map[string]string, lookup func(string) (K, bool)) (map[K]Opcode, error) {
	entries := make(map[K]Opcode, len(names))
	for name, canonical := range names {
		op, ok := lookup(name)
		if !ok {
			return nil, Errorf(ErrFormat, PhaseMap, backend+".LoadTable", "unknown %s opcode %q", backend, name)
		}
		c, ok := ParseOpcode(canonical)
		if !ok {
			return nil, Errorf(ErrFormat, PhaseMap, backend+".LoadTable", "unknown canonical opcode %q for %s", canonical, name)
		}
		entries[op] = c
	}
	return entries, nil
}

// Backend returns the backend name the table serves.
func (t *Table[K]) Backend() string {
	return t.backend
}

// Len returns the number of entries.
func (t *Table[K]) Len() int {
	return len(t.entries)
}

// Lookup returns the canonical opcode for op.
func (t *Table[K]) Lookup(op K) (Opcode, bool) {
	c, ok := t.entries[op]
	return c, ok
}

// Domain returns the mapped backend opcodes sorted by name.
func (t *Table[K]) Domain() []K {
	keys := slices.Collect(maps.Keys(t.entries))
	slices.SortFunc(keys, func(a, b K) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	return keys
}

// Extend returns a new table with overrides applied on top of t.
func (t *Table[K]) Extend(overrides map[K]Opcode) *Table[K] {
	entries := maps.Clone(t.entries)
	maps.Copy(entries, overrides)
	return &Table[K]{backend: t.backend, entries: entries}
}

// ExtendNames is Extend with name-keyed overrides, as read from a YAML overlay.
func (t *Table[K]) ExtendNames(names map[string]string, lookup func(string) (K, bool)) (*Table[K], error) {
	overrides, err := resolveNames(t.backend, names, lookup)
	if err != nil {
		return nil, err
	}
	return t.Extend(overrides), nil
}

// Map translates one backend instruction. The boolean is false when the
// opcode maps to no canonical instruction.
func (t *Table[K]) Map(src Source[K]) (Instruction, bool, error) {
	op := src.BackendOpcode()
	c, ok := t.entries[op]
	if !ok {
		return Instruction{}, false, Errorf(ErrUnsupportedOpcode, PhaseMap, t.backend+".Map",
			"%s opcode %s has no canonical mapping", t.backend, op)
	}
	if c == OpNone {
		return Instruction{}, false, nil
	}
	in := Instruction{Op: c}
	if operands := src.BackendOperands(); len(operands) > 0 {
		in.Operands = make([]Operand, len(operands))
		for i, o := range operands {
			in.Operands[i] = o.Clone()
		}
	}
	if f, ok := src.(Flagged); ok {
		in.Flags = f.BackendFlags()
	}
	return in, true, nil
}

// Translate maps a whole backend sequence, preserving order.
func Translate[K BackendOpcode, S Source[K]](t *Table[K], src []S) ([]Instruction, error) {
	out := make([]Instruction, 0, len(src))
	for i, s := range src {
		in, ok, err := t.Map(s)
		if err != nil {
			if e, isErr := err.(*Error); isErr {
				e.Message = fmt.Sprintf("%s (instruction %d)", e.Message, i)
			}
			return nil, err
		}
		if ok {
			out = append(out, in)
		}
	}
	return out, nil
}
