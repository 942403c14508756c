// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package nvn_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/usc/nvn"
	"github.com/gogpu/usc/usil"
)

const (
	pt      = uint64(nvn.PredicateTrue) << 16
	control = 0x001f8000fc0007e0
)

func op(top uint16) uint64 { return uint64(top) << 48 }

func rd(n uint64) uint64 { return n }
func ra(n uint64) uint64 { return n << 8 }
func rb(n uint64) uint64 { return n << 20 }
func rc(n uint64) uint64 { return n << 39 }

// program lays out words three to a bundle after a zeroed header, padding
// the last bundle with zero words.
func program(words ...uint64) []byte {
	buf := make([]byte, nvn.HeaderSize)
	for i, w := range words {
		if i%3 == 0 {
			buf = binary.LittleEndian.AppendUint64(buf, control)
		}
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	for i := len(words); i%3 != 0; i++ {
		buf = binary.LittleEndian.AppendUint64(buf, 0)
	}
	return buf
}

func sampleProgram() []byte {
	return program(
		op(0xE000)|pt|0x70<<28|rd(0),
		op(0xC038)|pt|1<<36|ra(0)|rd(4),
		op(0x5080)|pt|5<<20|ra(4)|rd(5),
		op(0x5980)|pt|rc(nvn.RZ)|rb(5)|ra(4)|rd(6),
		op(0x5C58)|pt|1<<50|1<<49|1<<48|rb(5)|ra(6)|rd(7),
		op(0xE240)|pt|8<<20,
		op(0x5C40)|pt|2<<41|rb(3)|ra(2)|rd(1),
		op(0xE300)|pt,
	)
}

func listing(ctx nvn.Context) []string {
	var out []string
	for _, in := range ctx.Instructions() {
		out = append(out, in.String())
	}
	return out
}

func TestMaxwellTranslator(t *testing.T) {
	ctx, err := nvn.MaxwellTranslator{}.Translate(sampleProgram())
	require.NoError(t, err)

	want := []string{
		"ipa R0, a[0x70]",
		"tex R4, R0, t1",
		"mufu.rsq R5, R4",
		"ffma R6, R4, R5, RZ",
		"fadd.sat R7, -R6, |R5|",
		"bra @L48",
		"label @L48",
		"lop.xor R1, R2, R3",
		"exit",
	}
	if diff := cmp.Diff(want, listing(ctx)); diff != "" {
		t.Errorf("disassembly mismatch (-want +got):\n%s", diff)
	}

	var addrs []uint32
	for _, in := range ctx.Instructions() {
		addrs = append(addrs, in.Address)
	}
	assert.Equal(t, []uint32{8, 16, 24, 40, 48, 56, 72, 72, 80}, addrs)

	s, ok := ctx.(*nvn.Shader)
	require.True(t, ok)
	assert.Len(t, s.Header, nvn.HeaderSize)
}

func TestMaxwellTranslator_Fields(t *testing.T) {
	tests := []struct {
		name string
		word uint64
		want string
	}{
		{"mov", op(0x5C98) | pt | rb(9) | rd(2), "mov R2, R9"},
		{"iadd", op(0x5C10) | pt | rb(3) | ra(2) | rd(1), "iadd R1, R2, R3"},
		{"shl", op(0x5C48) | pt | rb(3) | ra(2) | rd(1), "shl R1, R2, R3"},
		{"shr", op(0x5C28) | pt | rb(3) | ra(2) | rd(1), "shr R1, R2, R3"},
		{"fmul negated", op(0x5C68) | pt | 1<<48 | rb(3) | ra(2) | rd(1), "fmul R1, R2, -R3"},
		{"mufu sqrt", op(0x5080) | pt | 8<<20 | ra(1) | rd(1), "mufu.sqrt R1, R1"},
		{"mufu cos", op(0x5080) | pt | ra(1) | rd(1), "mufu.cos R1, R1"},
		{"lop pass", op(0x5C40) | pt | 3<<41 | rb(3) | ra(2) | rd(1), "lop.pass_b R1, R2, R3"},
		{"predicated kil", op(0xE330) | 1<<19, "@!P0 kil"},
		{"sync", op(0xF0F8) | pt, "sync"},
		{"nop", op(0x50B0) | pt, "nop"},
		{"rz destination", op(0x5C98) | pt | rb(1) | rd(nvn.RZ), "mov RZ, R1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := nvn.MaxwellTranslator{}.Translate(program(tt.word))
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, listing(ctx))
		})
	}
}

func TestMaxwellTranslator_StopsAtZeroWord(t *testing.T) {
	code := program(op(0xE300)|pt, 0, op(0x5C98)|pt)
	ctx, err := nvn.MaxwellTranslator{}.Translate(code)
	require.NoError(t, err)
	assert.Equal(t, []string{"exit"}, listing(ctx))
}

func TestMaxwellTranslator_Malformed(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want string
	}{
		{"short header", make([]byte, nvn.HeaderSize-1), "program header"},
		{"partial word", append(program(op(0xE300)|pt), 1, 2, 3), "not a multiple of 8"},
		{"unknown encoding", program(op(0x1234) | pt), "unknown encoding 0x1234"},
		{"unknown mufu function", program(op(0x5080) | pt | 6<<20), "unknown mufu function 6"},
		{"branch past end", program(op(0xE240)|pt|0x100<<20, op(0xE300)|pt), "outside the decoded code"},
		{"branch into control word", program(op(0xE240)|pt|0x10<<20, op(0xE300)|pt), "not an instruction slot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := nvn.MaxwellTranslator{}.Translate(tt.code)
			require.Error(t, err)
			assert.True(t, usil.IsKind(err, usil.ErrFormat), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTranslate(t *testing.T) {
	ctx, err := nvn.MaxwellTranslator{}.Translate(sampleProgram())
	require.NoError(t, err)

	got, err := nvn.Translate(ctx, nil)
	require.NoError(t, err)

	var ops []usil.Opcode
	for _, in := range got {
		ops = append(ops, in.Op)
	}
	want := []usil.Opcode{
		usil.OpLoad, usil.OpSample, usil.OpRsqrt, usil.OpMad, usil.OpAdd,
		usil.OpBranch, usil.OpLabel, usil.OpXor, usil.OpReturn,
	}
	assert.Equal(t, want, ops)
	assert.Equal(t, usil.FlagSaturate, got[4].Flags)
}

func TestDefaultTable_Totality(t *testing.T) {
	for _, op := range nvn.Opcodes() {
		_, ok := nvn.DefaultTable.Lookup(op)
		assert.True(t, ok, "%s missing from table", op)
	}
	c, _ := nvn.DefaultTable.Lookup(nvn.OpSYNC)
	assert.Equal(t, usil.OpNone, c)
}

type failingTranslator struct{ err error }

func (f failingTranslator) Translate([]byte) (nvn.Context, error) { return nil, f.err }

func TestTranslatePair(t *testing.T) {
	pair, err := nvn.TranslatePair(nvn.MaxwellTranslator{}, sampleProgram(), program(op(0xE300)|pt))
	require.NoError(t, err)
	assert.Len(t, pair.Stage(usil.StageVertex).Instructions(), 9)
	assert.Len(t, pair.Stage(usil.StageFragment).Instructions(), 1)

	cause := errors.New("decompiler crashed")
	_, err = nvn.TranslatePair(failingTranslator{cause}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, usil.IsKind(err, usil.ErrFormat))
	assert.Contains(t, err.Error(), "vertex stage")
}
