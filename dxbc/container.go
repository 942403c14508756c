// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import (
	"encoding/binary"
	"fmt"
)

// Container layout.
const (
	containerMagic      = "DXBC"
	containerHeaderSize = 32 // magic, checksum[16], version, size, chunk count
	chunkHeaderSize     = 8
)

// Chunk is one container chunk.
type Chunk struct {
	FourCC string
	Data   []byte
}

// Container is a parsed DXBC container.
type Container struct {
	Checksum [16]byte
	Chunks   []Chunk
}

// Chunk returns the first chunk with one of the given fourccs.
func (c *Container) Chunk(fourccs ...string) (Chunk, bool) {
	for _, ch := range c.Chunks {
		for _, cc := range fourccs {
			if ch.FourCC == cc {
				return ch, true
			}
		}
	}
	return Chunk{}, false
}

// ParseContainer reads the DXBC chunk directory.
func ParseContainer(data []byte) (*Container, error) {
	if len(data) < containerHeaderSize {
		return nil, fmt.Errorf("container of %d bytes is shorter than its header", len(data))
	}
	if string(data[:4]) != containerMagic {
		return nil, fmt.Errorf("bad container magic %q", data[:4])
	}

	le := binary.LittleEndian
	total := le.Uint32(data[24:])
	if int(total) > len(data) {
		return nil, fmt.Errorf("container declares %d bytes but only %d are present", total, len(data))
	}
	count := le.Uint32(data[28:])
	if uint64(containerHeaderSize)+uint64(count)*4 > uint64(len(data)) {
		return nil, fmt.Errorf("chunk table of %d entries overruns the container", count)
	}

	c := &Container{Chunks: make([]Chunk, 0, count)}
	copy(c.Checksum[:], data[4:20])
	for i := range count {
		off := le.Uint32(data[containerHeaderSize+4*i:])
		if uint64(off)+chunkHeaderSize > uint64(len(data)) {
			return nil, fmt.Errorf("chunk %d at %#x overruns the container", i, off)
		}
		size := le.Uint32(data[off+4:])
		start := uint64(off) + chunkHeaderSize
		if start+uint64(size) > uint64(len(data)) {
			return nil, fmt.Errorf("chunk %d (%s) of %d bytes overruns the container", i, data[off:off+4], size)
		}
		c.Chunks = append(c.Chunks, Chunk{
			FourCC: string(data[off : off+4]),
			Data:   data[start : start+uint64(size)],
		})
	}
	return c, nil
}
