package extract

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/usil"
)

// Merged NVN layout.
const (
	nvnMarkerOffset = 0x08
	nvnHeaderOffset = 0x18
	nvnHeaderSize   = 0x48
	// NVNBase is the position right after the offset table.
	NVNBase = nvnHeaderOffset + nvnHeaderSize
	// NVNStageHeader is the per-stage block skipped before the code.
	NVNStageHeader = 0x30
)

// nvnHeader is the merged-layout offset table at 0x18.
type nvnHeader struct {
	FragOffset     uint32
	VertOffset     uint32
	_              [16]byte
	FragDataOffset uint32
	VertDataOffset uint32
	_              [16]byte
	FragFlags      uint32
	VertFlags      uint32
	_              [16]byte
}

// NVNPayload is the vertex/fragment pair of a merged NVN blob.
type NVNPayload struct {
	Vertex   *RawPayload
	Fragment *RawPayload
}

// NVN extracts both stages of a merged NVN blob.
func NVN(r io.Reader, platform asset.Platform, version asset.Version) (*NVNPayload, error) {
	const op = "extract.NVN"

	data, err := readAll(r, op)
	if err != nil {
		return nil, err
	}
	if len(data) < NVNBase {
		return nil, usil.Errorf(usil.ErrFormat, usil.PhaseExtract, op,
			"stream of %d bytes is shorter than the %#x-byte header", len(data), NVNBase)
	}

	marker := int64(binary.LittleEndian.Uint64(data[nvnMarkerOffset:]))
	if marker != -1 {
		return nil, usil.Errorf(usil.ErrUnsupportedFormat, usil.PhaseExtract, op,
			"separated nvn layout (marker %#x) is not supported", uint64(marker))
	}

	var h nvnHeader
	if err := binary.Read(bytes.NewReader(data[nvnHeaderOffset:NVNBase]), binary.LittleEndian, &h); err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseExtract, op, err, "read offset table")
	}

	vertStart := int64(NVNBase) + int64(h.VertOffset) + int64(h.VertDataOffset) + NVNStageHeader
	fragStart := int64(NVNBase) + int64(h.FragOffset) + int64(h.FragDataOffset) + NVNStageHeader
	end := int64(len(data))
	if vertStart > fragStart || fragStart > end {
		return nil, usil.Errorf(usil.ErrFormat, usil.PhaseExtract, op,
			"stage positions out of order: vertex %#x, fragment %#x, length %#x", vertStart, fragStart, end)
	}

	return &NVNPayload{
		Vertex: &RawPayload{
			Backend:  BackendNVN,
			Platform: platform,
			Version:  version,
			Data:     bytes.Clone(data[vertStart:fragStart]),
			Offset:   int(vertStart),
			Flags:    h.VertFlags,
		},
		Fragment: &RawPayload{
			Backend:  BackendNVN,
			Platform: platform,
			Version:  version,
			Data:     bytes.Clone(data[fragStart:]),
			Offset:   int(fragStart),
			Flags:    h.FragFlags,
		},
	}, nil
}
