package extract

import (
	"io"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/usil"
)

// Program header layout.
const (
	// dxHeaderBase is the header size before engine 5.4.
	dxHeaderBase = 5
	// dxHeaderGSInput is the size once the geometry input primitive field
	// was added in 5.4.
	dxHeaderGSInput = 6
	// dxHeaderExtension is the block added by header version 2.
	dxHeaderExtension = 0x20
)

// DirectXOffset returns the bytecode offset for a DirectX blob.
func DirectXOffset(platform asset.Platform, version asset.Version, headerVersion int) (int, error) {
	if !platform.IsDirectX() {
		return 0, usil.Errorf(usil.ErrUnsupportedFormat, usil.PhaseExtract, "extract.DirectXOffset",
			"platform %s does not store DirectX bytecode", platform)
	}
	if !platform.HasDirectXHeader() {
		return 0, nil
	}

	offset := dxHeaderBase
	if version.IsGreaterEqual(5, 4) {
		offset = dxHeaderGSInput
	}
	if headerVersion >= 2 {
		offset += dxHeaderExtension
	}
	return offset, nil
}

// DirectX extracts DirectX bytecode. The first byte of the stream is the
// header version; on headerless platforms it is part of the payload.
func DirectX(r io.Reader, platform asset.Platform, version asset.Version) (*RawPayload, error) {
	const op = "extract.DirectX"

	data, err := readAll(r, op)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, usil.NewError(usil.ErrFormat, usil.PhaseExtract, op, "empty stream")
	}

	headerVersion := int(data[0])
	offset, err := DirectXOffset(platform, version, headerVersion)
	if err != nil {
		return nil, err
	}
	if len(data) < offset {
		return nil, usil.Errorf(usil.ErrFormat, usil.PhaseExtract, op,
			"stream of %d bytes is shorter than header offset %#x", len(data), offset)
	}

	return &RawPayload{
		Backend:       BackendDirectX,
		Platform:      platform,
		Version:       version,
		Data:          data[offset:],
		Offset:        offset,
		HeaderVersion: headerVersion,
	}, nil
}
