package extract

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/usil"
)

// Text extracts a GLES or Metal source payload. A UTF-8 byte order mark is
// stripped; invalid UTF-8 is a format error.
func Text(r io.Reader, backend Backend, platform asset.Platform, version asset.Version) (*RawPayload, error) {
	const op = "extract.Text"

	data, err := readAll(r, op)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, usil.NewError(usil.ErrFormat, usil.PhaseExtract, op, "source is not valid UTF-8")
	}
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseExtract, op, err, "decode source")
	}

	return &RawPayload{
		Backend:  backend,
		Platform: platform,
		Version:  version,
		Data:     text,
		Offset:   len(data) - len(text),
	}, nil
}

// Binary extracts a payload that is the whole stream.
func Binary(r io.Reader, backend Backend, platform asset.Platform, version asset.Version) (*RawPayload, error) {
	data, err := readAll(r, "extract.Binary")
	if err != nil {
		return nil, err
	}
	return &RawPayload{
		Backend:  backend,
		Platform: platform,
		Version:  version,
		Data:     data,
	}, nil
}
