// Package extract locates backend shader payloads inside the raw blobs an
// engine stores for each sub-program.
//
// Each backend has its own layout:
//   - DirectX: a version-dependent program header precedes the bytecode
//   - NVN: vertex and fragment binaries share one merged blob indexed by a
//     relative-offset table
//   - GLES and Metal: the blob is UTF-8 source text
//   - Vulkan: the blob is the SPIR-V module itself
//
// Every function reads its stream exactly once and returns buffers that do
// not alias the input.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/usil"
)

// Backend is a shader backend family.
type Backend uint8

const (
	BackendDirectX Backend = iota
	BackendGLES
	BackendVulkan
	BackendMetal
	BackendNVN
)

var backendNames = [...]string{
	BackendDirectX: "directx",
	BackendGLES:    "gles",
	BackendVulkan:  "vulkan",
	BackendMetal:   "metal",
	BackendNVN:     "nvn",
}

func (b Backend) String() string {
	if int(b) < len(backendNames) {
		return backendNames[b]
	}
	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// ParseBackend resolves a backend name. "dx", "glsl", "spirv" and "msl"
// are accepted as aliases.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "directx", "dx", "dxbc":
		return BackendDirectX, nil
	case "gles", "glsl", "opengl":
		return BackendGLES, nil
	case "vulkan", "spirv", "spir-v":
		return BackendVulkan, nil
	case "metal", "msl":
		return BackendMetal, nil
	case "nvn", "switch":
		return BackendNVN, nil
	}
	return 0, fmt.Errorf("unknown backend %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	v, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// BackendFor returns the backend a platform's blobs are stored in.
func BackendFor(p asset.Platform) (Backend, bool) {
	switch {
	case p.IsDirectX():
		return BackendDirectX, true
	case p == asset.PlatformGLES20 || p == asset.PlatformGLES3Plus ||
		p == asset.PlatformOpenGLCore || p == asset.PlatformOpenGL:
		return BackendGLES, true
	case p == asset.PlatformVulkan:
		return BackendVulkan, true
	case p == asset.PlatformMetal:
		return BackendMetal, true
	case p == asset.PlatformSwitch:
		return BackendNVN, true
	}
	return 0, false
}

// RawPayload is an extracted shader payload. It is immutable after
// extraction and owns its buffer.
type RawPayload struct {
	Backend  Backend
	Platform asset.Platform
	Version  asset.Version

	// Data is the payload bytes.
	Data []byte

	// Offset is the payload's absolute position in the source stream.
	Offset int

	// HeaderVersion is the DirectX program header version byte.
	HeaderVersion int

	// Flags are the NVN stage flags.
	Flags uint32
}

// Len returns the payload length.
func (p *RawPayload) Len() int {
	return len(p.Data)
}

// Text returns the payload as a string.
func (p *RawPayload) Text() string {
	return string(p.Data)
}

// Extract reads r and extracts the payload for backend. NVN streams carry
// two payloads; use NVN for those.
func Extract(r io.Reader, backend Backend, platform asset.Platform, version asset.Version) (*RawPayload, error) {
	switch backend {
	case BackendDirectX:
		return DirectX(r, platform, version)
	case BackendGLES, BackendMetal:
		return Text(r, backend, platform, version)
	case BackendVulkan:
		return Binary(r, backend, platform, version)
	case BackendNVN:
		return nil, usil.NewError(usil.ErrUnsupportedFormat, usil.PhaseExtract, "extract.Extract",
			"nvn streams hold two stages; use extract.NVN")
	}
	return nil, usil.Errorf(usil.ErrUnsupportedFormat, usil.PhaseExtract, "extract.Extract", "unknown backend %s", backend)
}

func readAll(r io.Reader, op string) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, usil.Wrap(usil.ErrFormat, usil.PhaseExtract, op, err, "read stream")
	}
	return data, nil
}
