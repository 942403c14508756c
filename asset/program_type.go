package asset

import (
	"fmt"
	"strings"
)

// ProgramType is a GPU program type. Values up to ProgramTypePS5NGGC use
// the engine's modern serialized numbering; the request-only types above
// 100 name source-backend conversions and never appear in serialized data.
type ProgramType int

const (
	ProgramTypeUnknown ProgramType = iota
	ProgramTypeGLLegacy
	ProgramTypeGLES31AEP
	ProgramTypeGLES31
	ProgramTypeGLES3
	ProgramTypeGLES
	ProgramTypeGLCore32
	ProgramTypeGLCore41
	ProgramTypeGLCore43
	ProgramTypeDX9VertexSM20
	ProgramTypeDX9VertexSM30
	ProgramTypeDX9PixelSM20
	ProgramTypeDX9PixelSM30
	ProgramTypeDX10Level9Vertex
	ProgramTypeDX10Level9Pixel
	ProgramTypeDX11VertexSM40
	ProgramTypeDX11VertexSM50
	ProgramTypeDX11PixelSM40
	ProgramTypeDX11PixelSM50
	ProgramTypeDX11GeometrySM40
	ProgramTypeDX11GeometrySM50
	ProgramTypeDX11HullSM50
	ProgramTypeDX11DomainSM50
	ProgramTypeMetalVS
	ProgramTypeMetalFS
	ProgramTypeSPIRV
	ProgramTypeConsoleVS
	ProgramTypeConsoleFS
	ProgramTypeConsoleHS
	ProgramTypeConsoleDS
	ProgramTypeConsoleGS
	ProgramTypeRayTracing
	ProgramTypePS5NGGC
)

// Request-only program types.
const (
	ProgramTypeGLESVertex ProgramType = 100 + iota
	ProgramTypeGLESFragment
	ProgramTypeVulkanVS
	ProgramTypeVulkanFS
)

var programTypeNames = map[ProgramType]string{
	ProgramTypeUnknown:          "Unknown",
	ProgramTypeGLLegacy:         "GLLegacy",
	ProgramTypeGLES31AEP:        "GLES31AEP",
	ProgramTypeGLES31:           "GLES31",
	ProgramTypeGLES3:            "GLES3",
	ProgramTypeGLES:             "GLES",
	ProgramTypeGLCore32:         "GLCore32",
	ProgramTypeGLCore41:         "GLCore41",
	ProgramTypeGLCore43:         "GLCore43",
	ProgramTypeDX9VertexSM20:    "DX9VertexSM20",
	ProgramTypeDX9VertexSM30:    "DX9VertexSM30",
	ProgramTypeDX9PixelSM20:     "DX9PixelSM20",
	ProgramTypeDX9PixelSM30:     "DX9PixelSM30",
	ProgramTypeDX10Level9Vertex: "DX10Level9Vertex",
	ProgramTypeDX10Level9Pixel:  "DX10Level9Pixel",
	ProgramTypeDX11VertexSM40:   "DX11VertexSM40",
	ProgramTypeDX11VertexSM50:   "DX11VertexSM50",
	ProgramTypeDX11PixelSM40:    "DX11PixelSM40",
	ProgramTypeDX11PixelSM50:    "DX11PixelSM50",
	ProgramTypeDX11GeometrySM40: "DX11GeometrySM40",
	ProgramTypeDX11GeometrySM50: "DX11GeometrySM50",
	ProgramTypeDX11HullSM50:     "DX11HullSM50",
	ProgramTypeDX11DomainSM50:   "DX11DomainSM50",
	ProgramTypeMetalVS:          "MetalVS",
	ProgramTypeMetalFS:          "MetalFS",
	ProgramTypeSPIRV:            "SPIRV",
	ProgramTypeConsoleVS:        "ConsoleVS",
	ProgramTypeConsoleFS:        "ConsoleFS",
	ProgramTypeConsoleHS:        "ConsoleHS",
	ProgramTypeConsoleDS:        "ConsoleDS",
	ProgramTypeConsoleGS:        "ConsoleGS",
	ProgramTypeRayTracing:       "RayTracing",
	ProgramTypePS5NGGC:          "PS5NGGC",
	ProgramTypeGLESVertex:       "GLESVertex",
	ProgramTypeGLESFragment:     "GLESFragment",
	ProgramTypeVulkanVS:         "VulkanVS",
	ProgramTypeVulkanFS:         "VulkanFS",
}

// legacyProgramTypes is the numbering used before engine 5.5. It shares
// 0..24 with the modern table, has no SPIR-V entry, and ends with the
// console types.
var legacyProgramTypes = [...]ProgramType{
	ProgramTypeUnknown, ProgramTypeGLLegacy, ProgramTypeGLES31AEP, ProgramTypeGLES31,
	ProgramTypeGLES3, ProgramTypeGLES, ProgramTypeGLCore32, ProgramTypeGLCore41,
	ProgramTypeGLCore43, ProgramTypeDX9VertexSM20, ProgramTypeDX9VertexSM30,
	ProgramTypeDX9PixelSM20, ProgramTypeDX9PixelSM30, ProgramTypeDX10Level9Vertex,
	ProgramTypeDX10Level9Pixel, ProgramTypeDX11VertexSM40, ProgramTypeDX11VertexSM50,
	ProgramTypeDX11PixelSM40, ProgramTypeDX11PixelSM50, ProgramTypeDX11GeometrySM40,
	ProgramTypeDX11GeometrySM50, ProgramTypeDX11HullSM50, ProgramTypeDX11DomainSM50,
	ProgramTypeMetalVS, ProgramTypeMetalFS,
	ProgramTypeConsoleVS, ProgramTypeConsoleFS, ProgramTypeConsoleHS,
	ProgramTypeConsoleDS, ProgramTypeConsoleGS,
}

// ProgramTypeFor resolves a serialized program type number for the given
// engine version. The boolean is false for numbers outside the table.
func ProgramTypeFor(raw int, v Version) (ProgramType, bool) {
	if v.IsGreaterEqual(5, 5) {
		if raw < 0 || raw > int(ProgramTypePS5NGGC) {
			return ProgramTypeUnknown, false
		}
		return ProgramType(raw), true
	}
	if raw < 0 || raw >= len(legacyProgramTypes) {
		return ProgramTypeUnknown, false
	}
	return legacyProgramTypes[raw], true
}

// String returns the program type's name.
func (t ProgramType) String() string {
	if name, ok := programTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ProgramType(%d)", int(t))
}

// ParseProgramType resolves a program type name case-insensitively.
func ParseProgramType(s string) (ProgramType, error) {
	for t, name := range programTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return ProgramTypeUnknown, fmt.Errorf("unknown program type %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ProgramType) UnmarshalText(text []byte) error {
	v, err := ParseProgramType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// IsVertex reports whether t is a vertex-stage program type.
func (t ProgramType) IsVertex() bool {
	switch t {
	case ProgramTypeDX9VertexSM20, ProgramTypeDX9VertexSM30, ProgramTypeDX10Level9Vertex,
		ProgramTypeDX11VertexSM40, ProgramTypeDX11VertexSM50,
		ProgramTypeMetalVS, ProgramTypeConsoleVS,
		ProgramTypeGLESVertex, ProgramTypeVulkanVS:
		return true
	}
	return false
}

// IsFragment reports whether t is a fragment-stage program type.
func (t ProgramType) IsFragment() bool {
	switch t {
	case ProgramTypeDX9PixelSM20, ProgramTypeDX9PixelSM30, ProgramTypeDX10Level9Pixel,
		ProgramTypeDX11PixelSM40, ProgramTypeDX11PixelSM50,
		ProgramTypeMetalFS, ProgramTypeConsoleFS,
		ProgramTypeGLESFragment, ProgramTypeVulkanFS:
		return true
	}
	return false
}

// IsDirectX11 reports whether t is one of the DX11 bytecode types.
func (t ProgramType) IsDirectX11() bool {
	return t >= ProgramTypeDX11VertexSM40 && t <= ProgramTypeDX11DomainSM50
}
