// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import "fmt"

// ShaderModel is the shader model declared by the version token.
type ShaderModel uint8

// Shader models carried by DXBC.
const (
	// ShaderModel4_0 is Direct3D 10.
	ShaderModel4_0 ShaderModel = iota

	// ShaderModel4_1 is Direct3D 10.1.
	ShaderModel4_1

	// ShaderModel5_0 is Direct3D 11.
	ShaderModel5_0

	// ShaderModel5_1 adds resource arrays and register spaces.
	ShaderModel5_1
)

// shaderModelFor maps a version token's major/minor pair.
func shaderModelFor(major, minor uint32) (ShaderModel, error) {
	switch {
	case major == 4 && minor == 0:
		return ShaderModel4_0, nil
	case major == 4 && minor == 1:
		return ShaderModel4_1, nil
	case major == 5 && minor == 0:
		return ShaderModel5_0, nil
	case major == 5 && minor == 1:
		return ShaderModel5_1, nil
	}
	return 0, fmt.Errorf("unsupported shader model %d.%d", major, minor)
}

// String returns a human-readable representation of the shader model.
// Example: "SM 5.0"
func (sm ShaderModel) String() string {
	major, minor := sm.version()
	return fmt.Sprintf("SM %d.%d", major, minor)
}

// ProfileSuffix returns the shader profile suffix for this model.
// Example: "5_0"
func (sm ShaderModel) ProfileSuffix() string {
	major, minor := sm.version()
	return fmt.Sprintf("%d_%d", major, minor)
}

func (sm ShaderModel) version() (major, minor uint8) {
	switch sm {
	case ShaderModel4_0:
		return 4, 0
	case ShaderModel4_1:
		return 4, 1
	case ShaderModel5_0:
		return 5, 0
	case ShaderModel5_1:
		return 5, 1
	default:
		return 5, 0
	}
}

// Major returns the major version number.
func (sm ShaderModel) Major() uint8 {
	major, _ := sm.version()
	return major
}

// Minor returns the minor version number.
func (sm ShaderModel) Minor() uint8 {
	_, minor := sm.version()
	return minor
}

// SupportsTessellation returns true if hull and domain programs are available.
func (sm ShaderModel) SupportsTessellation() bool {
	return sm >= ShaderModel5_0
}

// ProgramType is the stage declared by the version token.
type ProgramType uint8

// Program types in token order.
const (
	ProgramPixel ProgramType = iota
	ProgramVertex
	ProgramGeometry
	ProgramHull
	ProgramDomain
	ProgramCompute
)

// String returns the profile prefix, e.g. "ps" or "vs".
func (t ProgramType) String() string {
	switch t {
	case ProgramPixel:
		return "ps"
	case ProgramVertex:
		return "vs"
	case ProgramGeometry:
		return "gs"
	case ProgramHull:
		return "hs"
	case ProgramDomain:
		return "ds"
	case ProgramCompute:
		return "cs"
	default:
		return fmt.Sprintf("program_%d", uint8(t))
	}
}

// Profile returns the full profile name, e.g. "ps_5_0".
func Profile(t ProgramType, sm ShaderModel) string {
	return t.String() + "_" + sm.ProfileSuffix()
}
