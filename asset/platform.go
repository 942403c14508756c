package asset

import (
	"fmt"
	"strings"
)

// Platform is the graphics API a sub-program was compiled for.
type Platform int8

// Platform values follow the engine's serialized numbering.
const (
	PlatformUnknown          Platform = -1
	PlatformOpenGL           Platform = 0
	PlatformD3D9             Platform = 1
	PlatformXbox360          Platform = 2
	PlatformPS3              Platform = 3
	PlatformD3D11            Platform = 4
	PlatformGLES20           Platform = 5
	PlatformNaCl             Platform = 6
	PlatformFlash            Platform = 7
	PlatformD3D11_9x         Platform = 8
	PlatformGLES3Plus        Platform = 9
	PlatformPSP2             Platform = 10
	PlatformPS4              Platform = 11
	PlatformXboxOne          Platform = 12
	PlatformPSM              Platform = 13
	PlatformMetal            Platform = 14
	PlatformOpenGLCore       Platform = 15
	PlatformN3DS             Platform = 16
	PlatformWiiU             Platform = 17
	PlatformVulkan           Platform = 18
	PlatformSwitch           Platform = 19
	PlatformXboxOneD3D12     Platform = 20
	PlatformGameCoreXboxOne  Platform = 21
	PlatformGameCoreScarlett Platform = 22
	PlatformPS5              Platform = 23
	PlatformPS5NGGC          Platform = 24
)

var platformNames = map[Platform]string{
	PlatformUnknown:          "unknown",
	PlatformOpenGL:           "OpenGL",
	PlatformD3D9:             "d3d9",
	PlatformXbox360:          "Xbox360",
	PlatformPS3:              "PS3",
	PlatformD3D11:            "d3d11",
	PlatformGLES20:           "gles",
	PlatformNaCl:             "NaCl",
	PlatformFlash:            "Flash",
	PlatformD3D11_9x:         "d3d11_9x",
	PlatformGLES3Plus:        "gles3",
	PlatformPSP2:             "PSP2",
	PlatformPS4:              "PS4",
	PlatformXboxOne:          "XboxOne",
	PlatformPSM:              "PSM",
	PlatformMetal:            "metal",
	PlatformOpenGLCore:       "glcore",
	PlatformN3DS:             "N3DS",
	PlatformWiiU:             "WiiU",
	PlatformVulkan:           "vulkan",
	PlatformSwitch:           "switch",
	PlatformXboxOneD3D12:     "XboxOneD3D12",
	PlatformGameCoreXboxOne:  "GameCoreXboxOne",
	PlatformGameCoreScarlett: "GameCoreScarlett",
	PlatformPS5:              "PS5",
	PlatformPS5NGGC:          "PS5NGGC",
}

// String returns the platform's short name.
func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", int8(p))
}

// ParsePlatform resolves a platform name case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	for p, name := range platformNames {
		if strings.EqualFold(name, s) {
			return p, nil
		}
	}
	return PlatformUnknown, fmt.Errorf("unknown platform %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	v, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// IsDirectX reports whether the platform stores DirectX bytecode.
func (p Platform) IsDirectX() bool {
	switch p {
	case PlatformD3D9, PlatformD3D11, PlatformD3D11_9x, PlatformXboxOne,
		PlatformXboxOneD3D12, PlatformGameCoreXboxOne, PlatformGameCoreScarlett:
		return true
	}
	return false
}

// HasDirectXHeader reports whether DirectX blobs on this platform carry the
// engine's program header. Only d3d9 stores bare bytecode.
func (p Platform) HasDirectXHeader() bool {
	return p.IsDirectX() && p != PlatformD3D9
}
