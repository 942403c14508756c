package asset

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an engine version such as 5.6.0 or 2019.4.31f1.
type Version struct {
	Major int
	Minor int
	Build int
	// Type is the release letter (a, b, f, p, x); zero when absent.
	Type byte
	// TypeNumber is the number following the release letter.
	TypeNumber int
}

// ParseVersion parses "major.minor[.build[<type><n>]]".
func ParseVersion(s string) (Version, error) {
	var v Version
	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)
	if len(parts) < 2 {
		return v, fmt.Errorf("invalid engine version %q", s)
	}

	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return v, fmt.Errorf("invalid engine version %q: %w", s, err)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return v, fmt.Errorf("invalid engine version %q: %w", s, err)
	}
	if len(parts) == 2 {
		return v, nil
	}

	build := parts[2]
	i := 0
	for i < len(build) && build[i] >= '0' && build[i] <= '9' {
		i++
	}
	if i == 0 {
		return v, fmt.Errorf("invalid engine version %q: missing build number", s)
	}
	v.Build, _ = strconv.Atoi(build[:i])
	if i == len(build) {
		return v, nil
	}

	v.Type = build[i]
	if !strings.ContainsRune("abfpx", rune(v.Type)) {
		return v, fmt.Errorf("invalid engine version %q: unknown release type %q", s, v.Type)
	}
	if rest := build[i+1:]; rest != "" {
		if v.TypeNumber, err = strconv.Atoi(rest); err != nil {
			return v, fmt.Errorf("invalid engine version %q: %w", s, err)
		}
	}
	return v, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsGreaterEqual reports whether v is at least major.minor.
func (v Version) IsGreaterEqual(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// String formats the version in the form it was parsed from.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
	if v.Type != 0 {
		s += string(v.Type) + strconv.Itoa(v.TypeNumber)
	}
	return s
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
