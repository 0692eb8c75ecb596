package logger

import (
	"fmt"
	"strings"
)

// Level is the verbosity gate applied to informational output.
// Error output and interactive prompts ignore it.
type Level int32

const (
	// OffLevel turns informational output off.
	OffLevel Level = iota
	// NormalLevel enables Print output.
	NormalLevel
	// VerboseLevel enables Print and Printv output.
	VerboseLevel
)

// AllLevels returns all supported levels, least verbose first.
func AllLevels() []Level {
	return []Level{OffLevel, NormalLevel, VerboseLevel}
}

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "off"
	case NormalLevel:
		return "normal"
	case VerboseLevel:
		return "verbose"
	default:
		return fmt.Sprintf("level(%d)", int32(l))
	}
}

// Enabled reports whether output gated on min is produced at level l.
func (l Level) Enabled(min Level) bool {
	return min != OffLevel && l >= min
}

// ParseLevel parses "off", "normal" or "verbose". Matching is case-insensitive and
// ignores surrounding space.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return OffLevel, nil
	case "normal":
		return NormalLevel, nil
	case "verbose":
		return VerboseLevel, nil
	}
	return NormalLevel, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
}

// clamp maps out-of-range values onto the nearest defined level.
func (l Level) clamp() Level {
	switch {
	case l < OffLevel:
		return OffLevel
	case l > VerboseLevel:
		return VerboseLevel
	}
	return l
}
