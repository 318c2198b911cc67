package mode

import "strings"

// Mode is the request category that decides which worker answers a request.
type Mode string

const (
	Document Mode = "document"
	Code     Mode = "code"
	Error    Mode = "error"
	Hipify   Mode = "hipify"
	API      Mode = "api"
)

// supported is the canonical order. Tie-breaks and defaults depend on it.
var supported = [...]Mode{Document, Code, Error, Hipify, API}

// All returns every supported mode in canonical order.
func All() []Mode {
	out := make([]Mode, len(supported))
	copy(out, supported[:])
	return out
}

// Parse converts a raw string into a Mode. Matching is exact, the wire
// format is lowercase.
func Parse(raw string) (Mode, bool) {
	for _, m := range supported {
		if string(m) == raw {
			return m, true
		}
	}
	return "", false
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	_, ok := Parse(string(m))
	return ok
}

func (m Mode) String() string {
	return string(m)
}

// Normalize filters a caller supplied allow-list down to supported modes,
// keeping first-seen order and dropping duplicates. An empty input, or one
// that filters down to nothing, yields All().
func Normalize(candidates []string) []Mode {
	if len(candidates) == 0 {
		return All()
	}

	seen := make(map[Mode]bool, len(supported))
	out := make([]Mode, 0, len(candidates))
	for _, raw := range candidates {
		m, ok := Parse(strings.TrimSpace(raw))
		if !ok || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}

	if len(out) == 0 {
		return All()
	}
	return out
}

// Contains reports whether m is present in modes.
func Contains(modes []Mode, m Mode) bool {
	for _, candidate := range modes {
		if candidate == m {
			return true
		}
	}
	return false
}

// Strings renders modes for logging and wire output.
func Strings(modes []Mode) []string {
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = string(m)
	}
	return out
}
