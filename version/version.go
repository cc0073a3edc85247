// Package version implements Spring-style version handling for the
// compatibility table.
//
// Version format: RELEASE[-QUALIFIER][+BUILD]
//   - RELEASE: dot-separated numeric identifiers (e.g. "0.10.3")
//   - QUALIFIER: milestone, release candidate or snapshot (e.g. "M1", "RC1", "SNAPSHOT")
//   - BUILD: ignored
//
// Ordering is delegated to github.com/Masterminds/semver/v3. Prefix matching
// works on the raw string and never requires the input to parse, so that
// unknown or odd versions fall through to "no match" instead of an error.
package version

import (
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

// ParseError represents a version parsing error.
type ParseError struct {
	Version string
	Err     error
}

func (e *ParseError) Error() string {
	return "bad version " + e.Version + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a version string with Masterminds semver.
// Two-segment versions such as "0.11" are accepted and padded.
func Parse(s string) (*mm.Version, error) {
	v, err := mm.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return nil, &ParseError{Version: s, Err: err}
	}
	return v, nil
}

// Valid reports whether s parses as a version.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Compare compares two version strings.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
//
// Unparseable versions sort after parseable ones and compare
// lexicographically among themselves.
func Compare(a, b string) int {
	va, errA := Parse(a)
	vb, errB := Parse(b)

	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return va.Compare(vb)
}

// Sort sorts a slice of version strings in ascending order.
func Sort(versions []string) {
	// insertion sort keeps equal versions in input order
	for i := 1; i < len(versions); i++ {
		for j := i; j > 0 && Compare(versions[j-1], versions[j]) > 0; j-- {
			versions[j-1], versions[j] = versions[j], versions[j-1]
		}
	}
}

// Max returns the higher of two versions.
func Max(a, b string) string {
	if Compare(a, b) >= 0 {
		return a
	}
	return b
}

// Release returns the release part of v, without qualifier or build metadata.
// For example, "0.11.0-M1" becomes "0.11.0".
func Release(v string) string {
	if idx := strings.IndexAny(v, "-+"); idx >= 0 {
		return v[:idx]
	}
	return v
}

// Qualifier returns the pre-release qualifier of v, or "" if there is none.
func Qualifier(v string) string {
	v = strings.SplitN(v, "+", 2)[0]
	if idx := strings.IndexByte(v, '-'); idx >= 0 {
		return v[idx+1:]
	}
	return ""
}

// Segments splits the release part of v on dots.
// Returns nil for an empty version.
func Segments(v string) []string {
	rel := Release(v)
	if rel == "" {
		return nil
	}
	return strings.Split(rel, ".")
}

// NormalizePattern strips a trailing wildcard segment from a bucket pattern.
// "0.11.x" and "0.11.*" both become "0.11".
func NormalizePattern(pattern string) string {
	p := strings.TrimSpace(pattern)
	for _, suffix := range []string{".x", ".X", ".*"} {
		if strings.HasSuffix(p, suffix) {
			return strings.TrimSuffix(p, suffix)
		}
	}
	return p
}

// HasPrefix reports whether v falls under the given pattern on a segment
// boundary. "0.11" matches "0.11", "0.11.2" and "0.11.0-M1", but not "0.110.0".
func HasPrefix(v, pattern string) bool {
	p := NormalizePattern(pattern)
	if p == "" || v == "" {
		return false
	}
	if v == p {
		return true
	}
	if !strings.HasPrefix(v, p) {
		return false
	}
	next := v[len(p)]
	return next == '.' || next == '-' || next == '+'
}

// Specificity ranks a pattern: one point per release segment, plus one when
// the pattern pins a qualifier. Higher is more specific.
func Specificity(pattern string) int {
	p := NormalizePattern(pattern)
	n := len(Segments(p))
	if Qualifier(p) != "" {
		n++
	}
	return n
}
