// Package nativetools maps Spring Native versions to compatible GraalVM
// native build tools plugin versions.
//
// The table is fixed at release time. Lookups are pure and safe for
// concurrent use without synchronization.
package nativetools

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/go-springnative/version"
)

// Entry maps a Spring Native version pattern to a native build tools version.
//
// Pattern is either an exact version ("0.10.3", "0.11.0-M1") or a
// major.minor bucket ("0.11" or "0.11.x") that covers every version on that
// line, milestones included.
type Entry struct {
	Pattern string
	Tooling string
}

// TableError reports a malformed compatibility table.
type TableError struct {
	Pattern string
	Reason  string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("invalid compatibility entry %q: %s", e.Pattern, e.Reason)
}

// Table is an immutable, ordered compatibility table.
type Table struct {
	entries []Entry
}

// defaultEntries lists Spring Native releases and the native build tools
// plugin they were published against. Buckets cover later patch releases.
var defaultEntries = []Entry{
	{"0.10.0", "0.9.0"},
	{"0.10.1", "0.9.0"},
	{"0.10.2", "0.9.1"},
	{"0.10.3", "0.9.3"},
	{"0.10.4", "0.9.4"},
	{"0.10.5", "0.9.6"},
	{"0.10.6", "0.9.8"},
	{"0.10.x", "0.9.8"},
	{"0.11.0-M1", "0.9.6"},
	{"0.11.0-M2", "0.9.7"},
	{"0.11.0-RC1", "0.9.8"},
	{"0.11.0", "0.9.8"},
	{"0.11.1", "0.9.9"},
	{"0.11.x", "0.9.9"},
	{"0.12.x", "0.9.13"},
}

var defaultTable = MustNewTable(defaultEntries...)

// Default returns the built-in compatibility table.
func Default() *Table {
	return defaultTable
}

// NewTable validates entries and builds a table from them.
// The entries are copied; later changes to the slice do not affect the table.
func NewTable(entries ...Entry) (*Table, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return &Table{entries: slices.Clone(entries)}, nil
}

// MustNewTable is like NewTable but panics on a malformed table.
// Intended for package-level tables built at init.
func MustNewTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks that entries form a well-formed table: every pattern is
// non-empty and unique after normalization, and every tooling version parses.
func Validate(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		p := version.NormalizePattern(e.Pattern)
		if p == "" {
			return &TableError{Pattern: e.Pattern, Reason: "empty pattern"}
		}
		if _, dup := seen[p]; dup {
			return &TableError{Pattern: e.Pattern, Reason: "duplicate pattern"}
		}
		seen[p] = struct{}{}

		for _, seg := range version.Segments(p) {
			if !isDigits(seg) {
				return &TableError{Pattern: e.Pattern, Reason: "pattern segments must be numeric"}
			}
		}

		if !version.Valid(e.Tooling) {
			return &TableError{Pattern: e.Pattern, Reason: fmt.Sprintf("tooling version %q is not a valid version", e.Tooling)}
		}
	}
	return nil
}

// exactRank outranks any bucket.
const exactRank = 1 << 16

// IsBucket reports whether pattern covers a whole major or major.minor line
// rather than naming a single release.
func IsBucket(pattern string) bool {
	p := version.NormalizePattern(pattern)
	return version.Qualifier(p) == "" && len(version.Segments(p)) < 3
}

// Match returns the entry that applies to v.
//
// An exact pattern always beats a bucket. Among several matching entries the
// most specific pattern wins; on equal specificity the first-declared entry wins.
func (t *Table) Match(v string) (Entry, bool) {
	v = strings.TrimSpace(v)
	if t == nil || v == "" {
		return Entry{}, false
	}

	best := -1
	bestRank := -1
	for i, e := range t.entries {
		p := version.NormalizePattern(e.Pattern)
		rank := exactRank
		if IsBucket(p) {
			if !version.HasPrefix(v, p) {
				continue
			}
			rank = version.Specificity(p)
		} else if v != p {
			continue
		}
		if rank > bestRank {
			best, bestRank = i, rank
		}
	}

	if best < 0 {
		return Entry{}, false
	}
	return t.entries[best], true
}

// Resolve returns the native build tools version compatible with the given
// Spring Native version, or false if no mapping is known.
func (t *Table) Resolve(springNativeVersion string) (string, bool) {
	e, ok := t.Match(springNativeVersion)
	if !ok {
		return "", false
	}
	return e.Tooling, true
}

// Entries returns a copy of the table entries in declaration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return slices.Clone(t.entries)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Resolve looks up springNativeVersion in the default table.
func Resolve(springNativeVersion string) (string, bool) {
	return defaultTable.Resolve(springNativeVersion)
}

// SupportedVersions returns the exact Spring Native versions of the default
// table, in ascending version order. Buckets are not included.
func SupportedVersions() []string {
	var versions []string
	for _, e := range defaultTable.entries {
		if !IsBucket(e.Pattern) {
			versions = append(versions, e.Pattern)
		}
	}
	version.Sort(versions)
	return versions
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
