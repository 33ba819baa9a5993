package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/0xalexb/pumlgen/icon"
)

// ErrInvalidSectionAddress is returned when a section name does not parse
// as a valid configuration address.
var ErrInvalidSectionAddress = errors.New("invalid configuration section address")

// maxDepth is the number of segments in a leaf address.
const maxDepth = 3

// Path is a parsed configuration section address. A wildcard Path carries a
// trailing dot and applies to all descendants of its segments; an exact
// Path applies at its own depth. Identity is case-insensitive, display case
// is preserved.
type Path struct {
	segments []string
	wildcard bool
}

// ParsePath parses a dotted section address. Valid shapes are a single
// category segment, two segments with a trailing dot, or three segments
// without one; anything else fails with ErrInvalidSectionAddress.
func ParsePath(name string) (Path, error) {
	parts := strings.Split(name, ".")

	wildcard := false
	if parts[len(parts)-1] == "" {
		wildcard = true
		parts = parts[:len(parts)-1]
	}

	for _, part := range parts {
		if part == "" {
			return Path{}, fmt.Errorf("%w: %q: empty segment", ErrInvalidSectionAddress, name)
		}
	}

	valid := (len(parts) == 1 && !wildcard) ||
		(len(parts) == 2 && wildcard) ||
		(len(parts) == maxDepth && !wildcard)
	if !valid {
		return Path{}, fmt.Errorf("%w: %q: want Category, Category.Service. or Category.Service.Component", ErrInvalidSectionAddress, name)
	}

	return Path{segments: parts, wildcard: wildcard}, nil
}

// String returns the display form of the address, with the trailing dot for
// wildcard paths.
func (p Path) String() string {
	s := strings.Join(p.segments, ".")
	if p.wildcard {
		s += "."
	}

	return s
}

// Depth returns the number of named segments.
func (p Path) Depth() int {
	return len(p.segments)
}

// Wildcard reports whether the address carries a trailing dot.
func (p Path) Wildcard() bool {
	return p.wildcard
}

// canon returns the case-folded identity of the address, used for section
// lookup and set membership so differently-cased file systems cannot
// produce duplicate sections.
func (p Path) canon() string {
	return strings.ToLower(p.String())
}

// PathsFor returns the addresses applying to key, in increasing
// specificity: the category section, the service wildcard section, and the
// exact leaf section when the key has a component. Addresses built from
// keys are canonical lower case, so differently-cased file systems never
// produce duplicate sections. The LARGE variant flag never participates in
// addressing.
func PathsFor(key icon.Key) []Path {
	category := strings.ToLower(key.Category)
	service := strings.ToLower(key.Service)

	paths := []Path{
		{segments: []string{category}},
		{segments: []string{category, service}, wildcard: true},
	}

	if key.Component != "" {
		paths = append(paths, Path{segments: []string{category, service, strings.ToLower(key.Component)}})
	}

	return paths
}

// Discover returns the union of addresses derived from keys, deduplicated
// case-insensitively and sorted category first, then service, then
// component. This is the discovered-address set fed to Reconcile.
func Discover(keys []icon.Key) []Path {
	byCanon := map[string]Path{}

	for _, key := range keys {
		for _, p := range PathsFor(key) {
			if _, ok := byCanon[p.canon()]; !ok {
				byCanon[p.canon()] = p
			}
		}
	}

	paths := make([]Path, 0, len(byCanon))
	for _, p := range byCanon {
		paths = append(paths, p)
	}

	sortPaths(paths)

	return paths
}

// sortPaths orders addresses by their case-folded form, which yields the
// human-friendly category, service, component ordering ("a" < "a.b." <
// "a.b.c") and keeps regenerated configurations diffable.
func sortPaths(paths []Path) {
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].canon() < paths[j].canon()
	})
}
