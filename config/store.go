package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/0xalexb/pumlgen/icon"
)

// AliasSection is the reserved section name holding named color aliases.
const AliasSection = "colors"

// ErrUndefinedAlias is returned when an option value references a color
// alias that is not defined in the reserved colors section, or when an
// alias value itself contains a reference (aliases must be literals).
var ErrUndefinedAlias = errors.New("undefined color alias")

// ErrDuplicateSection is returned when two sections share the same address
// up to case folding.
var ErrDuplicateSection = errors.New("duplicate configuration section")

// aliasToken matches a ${colors:Name} reference inside an option value.
var aliasToken = regexp.MustCompile(`\$\{` + AliasSection + `:([^}]+)\}`)

// Options maps option names (entity_type, color, skinparam, ...) to string
// values. It is the merged, alias-substituted result of resolution.
type Options map[string]string

// RawSection is one parsed configuration section as produced by a Codec:
// the section name as written and its option mapping. Section order within
// a file is significant only for serialization, never for resolution.
type RawSection struct {
	Name    string
	Options map[string]string
}

// Section is a validated configuration section.
type Section struct {
	Path    Path
	Options map[string]string
}

// Store holds the cascading configuration for one run. It is built once,
// read-only during generation, and replaced wholesale by Reconcile in
// synchronize mode.
type Store struct {
	sections []Section
	index    map[string]int
	aliases  map[string]string
	aliasOrd []string
	// hasColors records that a colors section was declared, even an empty
	// one, so serialization does not silently drop it.
	hasColors bool
}

// Load builds a Store from ordered raw sections. An absent configuration is
// valid: Load(nil) returns an empty store and every icon resolves to empty
// options. Fails with ErrInvalidSectionAddress when a section name does not
// parse as an address, or ErrDuplicateSection when two names collide after
// case folding.
func Load(raw []RawSection) (*Store, error) {
	store := &Store{
		index:   map[string]int{},
		aliases: map[string]string{},
	}

	for _, section := range raw {
		if strings.EqualFold(section.Name, AliasSection) {
			store.hasColors = true

			for name, value := range section.Options {
				store.aliases[strings.ToLower(name)] = value
				store.aliasOrd = append(store.aliasOrd, name)
			}

			continue
		}

		path, err := ParsePath(section.Name)
		if err != nil {
			return nil, err
		}

		if _, exists := store.index[path.canon()]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSection, section.Name)
		}

		options := make(map[string]string, len(section.Options))
		for name, value := range section.Options {
			options[name] = value
		}

		store.index[path.canon()] = len(store.sections)
		store.sections = append(store.sections, Section{Path: path, Options: options})
	}

	return store, nil
}

// Resolve computes the effective option set for key: every applicable
// section is merged in increasing specificity order, later sections
// overriding earlier ones per option key, then ${colors:Name} references
// are substituted. Resolution never mutates the store.
func (s *Store) Resolve(key icon.Key) (Options, error) {
	resolved := Options{}

	for _, path := range PathsFor(key) {
		i, ok := s.index[path.canon()]
		if !ok {
			continue
		}

		for name, value := range s.sections[i].Options {
			resolved[name] = value
		}
	}

	for name, value := range resolved {
		substituted, err := s.substitute(value)
		if err != nil {
			return nil, fmt.Errorf("option %q for icon %q: %w", name, key.Source, err)
		}

		resolved[name] = substituted
	}

	return resolved, nil
}

// Lookup returns the option mapping stored at the given address, if any.
func (s *Store) Lookup(path Path) (map[string]string, bool) {
	i, ok := s.index[path.canon()]
	if !ok {
		return nil, false
	}

	return s.sections[i].Options, true
}

// Aliases returns the color alias table keyed by folded alias name.
func (s *Store) Aliases() map[string]string {
	return s.aliases
}

// Raw returns the store as ordered raw sections ready for encoding: the
// reserved colors section first, then every address section in store order.
func (s *Store) Raw() []RawSection {
	raw := make([]RawSection, 0, len(s.sections)+1)

	if s.hasColors {
		colors := make(map[string]string, len(s.aliases))
		for _, name := range s.aliasOrd {
			colors[name] = s.aliases[strings.ToLower(name)]
		}

		raw = append(raw, RawSection{Name: AliasSection, Options: colors})
	}

	for _, section := range s.sections {
		raw = append(raw, RawSection{Name: section.Path.String(), Options: section.Options})
	}

	return raw
}

// substitute rewrites every alias reference in value to its literal. The
// pass is deliberately single-level: an alias whose own value contains a
// reference fails rather than chaining.
func (s *Store) substitute(value string) (string, error) {
	var substErr error

	result := aliasToken.ReplaceAllStringFunc(value, func(token string) string {
		name := aliasToken.FindStringSubmatch(token)[1]

		literal, ok := s.aliases[strings.ToLower(name)]
		if !ok {
			substErr = fmt.Errorf("%w: %q", ErrUndefinedAlias, name)

			return token
		}

		if aliasToken.MatchString(literal) {
			substErr = fmt.Errorf("%w: alias %q must be a literal, not another reference", ErrUndefinedAlias, name)

			return token
		}

		return literal
	})

	if substErr != nil {
		return "", substErr
	}

	return result, nil
}
