package icon

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ErrNamingConvention is returned when a file name does not follow the icon
// naming convention.
var ErrNamingConvention = errors.New("file name outside naming convention")

// largeMarker is the trailing segment that flags the large icon variant.
const largeMarker = "LARGE"

// recognizedExts holds the extensions accepted as icon images.
var recognizedExts = map[string]bool{
	".png":  true,
	".gif":  true,
	".jpg":  true,
	".jpeg": true,
}

// nonWord matches characters outside [0-9A-Za-z_] within a name segment.
var nonWord = regexp.MustCompile(`\W`)

// Key is the structured decomposition of an icon file name. It is immutable
// once parsed: Category and Service are always non-empty, Component is set
// iff the name carries a third segment before the optional LARGE marker.
type Key struct {
	Category  string
	Service   string
	Component string
	Large     bool
	Ext       string
	Source    string
}

// Recognized reports whether name carries one of the recognized icon
// extensions. Files for which this is false are not icons and may be
// skipped without error.
func Recognized(name string) bool {
	return recognizedExts[strings.ToLower(path.Ext(name))]
}

// Parse decomposes fileName into a Key. It fails with ErrNamingConvention
// when the extension is not a recognized icon extension, when category or
// service is missing or empty, or when the name has more than three
// segments before the LARGE marker. Segment case is preserved.
func Parse(fileName string) (Key, error) {
	base := path.Base(fileName)

	ext := path.Ext(base)
	if !recognizedExts[strings.ToLower(ext)] {
		return Key{}, fmt.Errorf("%w: %q: unrecognized extension %q", ErrNamingConvention, fileName, ext)
	}

	stem := strings.TrimSuffix(base, ext)
	parts := strings.Split(stem, "_")

	for i, part := range parts {
		parts[i] = nonWord.ReplaceAllString(part, "_")
	}

	key := Key{
		Ext:    strings.ToLower(ext),
		Source: fileName,
	}

	if parts[len(parts)-1] == largeMarker && len(parts) > 1 {
		key.Large = true
		parts = parts[:len(parts)-1]
	}

	for _, part := range parts {
		if part == "" {
			return Key{}, fmt.Errorf("%w: %q: empty name segment", ErrNamingConvention, fileName)
		}
	}

	switch len(parts) {
	case 2: //nolint:mnd // category and service only
		key.Category, key.Service = parts[0], parts[1]
	case 3: //nolint:mnd // category, service, and component
		key.Category, key.Service, key.Component = parts[0], parts[1], parts[2]
	default:
		return Key{}, fmt.Errorf("%w: %q: want two or three name segments, got %d", ErrNamingConvention, fileName, len(parts))
	}

	return key, nil
}

// Name returns the display name of the icon: the component segment when
// present, the service otherwise, with a _LARGE suffix for large variants.
// Large variants therefore always produce names distinct from their base.
func (k Key) Name() string {
	name := k.Service
	if k.Component != "" {
		name = k.Component
	}

	if k.Large {
		name += "_" + largeMarker
	}

	return name
}

// Segments returns the parsed name segments in order, without the LARGE
// marker.
func (k Key) Segments() []string {
	if k.Component == "" {
		return []string{k.Category, k.Service}
	}

	return []string{k.Category, k.Service, k.Component}
}

// FileName re-joins the key back into a file name following the convention.
// For every valid name, FileName(Parse(name)) == path.Base(name) up to
// extension case.
func (k Key) FileName() string {
	name := strings.Join(k.Segments(), "_")
	if k.Large {
		name += "_" + largeMarker
	}

	return name + k.Ext
}
