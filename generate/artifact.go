package generate

import (
	"path"
	"strings"

	"github.com/0xalexb/pumlgen/icon"
)

// Artifact is one generated output file: a target path relative to the
// output root (slash-separated) and its rendered text content.
type Artifact struct {
	Path    string
	Content string
}

// CommonFile is the shared prelude written at the output root.
const CommonFile = "common.puml"

// AggregatorFile is the per-service include-everything file name.
const AggregatorFile = "all.puml"

// serviceDir returns the output directory for a key's service,
// case-normalized for URL safety.
func serviceDir(key icon.Key) string {
	return path.Join(strings.ToLower(key.Category), strings.ToLower(key.Service))
}

// macroPath, skinPath, and spritePath name the three per-icon files inside
// the service directory.
func macroPath(key icon.Key) string {
	return path.Join(serviceDir(key), strings.ToLower(key.Name())+".puml")
}

func skinPath(key icon.Key) string {
	return path.Join(serviceDir(key), strings.ToLower(key.Name())+"-skin.puml")
}

func spritePath(key icon.Key) string {
	return path.Join(serviceDir(key), strings.ToLower(key.Name())+"-sprite.puml")
}
