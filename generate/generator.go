package generate

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/0xalexb/pumlgen/config"
	"github.com/0xalexb/pumlgen/icon"
	"github.com/0xalexb/pumlgen/template"
)

// DefaultColor is used when the configuration leaves color unset.
const DefaultColor = "black"

// stereotypeSplitLen is the maximum stereotype line length before the name
// wraps onto a new diagram line.
const stereotypeSplitLen = 30

// SpriteEncoder turns an icon image into a sprite declaration named after
// the icon. Implemented by sprite.Encoder.
type SpriteEncoder interface {
	Encode(path, name string) (string, error)
}

// Generator renders icon keys into artifacts using a resolved option set
// per key.
type Generator struct {
	store    *config.Store
	registry *template.Registry
	sprites  SpriteEncoder
}

// NewGenerator creates a Generator over a loaded store, a template
// registry, and a sprite encoder.
func NewGenerator(store *config.Store, registry *template.Registry, sprites SpriteEncoder) *Generator {
	return &Generator{
		store:    store,
		registry: registry,
		sprites:  sprites,
	}
}

// Generate renders every key into its artifacts, in a stable order grouped
// by category then service, large variants after their base. Macro names
// colliding across services are disambiguated by prefixing parent segments.
// Fails without partial results on any resolution, template, or sprite
// error.
func (g *Generator) Generate(keys []icon.Key) ([]Artifact, error) {
	ordered := make([]icon.Key, len(keys))
	copy(ordered, keys)
	sortKeys(ordered)

	names := uniqueNames(ordered)

	artifacts := []Artifact{{Path: CommonFile, Content: template.Common()}}

	var dirs []string

	includes := map[string][]string{}

	for _, key := range ordered {
		options, err := g.store.Resolve(key)
		if err != nil {
			return nil, err
		}

		entityType := options["entity_type"]
		if entityType == "" {
			entityType = template.DefaultEntityType
		}

		set, err := g.registry.Lookup(entityType)
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", key.Source, err)
		}

		name := names[key.Source]

		spriteBlock, err := g.sprites.Encode(key.Source, name)
		if err != nil {
			return nil, err
		}

		color := options["color"]
		if color == "" {
			color = DefaultColor
		}

		stereo := stereotype(name, key.Large)

		params := template.Params{
			Macro:             strings.ToUpper(name),
			EntityType:        entityType,
			Color:             color,
			Stereotype:        stereo,
			EscapedStereotype: strings.ReplaceAll(stereo, `\`, `\\`),
			SpriteName:        name,
			Sprite:            strings.TrimRight(spriteBlock, "\n"),
			Skinparam:         indentBlock(options["skinparam"]),
		}

		dir := serviceDir(key)
		if _, seen := includes[dir]; !seen {
			dirs = append(dirs, dir)
		}

		spriteFile := spritePath(key)
		skinFile := skinPath(key)
		macroFile := macroPath(key)

		artifacts = append(artifacts,
			Artifact{Path: spriteFile, Content: template.Render(set.Sprite, params)},
			Artifact{Path: skinFile, Content: template.Render(set.Skin, params)},
			Artifact{Path: macroFile, Content: template.Render(set.Macro, params)},
		)

		includes[dir] = append(includes[dir],
			path.Base(spriteFile), path.Base(skinFile), path.Base(macroFile))
	}

	for _, dir := range dirs {
		artifacts = append(artifacts, Artifact{
			Path:    path.Join(dir, AggregatorFile),
			Content: aggregator(dir, includes[dir]),
		})
	}

	return artifacts, nil
}

// sortKeys orders keys by category, service, component, base before large,
// with the source path as the final tiebreaker.
func sortKeys(keys []icon.Key) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]

		if c := compareFold(a.Category, b.Category); c != 0 {
			return c < 0
		}

		if c := compareFold(a.Service, b.Service); c != 0 {
			return c < 0
		}

		if c := compareFold(a.Component, b.Component); c != 0 {
			return c < 0
		}

		if a.Large != b.Large {
			return !a.Large
		}

		return a.Source < b.Source
	})
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// uniqueNames assigns each key a display name, expanding colliding names
// with their parent segments until every name is unique: Bucket becomes
// AmazonS3_Bucket, then Storage_AmazonS3_Bucket if still ambiguous.
func uniqueNames(keys []icon.Key) map[string]string {
	levels := make(map[string]int, len(keys))

	expand := func(key icon.Key, level int) string {
		segments := key.Segments()

		from := len(segments) - 1 - level
		if from < 0 {
			from = 0
		}

		name := strings.Join(segments[from:], "_")
		if key.Large {
			name += "_LARGE"
		}

		return name
	}

	for range keys {
		groups := map[string][]icon.Key{}

		for _, key := range keys {
			name := expand(key, levels[key.Source])
			groups[strings.ToLower(name)] = append(groups[strings.ToLower(name)], key)
		}

		expanded := false

		for _, group := range groups {
			if len(group) < 2 {
				continue
			}

			for _, key := range group {
				if levels[key.Source] < len(key.Segments())-1 {
					levels[key.Source]++
					expanded = true
				}
			}
		}

		if !expanded {
			break
		}
	}

	names := make(map[string]string, len(keys))
	for _, key := range keys {
		names[key.Source] = expand(key, levels[key.Source])
	}

	return names
}

// stereotype renders the display name as the diagram stereotype: words are
// wrapped onto lines of at most stereotypeSplitLen characters, large
// variants drop the _LARGE suffix and render bold instead.
func stereotype(name string, large bool) string {
	bold := false

	if large && strings.HasSuffix(name, "_LARGE") {
		name = strings.TrimSuffix(name, "_LARGE")
		bold = true
	}

	lines := wrapWords(splitWords(name), stereotypeSplitLen)

	if bold {
		for i, line := range lines {
			lines[i] = "**" + line + "**"
		}
	}

	return strings.Join(lines, `\n`)
}

// splitWords splits on underscores except when the underscore precedes a
// digit, so trailing version digits stay attached to their word.
func splitWords(name string) []string {
	var words []string

	start := 0

	for i := 0; i < len(name); i++ {
		if name[i] != '_' {
			continue
		}

		if i+1 < len(name) && name[i+1] >= '0' && name[i+1] <= '9' {
			continue
		}

		words = append(words, name[start:i])
		start = i + 1
	}

	return append(words, name[start:])
}

// wrapWords greedily fills lines up to maxLen characters. A single word
// longer than maxLen gets its own line.
func wrapWords(words []string, maxLen int) []string {
	var lines []string

	line := ""

	for _, word := range words {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= maxLen:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}

	return append(lines, line)
}

// indentBlock re-indents continuation lines of a multi-line option value so
// it nests inside the skinparam braces.
func indentBlock(value string) string {
	return strings.ReplaceAll(value, "\n", "\n    ")
}

// aggregator renders the per-service include file.
func aggregator(dir string, files []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "' Includes every icon under %s\n", dir)

	for _, file := range files {
		fmt.Fprintf(&b, "!include ./%s\n", file)
	}

	return b.String()
}
