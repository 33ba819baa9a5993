package yaml

import (
	"errors"
	"fmt"
	"sort"

	"github.com/0xalexb/pumlgen/config"

	"github.com/goccy/go-yaml"
)

// ErrNotAMapping is returned when the document root or a section body is
// not a mapping.
var ErrNotAMapping = errors.New("not a mapping")

// Codec implements config.Codec for YAML documents.
type Codec struct{}

// NewCodec creates a new YAML codec instance.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses data into ordered sections. Empty input decodes to no
// sections, which matches the "absent configuration is valid" rule.
func (c *Codec) Decode(data []byte) ([]config.RawSection, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var doc yaml.MapSlice

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	sections := make([]config.RawSection, 0, len(doc))

	for _, item := range doc {
		name := fmt.Sprintf("%v", item.Key)

		options, err := decodeOptions(item.Value)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", name, err)
		}

		sections = append(sections, config.RawSection{Name: name, Options: options})
	}

	return sections, nil
}

// Encode serializes sections in order, option keys sorted within each
// section.
func (c *Codec) Encode(sections []config.RawSection) ([]byte, error) {
	doc := make(yaml.MapSlice, 0, len(sections))

	for _, section := range sections {
		body := make(yaml.MapSlice, 0, len(section.Options))

		names := make([]string, 0, len(section.Options))
		for name := range section.Options {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			body = append(body, yaml.MapItem{Key: name, Value: section.Options[name]})
		}

		// An empty section is written as a null body, which decodes back
		// to an empty option mapping.
		if len(body) == 0 {
			doc = append(doc, yaml.MapItem{Key: section.Name, Value: nil})

			continue
		}

		doc = append(doc, yaml.MapItem{Key: section.Name, Value: body})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// decodeOptions converts a section body into a string option mapping. A nil
// body is an empty section; scalar option values are stringified the way
// they were written.
func decodeOptions(body any) (map[string]string, error) {
	if body == nil {
		return map[string]string{}, nil
	}

	mapping, ok := body.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: section body has type %T", ErrNotAMapping, body)
	}

	options := make(map[string]string, len(mapping))

	for _, item := range mapping {
		options[fmt.Sprintf("%v", item.Key)] = fmt.Sprintf("%v", item.Value)
	}

	return options, nil
}
