package config

import "fmt"

// Codec decodes raw configuration data into ordered sections and encodes
// ordered sections back into data. Implementations own the on-disk text
// syntax; the store only ever sees parsed sections. See config/codec/yaml.
type Codec interface {
	Decode(data []byte) ([]RawSection, error)
	Encode(sections []RawSection) ([]byte, error)
}

// Fetcher reads raw configuration data. See config/fetcher/file.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// FromSource reads configuration data through fetcher, decodes it with
// codec, and loads the resulting sections into a Store.
func FromSource(fetcher Fetcher, codec Codec) (*Store, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	sections, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	return Load(sections)
}
