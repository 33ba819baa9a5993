// Package config holds the cascading icon configuration and resolves one
// effective option set per icon key.
//
// The configuration is an ordered list of sections. A section name is a
// dotted address with one of exactly three shapes:
//
//	Category                    applies to every icon in the category
//	Category.Service.           applies to every icon under the service
//	Category.Service.Component  applies to one exact leaf icon
//
// plus the reserved "colors" section, whose entries are named color
// aliases. Resolution merges every section applying to an icon in order of
// increasing specificity, overriding per option key, then rewrites
// ${colors:Name} references to their aliased literals in a single pass.
//
// # Extension points
//
//   - Fetcher: retrieves raw configuration bytes (file, memory, ...)
//   - Codec: decodes bytes into ordered sections and encodes them back
//
// The YAML codec lives in config/codec/yaml and the file fetcher in
// config/fetcher/file.
package config
