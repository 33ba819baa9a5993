// Package yaml implements config.Codec for YAML configuration files using
// goccy/go-yaml.
//
// The document is a single mapping from section address to option mapping:
//
//	colors:
//	  Orange: "#FFA500"
//	Storage:
//	  entity_type: artifact
//	Storage.AmazonS3.Bucket:
//	  color: ${colors:Orange}
//
// Section order is preserved on decode and honored on encode, so a
// reconciled configuration round-trips with minimal diffs. Option keys are
// written sorted within each section.
package yaml
