// Package pumlgen generates PlantUML sprites and macros from directories of
// convention-named icon images.
//
// Icon file names follow <CATEGORY>_<SERVICE>[_<COMPONENT>][_LARGE].<EXT>.
// Each icon is rendered through a template set selected by its resolved
// entity type, with colors, skinparams, and entity types coming from a
// cascading YAML configuration where more specific sections override less
// specific ones. The synchronize mode (-g) rewrites the configuration file
// to match the discovered icon set instead of generating output.
//
// The package wires the run through Uber's Fx: NewApp assembles the
// application, WithPipeline adds the generation run, WithPreview adds an
// HTTP server over the generated tree for !includeurl-based testing.
package pumlgen
