// Package generate renders resolved icon keys into the output artifact
// tree: per icon a macro definition, a stereotype skinparam block, and a
// sprite declaration; per service an aggregator include; plus the shared
// prelude at the root.
//
// Generation is a pure in-memory transform. The full artifact list is
// assembled before anything touches disk, so a failing icon aborts the run
// without partial output.
package generate
