// Package template holds the fixed registry of PlantUML text templates the
// generator renders icons through.
//
// Templates are plain strings with {name} parameters substituted by Render.
// The alias and label identifiers appearing in the macro bodies are not
// parameters: they are the formal arguments of the generated PlantUML
// macros and must survive rendering literally.
package template
