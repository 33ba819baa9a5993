// Package sprite encodes icon images into PlantUML sprite declarations.
//
// A sprite is a 16-level grayscale bitmap rendered in the diagram's current
// color. Opaque dark pixels map to high digits (full ink), light and
// transparent pixels to low digits. Icons that contain no fully dark pixel
// are shifted so their darkest pixel saturates, matching how the original
// vendor icons are normalized.
package sprite
