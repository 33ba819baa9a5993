// Package icon parses vendor icon file names into structured keys and
// discovers icon files under a directory tree.
//
// File names must follow the convention
//
//	<CATEGORY>_<SERVICE>[_<COMPONENT>][_LARGE].<EXT>
//
// where EXT is one of the recognized icon extensions (.png, .gif, .jpg,
// .jpeg). Category and service are mandatory; the component segment and the
// LARGE variant marker are optional. Segment case is preserved on the Key;
// consumers that build configuration addresses or output paths apply their
// own case normalization.
package icon
