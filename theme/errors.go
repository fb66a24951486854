package theme

import "errors"

// Theme decoding errors.
var (
	// ErrInvalidJSON indicates the theme file is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid theme JSON")

	// ErrBadGlyph indicates a glyph field is not exactly one rune.
	ErrBadGlyph = errors.New("glyph must be a single character")
)
