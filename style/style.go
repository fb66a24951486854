// Package style provides the text styling value types shared by the styled
// text model and the terminal backend: colors, attribute flags, and the
// Style struct combining them.
package style

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim                     // Faint/dim text
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrBlink                   // Blinking text (rarely supported)
	AttrReverse                 // Reverse video (swap fg/bg)
	AttrStrikethrough           // Strikethrough text
	AttrHidden                  // Hidden/invisible text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Style represents the visual style of a run of text. The zero value is the
// terminal default and is what unstyled text resolves to.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// Default returns the default terminal style.
func Default() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// New creates a style with the given foreground color.
func New(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
	}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttributes returns a new style with the given attribute set.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Italic returns a new style with the italic attribute added.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Underline returns a new style with the underline attribute added.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Reversed returns a new style with reverse video added. Used for the
// cursor cell overlay.
func (s Style) Reversed() Style {
	s.Attributes |= AttrReverse
	return s
}

// Highlighted returns the selection variant of the style. A default
// background becomes gray; a concrete background is lightened so the
// selection stays visible on any theme.
func (s Style) Highlighted() Style {
	if s.Background.IsDefault() {
		s.Background = ColorGray
		return s
	}
	s.Background = s.Background.Lighten(0.35)
	return s
}

// Overlay merges another style on top of this one: the other style's
// non-default colors replace, its attributes are added. Text keeps its own
// identity where the overlay says nothing.
func (s Style) Overlay(other Style) Style {
	if !other.Foreground.IsDefault() {
		s.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		s.Background = other.Background
	}
	s.Attributes = s.Attributes.With(other.Attributes)
	return s
}

// Equals reports whether two styles are identical.
func (s Style) Equals(other Style) bool {
	return s == other
}
