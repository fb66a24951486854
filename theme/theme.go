// Package theme holds named style sets for the chrome an application draws
// around its panes: separator glyphs and the styles for borders, the prompt
// strip, and selections. Themes round-trip through JSON so users can keep
// them in a config file.
package theme

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/tessera/style"
)

// Theme defines the glyphs and styles used for pane chrome.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// VLine is the glyph drawn on vertical separator cells.
	VLine rune

	// HLine is the glyph drawn on horizontal separator cells.
	HLine rune

	// Cross is the glyph drawn where separators intersect.
	Cross rune

	// Border is the style separator cells are drawn with.
	Border style.Style

	// Prompt is the style of the prompt strip at the bottom of the frame.
	Prompt style.Style

	// Selection is applied to selected text on top of its own style.
	Selection style.Style

	// Message is used for status text such as the too-small notice.
	Message style.Style
}

// Default returns the built-in theme: box-drawing separators in a dim gray,
// everything else on the terminal's default colors.
func Default() *Theme {
	return &Theme{
		Name:      "default",
		VLine:     '│',
		HLine:     '─',
		Cross:     '┼',
		Border:    style.New(style.RGB(110, 110, 110)),
		Prompt:    style.Default(),
		Selection: style.Default().Reversed(),
		Message:   style.New(style.RGB(200, 80, 80)).Bold(),
	}
}

// Load reads a theme from a JSON file. Missing fields keep their Default()
// values, so a theme file only has to name what it changes.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Parse decodes theme JSON, filling unspecified fields from Default().
func Parse(data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse theme: %w", ErrInvalidJSON)
	}

	t := Default()
	doc := gjson.ParseBytes(data)

	if v := doc.Get("name"); v.Exists() {
		t.Name = v.String()
	}
	if r, err := glyphField(doc, "glyphs.vline"); err != nil {
		return nil, err
	} else if r != 0 {
		t.VLine = r
	}
	if r, err := glyphField(doc, "glyphs.hline"); err != nil {
		return nil, err
	} else if r != 0 {
		t.HLine = r
	}
	if r, err := glyphField(doc, "glyphs.cross"); err != nil {
		return nil, err
	} else if r != 0 {
		t.Cross = r
	}

	for _, f := range []struct {
		key string
		dst *style.Style
	}{
		{"border", &t.Border},
		{"prompt", &t.Prompt},
		{"selection", &t.Selection},
		{"message", &t.Message},
	} {
		if err := styleField(doc, f.key, f.dst); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Save writes the theme to path as JSON.
func (t *Theme) Save(path string) error {
	data, err := t.encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

func (t *Theme) encode() ([]byte, error) {
	out := []byte("{}")
	var err error

	set := func(key string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, key, value)
	}

	set("name", t.Name)
	set("glyphs.vline", string(t.VLine))
	set("glyphs.hline", string(t.HLine))
	set("glyphs.cross", string(t.Cross))
	for _, f := range []struct {
		key string
		src style.Style
	}{
		{"border", t.Border},
		{"prompt", t.Prompt},
		{"selection", t.Selection},
		{"message", t.Message},
	} {
		encodeStyle(f.key, f.src, set)
	}

	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return out, nil
}

func encodeStyle(key string, s style.Style, set func(string, any)) {
	if !s.Foreground.IsDefault() {
		set(key+".fg", s.Foreground.Hex())
	}
	if !s.Background.IsDefault() {
		set(key+".bg", s.Background.Hex())
	}
	if s.Attributes.Has(style.AttrBold) {
		set(key+".bold", true)
	}
	if s.Attributes.Has(style.AttrItalic) {
		set(key+".italic", true)
	}
	if s.Attributes.Has(style.AttrUnderline) {
		set(key+".underline", true)
	}
	if s.Attributes.Has(style.AttrReverse) {
		set(key+".reverse", true)
	}
}

func glyphField(doc gjson.Result, key string) (rune, error) {
	v := doc.Get(key)
	if !v.Exists() {
		return 0, nil
	}
	runes := []rune(v.String())
	if len(runes) != 1 {
		return 0, fmt.Errorf("theme %s %q: %w", key, v.String(), ErrBadGlyph)
	}
	return runes[0], nil
}

func styleField(doc gjson.Result, key string, dst *style.Style) error {
	if v := doc.Get(key + ".fg"); v.Exists() {
		c, err := style.FromHex(v.String())
		if err != nil {
			return fmt.Errorf("theme %s.fg: %w", key, err)
		}
		*dst = dst.WithForeground(c)
	}
	if v := doc.Get(key + ".bg"); v.Exists() {
		c, err := style.FromHex(v.String())
		if err != nil {
			return fmt.Errorf("theme %s.bg: %w", key, err)
		}
		*dst = dst.WithBackground(c)
	}
	attrs := dst.Attributes
	for _, a := range []struct {
		key  string
		attr style.Attribute
	}{
		{"bold", style.AttrBold},
		{"italic", style.AttrItalic},
		{"underline", style.AttrUnderline},
		{"reverse", style.AttrReverse},
	} {
		if v := doc.Get(key + "." + a.key); v.Exists() {
			if v.Bool() {
				attrs = attrs.With(a.attr)
			} else {
				attrs = attrs.Without(a.attr)
			}
		}
	}
	*dst = dst.WithAttributes(attrs)
	return nil
}
