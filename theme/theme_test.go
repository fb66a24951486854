package theme

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dshills/tessera/style"
)

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if th.VLine != '│' || th.HLine != '─' {
		t.Errorf("default glyphs = %q %q", th.VLine, th.HLine)
	}
	if !th.Selection.Attributes.Has(style.AttrReverse) {
		t.Error("default selection should be reversed")
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`{
		"name": "midnight",
		"glyphs": {"vline": "|"},
		"border": {"fg": "#3366aa", "bold": true},
		"prompt": {"bg": "#101010"}
	}`)

	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "midnight" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.VLine != '|' {
		t.Errorf("VLine = %q", th.VLine)
	}
	// Unspecified glyph keeps the default.
	if th.HLine != '─' {
		t.Errorf("HLine = %q, want default", th.HLine)
	}
	if th.Border.Foreground != style.RGB(0x33, 0x66, 0xaa) {
		t.Errorf("border fg = %v", th.Border.Foreground)
	}
	if !th.Border.Attributes.Has(style.AttrBold) {
		t.Error("border should be bold")
	}
	if th.Prompt.Background != style.RGB(0x10, 0x10, 0x10) {
		t.Errorf("prompt bg = %v", th.Prompt.Background)
	}
	// Untouched styles keep their defaults.
	if !th.Selection.Attributes.Has(style.AttrReverse) {
		t.Error("selection should keep default reverse")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("{not json")); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("malformed JSON: err = %v", err)
	}
	if _, err := Parse([]byte(`{"glyphs": {"vline": "ab"}}`)); !errors.Is(err, ErrBadGlyph) {
		t.Errorf("two-rune glyph: err = %v", err)
	}
	if _, err := Parse([]byte(`{"border": {"fg": "nope"}}`)); err == nil {
		t.Error("bad hex color should fail")
	}
}

func TestAttributeOverrideCanClear(t *testing.T) {
	th, err := Parse([]byte(`{"selection": {"reverse": false, "underline": true}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Selection.Attributes.Has(style.AttrReverse) {
		t.Error("reverse should be cleared")
	}
	if !th.Selection.Attributes.Has(style.AttrUnderline) {
		t.Error("underline should be set")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	th := Default()
	th.Name = "test"
	th.VLine = '║'
	th.Border = style.New(style.RGB(10, 20, 30)).Underline()
	th.Message = style.Default()

	path := filepath.Join(t.TempDir(), "theme.json")
	if err := th.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "test" || got.VLine != '║' || got.HLine != th.HLine {
		t.Errorf("round trip identity: got %q %q %q", got.Name, got.VLine, got.HLine)
	}
	if got.Border != th.Border {
		t.Errorf("border = %+v, want %+v", got.Border, th.Border)
	}
	if got.Selection != th.Selection {
		t.Errorf("selection = %+v, want %+v", got.Selection, th.Selection)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing file should fail")
	}
}
