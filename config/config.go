package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	VisibleLines   int    `json:"visible_lines"`
	Width          int    `json:"width"`
	LineHeight     int    `json:"line_height"`
	Padding        int    `json:"padding"`
	ScrollbarWidth int    `json:"scrollbar_width"`
	MinThumbHeight int    `json:"min_thumb_height"`
	CursorWidth    int    `json:"cursor_width"`
	Theme          string `json:"theme"`
	NotePath       string `json:"note_path"`
	MaxNoteLength  int    `json:"max_note_length"`
	LogPath        string `json:"log_path"`
}

// Color is packed as 0xAARRGGBB.
type Color uint32

func (c Color) RGB() (r, g, b int32) {
	return int32(c>>16) & 0xFF, int32(c>>8) & 0xFF, int32(c) & 0xFF
}

func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Over composites c onto bg using c's alpha. The result is opaque.
func (c Color) Over(bg Color) Color {
	a := int32(c.Alpha())
	if a == 0xFF {
		return c
	}
	r, g, b := c.RGB()
	br, bgG, bb := bg.RGB()
	mix := func(fc, bc int32) Color {
		return Color((fc*a + bc*(0xFF-a)) / 0xFF)
	}
	return 0xFF<<24 | mix(r, br)<<16 | mix(g, bgG)<<8 | mix(b, bb)
}

type ColorScheme struct {
	Name        string
	Background  Color
	Scrollbar   Color
	Selection   Color
	Text        Color
	Cursor      Color
	StatusBarBg Color
	StatusBarFg Color
}

var Themes = map[string]*ColorScheme{
	"classic": {
		Name:        "Classic",
		Background:  0xFF222222,
		Scrollbar:   0xFFAAAAAA,
		Selection:   0x80808080,
		Text:        0xFFFFFFFF,
		Cursor:      0xFFFFAA00,
		StatusBarBg: 0xFF444444,
		StatusBarFg: 0xFFFFFFFF,
	},
	"light": {
		Name:        "Light",
		Background:  0xFFF5F5F5,
		Scrollbar:   0xFF999999,
		Selection:   0xFFADD6FF,
		Text:        0xFF1E1E1E,
		Cursor:      0xFF0066CC,
		StatusBarBg: 0xFFADD6FF,
		StatusBarFg: 0xFF000000,
	},
	"monokai": {
		Name:        "Monokai",
		Background:  0xFF272822,
		Scrollbar:   0xFF75715E,
		Selection:   0xFF49483E,
		Text:        0xFFF8F8F2,
		Cursor:      0xFFF8F8F0,
		StatusBarBg: 0xFF49483E,
		StatusBarFg: 0xFFF8F8F2,
	},
	"high-contrast": {
		Name:        "High Contrast",
		Background:  0xFF000000,
		Scrollbar:   0xFFFFFFFF,
		Selection:   0xFF0050A0,
		Text:        0xFFFFFFFF,
		Cursor:      0xFFFFFF00,
		StatusBarBg: 0xFF0000C8,
		StatusBarFg: 0xFFFFFFFF,
	},
}

func Default() *Config {
	return &Config{
		VisibleLines:   10,
		Width:          60,
		LineHeight:     1,
		Padding:        1,
		ScrollbarWidth: 1,
		MinThumbHeight: 1,
		CursorWidth:    1,
		Theme:          "classic",
		NotePath:       defaultNotePath(),
		MaxNoteLength:  10000,
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["classic"]
	}
	return theme
}

// Validate replaces unusable geometry with the defaults.
func (c *Config) Validate() {
	d := Default()
	if c.VisibleLines <= 0 {
		c.VisibleLines = d.VisibleLines
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.LineHeight <= 0 {
		c.LineHeight = d.LineHeight
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.ScrollbarWidth < 0 {
		c.ScrollbarWidth = 0
	}
	if c.MinThumbHeight <= 0 {
		c.MinThumbHeight = d.MinThumbHeight
	}
	if c.CursorWidth <= 0 {
		c.CursorWidth = d.CursorWidth
	}
	if c.MaxNoteLength <= 0 {
		c.MaxNoteLength = d.MaxNoteLength
	}
	if c.NotePath == "" {
		c.NotePath = d.NotePath
	}
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "editbox")
}

func defaultNotePath() string {
	dir := configDir()
	if dir == "" {
		return "note.json"
	}
	return filepath.Join(dir, "note.json")
}

func ConfigPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "settings.json")
}

func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path over the defaults. A missing file is
// not an error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// SaveTo writes the configuration as indented JSON, creating parent
// directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
