package prism

import (
	"strings"

	"pkt.systems/prism/ansi"
)

// ThemeEntry holds the background and foreground colors used when rendering
// one severity.
type ThemeEntry struct {
	BG ansi.Color
	FG ansi.Color
}

// Theme maps severities to colors. Entries may be absent; a render against a
// level with no entry is the one hard configuration error in the pipeline.
type Theme struct {
	name    string
	entries map[Level]ThemeEntry
}

// NewTheme builds a theme from explicit per-level entries. The entries map is
// copied; the theme is immutable afterwards.
func NewTheme(name string, entries map[Level]ThemeEntry) *Theme {
	copied := make(map[Level]ThemeEntry, len(entries))
	for level, entry := range entries {
		copied[level] = entry
	}
	return &Theme{name: name, entries: copied}
}

// NewThemeFromHex builds a theme from two parallel hex color tables, one
// entry per level including the Unknown sentinel.
func NewThemeFromHex(name string, bg, fg [levelCount]uint32) *Theme {
	entries := make(map[Level]ThemeEntry, levelCount)
	for i := 0; i < levelCount; i++ {
		entries[Level(i)] = ThemeEntry{
			BG: ansi.FromHex(bg[i]),
			FG: ansi.FromHex(fg[i]),
		}
	}
	return &Theme{name: name, entries: entries}
}

// Name returns the theme's name.
func (t *Theme) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Entry returns the colors for level. The second return is false when the
// theme has no entry for it.
func (t *Theme) Entry(level Level) (ThemeEntry, bool) {
	if t == nil {
		return ThemeEntry{}, false
	}
	entry, ok := t.entries[level]
	return entry, ok
}

// Color tables for the built-in themes, indexed by level
// (Trace, Debug, Info, Warn, Severe, Critical, Unknown).
var (
	themeLightFG = [levelCount]uint32{0x212121, 0x008000, 0x000000, 0x808000, 0xDC143C, 0xFFFFFF, 0x808080}
	themeLightBG = [levelCount]uint32{0xFFFFFF, 0xFFFFFF, 0xFFFFFF, 0xFFFAE6, 0xFFF0F5, 0xFF0000, 0xFFFFFF}

	themeDarkFG = [levelCount]uint32{0xFFFFFF, 0xFFDF00, 0x90EE90, 0xFFA500, 0xFF69B4, 0xFFFF00, 0xFFFFFF}
	themeDarkBG = [levelCount]uint32{0x6161ED, 0x181818, 0x181818, 0x181818, 0x181818, 0xE60000, 0xE60000}
)

// ThemeLight returns the built-in light theme.
func ThemeLight() *Theme {
	return NewThemeFromHex("light", themeLightBG, themeLightFG)
}

// ThemeDark returns the built-in dark theme. It is the default.
func ThemeDark() *Theme {
	return NewThemeFromHex("dark", themeDarkBG, themeDarkFG)
}

// ThemeByName resolves a built-in theme by name, case insensitively. Unknown
// names fall back to the dark theme.
func ThemeByName(name string) *Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return ThemeLight()
	default:
		return ThemeDark()
	}
}
