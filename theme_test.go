package prism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkt.systems/prism"
	"pkt.systems/prism/ansi"
)

func TestBuiltinThemesCoverAllLevels(t *testing.T) {
	levels := []prism.Level{
		prism.TraceLevel, prism.DebugLevel, prism.InfoLevel,
		prism.WarnLevel, prism.SevereLevel, prism.CriticalLevel,
		prism.UnknownLevel,
	}
	for _, theme := range []*prism.Theme{prism.ThemeDark(), prism.ThemeLight()} {
		for _, level := range levels {
			_, ok := theme.Entry(level)
			assert.True(t, ok, "theme %s level %s", theme.Name(), prism.LevelString(level))
		}
	}
}

func TestThemeDarkInfoColors(t *testing.T) {
	entry, ok := prism.ThemeDark().Entry(prism.InfoLevel)
	require.True(t, ok)
	assert.Equal(t, ansi.Color{R: 0x18, G: 0x18, B: 0x18}, entry.BG)
	assert.Equal(t, ansi.Color{R: 0x90, G: 0xEE, B: 0x90}, entry.FG)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "light", prism.ThemeByName("light").Name())
	assert.Equal(t, "light", prism.ThemeByName(" Light ").Name())
	assert.Equal(t, "dark", prism.ThemeByName("dark").Name())
	assert.Equal(t, "dark", prism.ThemeByName("").Name())
	assert.Equal(t, "dark", prism.ThemeByName("no-such-theme").Name())
}

func TestNewThemeCopiesEntries(t *testing.T) {
	entries := map[prism.Level]prism.ThemeEntry{
		prism.InfoLevel: {FG: ansi.Color{R: 1}},
	}
	theme := prism.NewTheme("custom", entries)
	entries[prism.InfoLevel] = prism.ThemeEntry{FG: ansi.Color{R: 2}}

	entry, ok := theme.Entry(prism.InfoLevel)
	require.True(t, ok)
	assert.Equal(t, uint8(1), entry.FG.R)

	_, ok = theme.Entry(prism.WarnLevel)
	assert.False(t, ok)
}

func TestNilThemeIsEmpty(t *testing.T) {
	var theme *prism.Theme
	assert.Equal(t, "", theme.Name())
	_, ok := theme.Entry(prism.InfoLevel)
	assert.False(t, ok)
}
