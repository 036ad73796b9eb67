package theme

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"sdexplorer/internal/config"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Theme.Dark = true
	cfg.Theme.FontSize = 17
	return cfg
}

func TestCustomThemeSizes(t *testing.T) {
	cfg := newConfig()
	ct := NewCustomTheme(cfg, zerolog.Nop())

	assert.Equal(t, float32(17), ct.Size(theme.SizeNameText))
	assert.Equal(t, theme.DarkTheme().Size(theme.SizeNamePadding), ct.Size(theme.SizeNamePadding))

	cfg.Theme.ItemSpacing = 1
	assert.Equal(t, float32(2), ct.Size(theme.SizeNamePadding), "spacing is floored")

	cfg.Theme.ItemSpacing = 9
	assert.Equal(t, float32(9), ct.Size(theme.SizeNamePadding))
}

func TestCustomThemeFont(t *testing.T) {
	cfg := newConfig()
	cfg.Theme.FontPath = filepath.Join(t.TempDir(), "missing.ttf")
	ct := NewCustomTheme(cfg, zerolog.Nop())
	assert.False(t, ct.HasCustomFont())
	assert.NotNil(t, ct.Font(fyne.TextStyle{}))

	fontPath := filepath.Join(t.TempDir(), "custom.ttf")
	assert.NoError(t, os.WriteFile(fontPath, []byte("not really a font"), 0644))
	cfg.Theme.FontPath = fontPath
	ct = NewCustomTheme(cfg, zerolog.Nop())
	assert.True(t, ct.HasCustomFont())
	assert.Equal(t, "custom.ttf", ct.Font(fyne.TextStyle{}).Name())
}
