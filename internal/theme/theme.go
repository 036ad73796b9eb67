package theme

import (
	"image/color"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"sdexplorer/internal/config"
	"sdexplorer/internal/constants"
	apperrors "sdexplorer/internal/errors"
)

// CustomTheme implements fyne.Theme with configurable font and spacing
type CustomTheme struct {
	config     *config.Config
	customFont fyne.Resource
	logger     zerolog.Logger
}

// NewCustomTheme creates a new custom theme with the given configuration
func NewCustomTheme(cfg *config.Config, logger zerolog.Logger) *CustomTheme {
	t := &CustomTheme{
		config: cfg,
		logger: logger.With().Str("component", "theme").Logger(),
	}

	if cfg.Theme.FontPath != "" {
		if err := t.loadCustomFont(); err != nil {
			t.logger.Warn().Err(err).Msg("falling back to the default font")
		}
	}

	return t
}

// loadCustomFont loads a custom font from the configured path
func (t *CustomTheme) loadCustomFont() error {
	fontPath := t.config.Theme.FontPath

	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		return apperrors.NewThemeError("load_font", "cannot read font file "+fontPath, err)
	}

	t.customFont = fyne.NewStaticResource(filepath.Base(fontPath), fontData)
	t.logger.Debug().Str("path", fontPath).Msg("loaded custom font")
	return nil
}

// HasCustomFont reports whether a font file was loaded
func (t *CustomTheme) HasCustomFont() bool {
	return t.customFont != nil
}

func (t *CustomTheme) base() fyne.Theme {
	if t.config.Theme.Dark {
		return theme.DarkTheme()
	}
	return theme.DefaultTheme()
}

// Color methods from default theme
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base().Color(name, variant)
}

// Icon methods from default theme
func (t *CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base().Icon(name)
}

// Font method with custom font support
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.customFont != nil {
		return t.customFont
	}
	return t.base().Font(style)
}

// Size method with custom font size and grid spacing support
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.config.Theme.FontSize > 0 {
		return float32(t.config.Theme.FontSize)
	}

	if t.config.Theme.ItemSpacing > 0 && name == theme.SizeNamePadding {
		requested := float32(t.config.Theme.ItemSpacing)
		if requested < constants.MinPadding {
			return constants.MinPadding
		}
		return requested
	}

	return t.base().Size(name)
}
