package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"sdexplorer/internal/constants"
	apperrors "sdexplorer/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Window   WindowConfig   `json:"window"`
	Theme    ThemeConfig    `json:"theme"`
	Explorer ExplorerConfig `json:"explorer"`
}

// WindowConfig represents window-related settings
type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ThemeConfig represents theme-related settings
type ThemeConfig struct {
	Dark        bool   `json:"dark"`
	FontSize    int    `json:"fontSize"`
	FontPath    string `json:"fontPath"`
	ItemSpacing int    `json:"itemSpacing"` // Padding between grid cells, 0 keeps the theme default
}

// ExplorerConfig holds everything the thumbnail grid needs
type ExplorerConfig struct {
	DataPath          string            `json:"dataPath"`          // Root of thumbnails/<location>/<cas>.webp
	LocationID        int               `json:"locationId"`        // Location the opened paths belong to
	ShowHiddenFiles   bool              `json:"showHiddenFiles"`   // Include dotfiles
	IgnorePatterns    []string          `json:"ignorePatterns"`    // Doublestar globs matched against entry names
	Sort              SortConfig        `json:"sort"`              // Listing order
	ThumbnailOverride bool              `json:"thumbnailOverride"` // Show thumbnail images even when none was found
	CellSize          int               `json:"cellSize"`          // Grid cell edge in pixels
	IconMaxWidth      int               `json:"iconMaxWidth"`      // Cap for extension icon width
	Icons             map[string]string `json:"icons"`             // extension -> icon file (svg/png)
	CursorStyle       CursorStyleConfig `json:"cursorStyle"`
}

// SortConfig represents file sorting settings
type SortConfig struct {
	SortBy           string `json:"sortBy"`           // "name", "size", "modified", "extension"
	SortOrder        string `json:"sortOrder"`        // "asc", "desc"
	DirectoriesFirst bool   `json:"directoriesFirst"` // Whether to show directories before files
}

// CursorStyleConfig represents cursor appearance settings
type CursorStyleConfig struct {
	Type      string   `json:"type"`      // "underline", "border", "background"
	Thickness int      `json:"thickness"` // Line thickness for underline/border
	Color     [4]uint8 `json:"color"`     // RGBA
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
	logger     zerolog.Logger
}

// NewManager creates a configuration manager using the XDG config location
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		configPath: getConfigPath(),
		logger:     logger.With().Str("component", "config").Logger(),
	}
}

// NewManagerWithPath creates a configuration manager bound to an explicit file
func NewManagerWithPath(path string, logger zerolog.Logger) *Manager {
	return &Manager{
		configPath: path,
		logger:     logger.With().Str("component", "config").Logger(),
	}
}

// Path returns the config file location
func (m *Manager) Path() string {
	return m.configPath
}

// Load loads configuration from file over the defaults. Keys the file
// leaves out keep their default values.
func (m *Manager) Load() (*Config, error) {
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		m.logger.Info().Err(err).Str("path", m.configPath).Msg("config file not found, using defaults")
		return config, nil
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, apperrors.NewConfigError("load_config", "error parsing config file", err)
	}

	normalizeConfig(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return apperrors.NewConfigError("save_config", "error writing config file", err)
	}

	m.logger.Debug().Str("path", m.configPath).Msg("config saved")
	return nil
}

// Validate rejects settings the explorer cannot work with
func (c *Config) Validate() error {
	for _, pattern := range c.Explorer.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return apperrors.NewConfigError("validate", fmt.Sprintf("invalid ignore pattern %q", pattern), doublestar.ErrBadPattern)
		}
	}
	if c.Explorer.LocationID < 0 {
		return apperrors.NewConfigError("validate", fmt.Sprintf("invalid location id %d", c.Explorer.LocationID), nil)
	}
	switch c.Explorer.Sort.SortBy {
	case "name", "size", "modified", "extension":
	default:
		return apperrors.NewConfigError("validate", fmt.Sprintf("unknown sort key %q", c.Explorer.Sort.SortBy), nil)
	}
	return nil
}

// ThumbnailDir returns the directory holding thumbnails for the configured location
func (c *Config) ThumbnailDir() string {
	return filepath.Join(c.Explorer.DataPath, constants.ThumbnailCacheDirName, fmt.Sprintf("%d", c.Explorer.LocationID))
}

// NormalizedIcons returns the icon overrides keyed by lower-case extension without dot
func (c *Config) NormalizedIcons() map[string]string {
	out := make(map[string]string, len(c.Explorer.Icons))
	for ext, path := range c.Explorer.Icons {
		key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if key == "" || path == "" {
			continue
		}
		out[key] = path
	}
	return out
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  constants.DefaultWindowWidth,
			Height: constants.DefaultWindowHeight,
		},
		Theme: ThemeConfig{
			Dark:     constants.DarkThemeDefault,
			FontSize: constants.DefaultFontSize,
			FontPath: "",
		},
		Explorer: ExplorerConfig{
			DataPath:        defaultDataPath(),
			LocationID:      constants.DefaultLocationID,
			ShowHiddenFiles: constants.DefaultShowHiddenFiles,
			IgnorePatterns:  []string{".DS_Store", "Thumbs.db", "desktop.ini"},
			Sort: SortConfig{
				SortBy:           constants.DefaultSortBy,
				SortOrder:        constants.DefaultSortOrder,
				DirectoriesFirst: constants.DefaultDirectoriesFirst,
			},
			ThumbnailOverride: false,
			CellSize:          constants.DefaultCellSize,
			IconMaxWidth:      constants.DefaultIconMaxWidth,
			Icons:             make(map[string]string),
			CursorStyle: CursorStyleConfig{
				Type:      constants.DefaultCursorType,
				Thickness: constants.DefaultCursorThickness,
				Color:     constants.DefaultCursorColor,
			},
		},
	}
}

// getConfigPath returns the path to the configuration file following XDG conventions
func getConfigPath() string {
	path, err := xdg.ConfigFile(filepath.Join(constants.ApplicationName, constants.ConfigFileName))
	if err != nil {
		return constants.ConfigFileName
	}
	return path
}

func defaultDataPath() string {
	return filepath.Join(xdg.DataHome, constants.ApplicationName)
}

// normalizeConfig puts unusable values from the file back to their defaults
func normalizeConfig(c *Config) {
	d := getDefaultConfig()

	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Theme.FontSize <= 0 {
		c.Theme.FontSize = d.Theme.FontSize
	}
	if c.Theme.ItemSpacing < 0 {
		c.Theme.ItemSpacing = 0
	}

	ex := &c.Explorer
	if ex.DataPath == "" {
		ex.DataPath = d.Explorer.DataPath
	}
	if ex.Sort.SortBy == "" {
		ex.Sort.SortBy = d.Explorer.Sort.SortBy
	}
	if ex.Sort.SortOrder == "" {
		ex.Sort.SortOrder = d.Explorer.Sort.SortOrder
	}
	if ex.CellSize < constants.MinCellSize {
		ex.CellSize = d.Explorer.CellSize
	}
	if ex.IconMaxWidth <= 0 {
		ex.IconMaxWidth = d.Explorer.IconMaxWidth
	}
	if ex.Icons == nil {
		ex.Icons = make(map[string]string)
	}
	if ex.CursorStyle.Type == "" {
		ex.CursorStyle.Type = d.Explorer.CursorStyle.Type
	}
	if ex.CursorStyle.Thickness <= 0 {
		ex.CursorStyle.Thickness = d.Explorer.CursorStyle.Thickness
	}
	if ex.CursorStyle.Color == [4]uint8{} {
		ex.CursorStyle.Color = d.Explorer.CursorStyle.Color
	}
}
