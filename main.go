package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"sdexplorer/internal/cas"
	"sdexplorer/internal/config"
	"sdexplorer/internal/constants"
	"sdexplorer/internal/fileinfo"
	"sdexplorer/internal/icons"
	"sdexplorer/internal/keymanager"
	customtheme "sdexplorer/internal/theme"
	"sdexplorer/internal/thumb"
	"sdexplorer/internal/thumbstore"
	"sdexplorer/internal/ui"
	"sdexplorer/internal/watcher"
)

// ExplorerWindow shows one directory of a location as a thumbnail grid
type ExplorerWindow struct {
	window fyne.Window
	logger zerolog.Logger
	config *config.Config

	explorer   *fileinfo.Explorer
	thumbs     *thumb.Cache
	store      *thumbstore.Store
	locationID int
	override   bool

	currentPath string
	files       []fileinfo.FilePath
	cursorIndex int

	grid      *widget.GridWrap
	gridView  *ui.KeySink
	pathEntry *ui.TabEntry
	status    *widget.Label

	keyManager *keymanager.KeyManager
	dirWatcher *watcher.Watcher

	loadCancel context.CancelFunc
	loadSeq    int
}

// NewExplorerWindow wires the collaborators and opens path
func NewExplorerWindow(a fyne.App, path string, cfg *config.Config, logger zerolog.Logger) (*ExplorerWindow, error) {
	ids, err := cas.NewCache(constants.CasCacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating content id cache: %w", err)
	}

	store := thumbstore.New(cfg.Explorer.DataPath, logger)
	logger.Info().
		Int("location", cfg.Explorer.LocationID).
		Str("thumbnails", cfg.ThumbnailDir()).
		Msg("thumbnail store")

	registry := loadIcons(cfg.NormalizedIcons(), logger)

	explorer := fileinfo.NewExplorer(&fileinfo.RealFileSystem{}, ids, store, fileinfo.ListOptions{
		ShowHidden:     cfg.Explorer.ShowHiddenFiles,
		IgnorePatterns: cfg.Explorer.IgnorePatterns,
		Sort: fileinfo.SortOptions{
			SortBy:           cfg.Explorer.Sort.SortBy,
			SortOrder:        cfg.Explorer.Sort.SortOrder,
			DirectoriesFirst: cfg.Explorer.Sort.DirectoriesFirst,
		},
	}, logger)

	selector := thumb.NewSelector(store.ForLocation(cfg.Explorer.LocationID), registry)
	thumbs := thumb.NewCache(selector, thumb.WithIconStyle(thumb.IconStyle{MaxWidth: float32(cfg.Explorer.IconMaxWidth)}))

	ew := &ExplorerWindow{
		window:      a.NewWindow(constants.ApplicationTitle),
		logger:      logger.With().Str("component", "window").Logger(),
		config:      cfg,
		explorer:    explorer,
		thumbs:      thumbs,
		store:       store,
		locationID:  cfg.Explorer.LocationID,
		override:    cfg.Explorer.ThumbnailOverride,
		cursorIndex: -1,
		keyManager:  keymanager.NewKeyManager(logger),
	}

	ew.dirWatcher = watcher.New(ew.reload, logger)
	ew.keyManager.PushHandler(keymanager.NewExplorerKeyHandler(ew, logger))

	ew.setupUI()
	ew.LoadDirectory(path)

	return ew, nil
}

// loadIcons builds the icon registry with the configured overrides on top
// of the built-in set. Overrides that fail keep their built-in icon.
func loadIcons(overrides map[string]string, logger zerolog.Logger) *icons.Registry {
	registry := icons.Builtin()
	if errs := registry.LoadOverrides(overrides, logger); len(errs) > 0 {
		logger.Warn().
			Int("failed", len(errs)).
			Int("configured", len(overrides)).
			Msg("some icon overrides were skipped")
	}
	return registry
}

func (ew *ExplorerWindow) setupUI() {
	ew.pathEntry = ui.NewTabEntry()
	ew.pathEntry.SetText(ew.currentPath)
	ew.pathEntry.OnSubmitted = ew.navigateToPath
	ew.pathEntry.OnCancel = func() {
		ew.pathEntry.SetText(ew.currentPath)
		ew.focusGrid()
	}

	cellSize := float32(ew.config.Explorer.CellSize)
	ew.grid = widget.NewGridWrap(
		func() int { return len(ew.files) },
		func() fyne.CanvasObject {
			return ui.NewThumbCell(cellSize, ew.config.Explorer.CursorStyle, ew.onCellTapped, ew.OpenEntry)
		},
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			cell := obj.(*ui.ThumbCell)
			if id < 0 || id >= len(ew.files) {
				return
			}
			entry := ew.files[id]
			cell.Update(id, entry, ew.thumbs.Get(id, entry, ew.locationID, ew.override), id == ew.cursorIndex)
		},
	)

	// Wrap the grid so Tab stays on it and keys reach the KeyManager
	ew.gridView = ui.NewKeySink(ew.grid, ew.keyManager, ui.WithTabCapture(true))

	ew.status = widget.NewLabel("")
	ew.status.Truncation = fyne.TextTruncateEllipsis

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MoveUpIcon(), func() {
			ew.NavigateParent()
			ew.focusGrid()
		}),
		widget.NewToolbarAction(theme.HomeIcon(), func() {
			ew.NavigateHome()
			ew.focusGrid()
		}),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
			ew.reload()
			ew.focusGrid()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), func() {
			ew.ToggleThumbnailOverride()
			ew.focusGrid()
		}),
	)

	content := container.NewBorder(
		container.NewVBox(toolbar, ew.pathEntry),
		ew.status, nil, nil,
		ew.gridView,
	)

	ew.window.SetContent(content)
	ew.window.Resize(fyne.NewSize(float32(ew.config.Window.Width), float32(ew.config.Window.Height)))
	ew.focusGrid()

	// Keys typed while nothing is focused still go to the grid handler
	ew.window.Canvas().SetOnTypedKey(ew.keyManager.HandleTypedKey)
	ew.window.Canvas().SetOnTypedRune(ew.keyManager.HandleTypedRune)

	ew.window.SetCloseIntercept(func() {
		ew.logger.Debug().Str("path", ew.currentPath).Msg("window closing")
		if ew.loadCancel != nil {
			ew.loadCancel()
		}
		ew.dirWatcher.Stop()
		ew.window.Close()
	})
}

func (ew *ExplorerWindow) focusGrid() {
	if ew.gridView != nil {
		ew.window.Canvas().Focus(ew.gridView)
	}
}

func (ew *ExplorerWindow) onCellTapped(index int) {
	ew.SetCursorByIndex(index)
	ew.RefreshCursor()
	ew.focusGrid()
}

// GetCurrentCursorIndex returns the cursor position in the grid, -1 if none
func (ew *ExplorerWindow) GetCurrentCursorIndex() int {
	return ew.cursorIndex
}

// SetCursorByIndex moves the cursor; out of range clears it
func (ew *ExplorerWindow) SetCursorByIndex(index int) {
	if index >= 0 && index < len(ew.files) {
		ew.cursorIndex = index
	} else {
		ew.cursorIndex = -1
	}
}

// RefreshCursor redraws the grid and keeps the cursor in view
func (ew *ExplorerWindow) RefreshCursor() {
	ew.grid.Refresh()
	if ew.cursorIndex >= 0 {
		ew.grid.ScrollTo(ew.cursorIndex)
	}
	ew.updateStatus()
}

// GetFiles returns the entries shown in the grid
func (ew *ExplorerWindow) GetFiles() []fileinfo.FilePath {
	return ew.files
}

// GetColumnCount returns how many cells fit in one grid row
func (ew *ExplorerWindow) GetColumnCount() int {
	return gridColumns(ew.grid.Size().Width, float32(ew.config.Explorer.CellSize), theme.Padding())
}

// GetCurrentPath returns the open directory
func (ew *ExplorerWindow) GetCurrentPath() string {
	return ew.currentPath
}

// LoadDirectory lists path in the background and shows it when done.
// A newer call supersedes any listing still in flight.
func (ew *ExplorerWindow) LoadDirectory(path string) {
	if ew.loadCancel != nil {
		ew.loadCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ew.loadCancel = cancel
	ew.loadSeq++
	seq := ew.loadSeq
	previous := ew.currentPath

	ew.status.SetText("Loading " + path + "...")

	go func() {
		started := time.Now()
		dir, err := ew.explorer.OpenDir(ctx, ew.locationID, path)
		fyne.Do(func() {
			if seq != ew.loadSeq {
				return
			}
			cancel()
			if err != nil {
				ew.logger.Warn().Err(err).Str("path", path).Msg("cannot open directory")
				ew.pathEntry.SetText(ew.currentPath)
				ew.status.SetText(err.Error())
				return
			}
			ew.logger.Debug().
				Str("path", dir.Directory.Path).
				Int("entries", len(dir.Contents)).
				Dur("took", time.Since(started)).
				Msg("directory loaded")
			ew.applyDirectory(dir, previous)
		})
	}()
}

func (ew *ExplorerWindow) applyDirectory(dir fileinfo.DirectoryWithContents, previous string) {
	var cursorName string
	if ew.cursorIndex >= 0 && ew.cursorIndex < len(ew.files) {
		cursorName = ew.files[ew.cursorIndex].Name
	}

	ew.currentPath = dir.Directory.Path
	ew.files = dir.Contents
	ew.thumbs.Reset()
	ew.pathEntry.SetText(ew.currentPath)
	ew.window.SetTitle(fmt.Sprintf("%s - %s", constants.ApplicationTitle, ew.currentPath))

	ew.SetCursorByIndex(cursorAfterLoad(ew.files, ew.currentPath, previous, cursorName))
	ew.RefreshCursor()

	if err := ew.dirWatcher.Start(ew.currentPath, ew.store.LocationDir(ew.locationID)); err != nil {
		ew.logger.Warn().Err(err).Msg("directory watcher not started")
	}
}

// reload re-lists the open directory, keeping the cursor on the same entry
func (ew *ExplorerWindow) reload() {
	if ew.currentPath != "" {
		ew.LoadDirectory(ew.currentPath)
	}
}

// OpenEntry enters a directory or launches a file with its default app
func (ew *ExplorerWindow) OpenEntry(index int) {
	if index < 0 || index >= len(ew.files) {
		return
	}
	entry := ew.files[index]
	if entry.IsDir {
		ew.LoadDirectory(entry.Path)
		return
	}
	if err := fileinfo.OpenWithDefaultApp(entry.Path); err != nil {
		ew.logger.Warn().Err(err).Str("path", entry.Path).Msg("cannot open file")
		ui.ShowOpenError(ew.window, entry.Name, err)
	}
}

// NavigateParent opens the parent of the current directory
func (ew *ExplorerWindow) NavigateParent() {
	if ew.currentPath == "" || fileinfo.IsRoot(ew.currentPath) {
		return
	}
	ew.LoadDirectory(fileinfo.ParentPath(ew.currentPath))
}

// NavigateHome opens the user's home directory
func (ew *ExplorerWindow) NavigateHome() {
	home, err := os.UserHomeDir()
	if err != nil {
		ew.logger.Warn().Err(err).Msg("cannot resolve home directory")
		return
	}
	ew.LoadDirectory(home)
}

// ToggleThumbnailOverride flips whether every file is drawn from its thumbnail source
func (ew *ExplorerWindow) ToggleThumbnailOverride() {
	ew.override = !ew.override
	ew.logger.Debug().Bool("override", ew.override).Msg("thumbnail override toggled")
	ew.thumbs.Reset()
	ew.grid.Refresh()
	ew.updateStatus()
}

func (ew *ExplorerWindow) updateStatus() {
	text := fmt.Sprintf("%d items", len(ew.files))
	if ew.cursorIndex >= 0 && ew.cursorIndex < len(ew.files) {
		entry := ew.files[ew.cursorIndex]
		if entry.IsDir {
			text += fmt.Sprintf("  |  %s/", entry.Name)
		} else {
			text += fmt.Sprintf("  |  %s  %s", entry.Name, fileinfo.FormatFileSize(entry.Size))
		}
	}
	if ew.override {
		text += "  |  thumbnails forced"
	}
	ew.status.SetText(text)
}

// navigateToPath handles path entry validation and navigation
func (ew *ExplorerWindow) navigateToPath(input string) {
	home, err := os.UserHomeDir()
	if err != nil {
		ew.logger.Debug().Err(err).Msg("no home directory for ~ expansion")
	}

	path := fileinfo.ExpandHome(input, home)
	if path == "" {
		ew.pathEntry.SetText(ew.currentPath)
		return
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			ew.logger.Debug().Err(err).Str("path", path).Msg("cannot make path absolute")
			ew.pathEntry.SetText(ew.currentPath)
			return
		}
		path = absPath
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		ew.logger.Debug().Str("path", path).Msg("not a directory")
		ew.pathEntry.SetText(ew.currentPath)
		return
	}

	ew.LoadDirectory(path)
	ew.focusGrid()
}

// gridColumns returns how many cells of edge cell fit in width
func gridColumns(width, cell, padding float32) int {
	if cell <= 0 {
		return 1
	}
	n := int((width + padding) / (cell + padding))
	if n < 1 {
		return 1
	}
	return n
}

// cursorAfterLoad picks the cursor for a freshly listed directory: the
// directory we came up from, else the entry the cursor was on, else the first.
func cursorAfterLoad(files []fileinfo.FilePath, current, previous, cursorName string) int {
	if len(files) == 0 {
		return -1
	}

	want := ""
	switch {
	case previous != "" && previous != current && fileinfo.ParentPath(previous) == current:
		want = filepath.Base(previous)
	case previous == current:
		want = cursorName
	}

	if want != "" {
		for i, f := range files {
			if f.Name == want {
				return i
			}
		}
	}
	return 0
}

// overrides are command line values that win over the config file
type overrides struct {
	locationID int // negative keeps the configured location
	dataPath   string
	thumbs     bool
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(m config.ManagerInterface, o overrides) (*config.Config, error) {
	cfg, err := m.Load()
	if err != nil {
		return nil, err
	}
	if o.locationID >= 0 {
		cfg.Explorer.LocationID = o.locationID
	}
	if o.dataPath != "" {
		cfg.Explorer.DataPath = o.dataPath
	}
	if o.thumbs {
		cfg.Explorer.ThumbnailOverride = true
	}
	return cfg, nil
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func main() {
	var (
		debugMode  bool
		startPath  string
		locationID int
		dataPath   string
		thumbs     bool
	)
	flag.BoolVar(&debugMode, "d", false, "Enable debug mode")
	flag.StringVar(&startPath, "path", "", "Starting directory path")
	flag.IntVar(&locationID, "location", -1, "Location id the directory belongs to")
	flag.StringVar(&dataPath, "data", "", "Data directory holding thumbnails/")
	flag.BoolVar(&thumbs, "thumbs", false, "Show thumbnail sources for every file")
	flag.Parse()

	logger := newLogger(debugMode)

	// If no path specified via flag, check remaining arguments
	if startPath == "" && flag.NArg() > 0 {
		startPath = flag.Arg(0)
	}

	if startPath == "" {
		pwd, err := os.Getwd()
		if err != nil {
			logger.Fatal().Err(err).Msg("error getting current directory")
		}
		startPath = pwd
	} else {
		if info, err := os.Stat(startPath); err != nil {
			logger.Fatal().Err(err).Str("path", startPath).Msg("error accessing path")
		} else if !info.IsDir() {
			logger.Fatal().Str("path", startPath).Msg("path is not a directory")
		}
		if absPath, err := filepath.Abs(startPath); err == nil {
			startPath = absPath
		}
	}

	configManager := config.NewManager(logger)
	cfg, err := loadConfig(configManager, overrides{locationID: locationID, dataPath: dataPath, thumbs: thumbs})
	if err != nil {
		logger.Fatal().Err(err).Str("path", configManager.Path()).Msg("error loading configuration")
	}

	a := app.NewWithID("io.github.sdexplorer")
	a.Settings().SetTheme(customtheme.NewCustomTheme(cfg, logger))

	ew, err := NewExplorerWindow(a, startPath, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create window")
	}
	ew.window.ShowAndRun()
}
