package keymanager

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"

	"sdexplorer/internal/fileinfo"
)

// ExplorerInterface defines what ExplorerKeyHandler needs from the grid window
type ExplorerInterface interface {
	// Cursor management
	GetCurrentCursorIndex() int
	SetCursorByIndex(index int)
	RefreshCursor()

	// Grid contents
	GetFiles() []fileinfo.FilePath
	GetColumnCount() int

	// Navigation
	GetCurrentPath() string
	LoadDirectory(path string)
	OpenEntry(index int)
	NavigateParent()
	NavigateHome()

	// Display
	ToggleThumbnailOverride()
}

// ExplorerKeyHandler drives the thumbnail grid from the keyboard
type ExplorerKeyHandler struct {
	explorer     ExplorerInterface
	shiftPressed bool
	ctrlPressed  bool
	logger       zerolog.Logger
}

// NewExplorerKeyHandler creates a new explorer key handler
func NewExplorerKeyHandler(explorer ExplorerInterface, logger zerolog.Logger) *ExplorerKeyHandler {
	return &ExplorerKeyHandler{
		explorer: explorer,
		logger:   logger.With().Str("handler", "Explorer").Logger(),
	}
}

// GetName returns the name of this handler
func (h *ExplorerKeyHandler) GetName() string {
	return "Explorer"
}

// OnKeyDown tracks modifiers and handles Ctrl shortcuts
func (h *ExplorerKeyHandler) OnKeyDown(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		h.shiftPressed = true
		return true

	case desktop.KeyControlLeft, desktop.KeyControlRight:
		h.ctrlPressed = true
		return true

	case fyne.KeyT:
		// Ctrl+T - toggle thumbnails for every file
		if h.ctrlPressed {
			h.explorer.ToggleThumbnailOverride()
			return true
		}
	}

	return false
}

// OnKeyUp tracks modifier release
func (h *ExplorerKeyHandler) OnKeyUp(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		h.shiftPressed = false
		return true

	case desktop.KeyControlLeft, desktop.KeyControlRight:
		h.ctrlPressed = false
		return true
	}

	return false
}

// OnTypedKey moves the cursor and opens entries
func (h *ExplorerKeyHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeyLeft:
		h.moveCursor(-1)
		return true

	case fyne.KeyRight:
		h.moveCursor(1)
		return true

	case fyne.KeyUp:
		h.moveCursor(-h.columns())
		return true

	case fyne.KeyDown:
		h.moveCursor(h.columns())
		return true

	case fyne.KeyHome:
		h.setCursor(0)
		return true

	case fyne.KeyEnd:
		h.setCursor(len(h.explorer.GetFiles()) - 1)
		return true

	case fyne.KeyReturn, fyne.KeyEnter:
		idx := h.explorer.GetCurrentCursorIndex()
		if idx >= 0 && idx < len(h.explorer.GetFiles()) {
			h.explorer.OpenEntry(idx)
		}
		return true

	case fyne.KeyBackspace:
		h.explorer.NavigateParent()
		return true

	case fyne.KeyPeriod:
		h.explorer.LoadDirectory(h.explorer.GetCurrentPath())
		return true
	}

	return false
}

// OnTypedRune handles '~' (Shift+` on most layouts) to go home
func (h *ExplorerKeyHandler) OnTypedRune(r rune) bool {
	if r == '~' {
		h.explorer.NavigateHome()
		return true
	}
	return false
}

func (h *ExplorerKeyHandler) columns() int {
	if c := h.explorer.GetColumnCount(); c > 0 {
		return c
	}
	return 1
}

func (h *ExplorerKeyHandler) moveCursor(delta int) {
	current := h.explorer.GetCurrentCursorIndex()
	if current < 0 {
		current = 0
		delta = 0
	}
	h.setCursor(current + delta)
}

// setCursor clamps index into the grid and refreshes if it moved
func (h *ExplorerKeyHandler) setCursor(index int) {
	count := len(h.explorer.GetFiles())
	if count == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}
	if index == h.explorer.GetCurrentCursorIndex() {
		return
	}
	h.explorer.SetCursorByIndex(index)
	h.explorer.RefreshCursor()
	h.logger.Debug().Int("cursor", index).Msg("cursor moved")
}
