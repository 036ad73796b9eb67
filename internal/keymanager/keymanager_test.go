package keymanager

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdexplorer/internal/fileinfo"
)

// recordingHandler remembers which events reached it
type recordingHandler struct {
	name   string
	events []string
}

func (r *recordingHandler) OnKeyDown(ev *fyne.KeyEvent) bool {
	r.events = append(r.events, "down:"+string(ev.Name))
	return true
}
func (r *recordingHandler) OnKeyUp(ev *fyne.KeyEvent) bool {
	r.events = append(r.events, "up:"+string(ev.Name))
	return true
}
func (r *recordingHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	r.events = append(r.events, "typed:"+string(ev.Name))
	return true
}
func (r *recordingHandler) OnTypedRune(ru rune) bool {
	r.events = append(r.events, "rune:"+string(ru))
	return true
}
func (r *recordingHandler) GetName() string { return r.name }

func TestKeyManagerStack(t *testing.T) {
	km := NewKeyManager(zerolog.Nop())
	assert.Nil(t, km.PopHandler())
	assert.Nil(t, km.GetCurrentHandler())

	bottom := &recordingHandler{name: "bottom"}
	top := &recordingHandler{name: "top"}
	km.PushHandler(bottom)
	km.PushHandler(top)

	assert.Equal(t, 2, km.GetStackSize())
	assert.Equal(t, []string{"bottom", "top"}, km.ListHandlers())

	km.HandleTypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	km.HandleTypedRune('~')
	assert.Equal(t, []string{"typed:Down", "rune:~"}, top.events)
	assert.Empty(t, bottom.events)

	assert.Same(t, top, km.PopHandler())
	km.HandleKeyDown(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	km.HandleKeyUp(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	assert.Equal(t, []string{"down:LeftShift", "up:LeftShift"}, bottom.events)
}

func TestKeyManagerWithoutHandlers(t *testing.T) {
	km := NewKeyManager(zerolog.Nop())
	// Must not panic
	km.HandleKeyDown(&fyne.KeyEvent{Name: fyne.KeyA})
	km.HandleKeyUp(&fyne.KeyEvent{Name: fyne.KeyA})
	km.HandleTypedKey(&fyne.KeyEvent{Name: fyne.KeyA})
	km.HandleTypedRune('a')
}

// mockExplorer is a grid of files with a cursor
type mockExplorer struct {
	files     []fileinfo.FilePath
	cursor    int
	columns   int
	path      string
	loaded    []string
	opened    []int
	refreshes int
	parent    int
	home      int
	toggles   int
}

func (m *mockExplorer) GetCurrentCursorIndex() int    { return m.cursor }
func (m *mockExplorer) SetCursorByIndex(i int)        { m.cursor = i }
func (m *mockExplorer) RefreshCursor()                { m.refreshes++ }
func (m *mockExplorer) GetFiles() []fileinfo.FilePath { return m.files }
func (m *mockExplorer) GetColumnCount() int           { return m.columns }
func (m *mockExplorer) GetCurrentPath() string        { return m.path }
func (m *mockExplorer) LoadDirectory(path string)     { m.loaded = append(m.loaded, path) }
func (m *mockExplorer) OpenEntry(index int)           { m.opened = append(m.opened, index) }
func (m *mockExplorer) NavigateParent()               { m.parent++ }
func (m *mockExplorer) NavigateHome()                 { m.home++ }
func (m *mockExplorer) ToggleThumbnailOverride()      { m.toggles++ }

func newMockExplorer(n, columns int) *mockExplorer {
	files := make([]fileinfo.FilePath, n)
	for i := range files {
		files[i] = fileinfo.FilePath{Name: string(rune('a' + i))}
	}
	return &mockExplorer{files: files, columns: columns, path: "/photos"}
}

func typed(h *ExplorerKeyHandler, name fyne.KeyName) bool {
	return h.OnTypedKey(&fyne.KeyEvent{Name: name})
}

func TestExplorerHandlerCursorMovement(t *testing.T) {
	m := newMockExplorer(10, 4)
	h := NewExplorerKeyHandler(m, zerolog.Nop())
	assert.Equal(t, "Explorer", h.GetName())

	testCases := []struct {
		key      fyne.KeyName
		expected int
	}{
		{fyne.KeyRight, 1},
		{fyne.KeyDown, 5},
		{fyne.KeyDown, 9},
		{fyne.KeyDown, 9}, // clamped to last
		{fyne.KeyLeft, 8},
		{fyne.KeyUp, 4},
		{fyne.KeyUp, 0},
		{fyne.KeyUp, 0}, // clamped to first
		{fyne.KeyEnd, 9},
		{fyne.KeyHome, 0},
	}

	for _, tc := range testCases {
		require.True(t, typed(h, tc.key))
		assert.Equal(t, tc.expected, m.cursor, "after %s", tc.key)
	}
	assert.Equal(t, 8, m.refreshes, "no refresh when the cursor does not move")
}

func TestExplorerHandlerNoCursor(t *testing.T) {
	m := newMockExplorer(3, 0)
	m.cursor = -1
	h := NewExplorerKeyHandler(m, zerolog.Nop())

	typed(h, fyne.KeyDown)
	assert.Equal(t, 0, m.cursor, "first move lands on the first entry")

	typed(h, fyne.KeyDown)
	assert.Equal(t, 1, m.cursor, "zero columns step by one")

	empty := newMockExplorer(0, 4)
	empty.cursor = -1
	h = NewExplorerKeyHandler(empty, zerolog.Nop())
	typed(h, fyne.KeyDown)
	assert.Equal(t, -1, empty.cursor)
	typed(h, fyne.KeyReturn)
	assert.Empty(t, empty.opened)
}

func TestExplorerHandlerActions(t *testing.T) {
	m := newMockExplorer(3, 3)
	m.cursor = 2
	h := NewExplorerKeyHandler(m, zerolog.Nop())

	assert.True(t, typed(h, fyne.KeyReturn))
	assert.Equal(t, []int{2}, m.opened)

	assert.True(t, typed(h, fyne.KeyBackspace))
	assert.Equal(t, 1, m.parent)

	assert.True(t, typed(h, fyne.KeyPeriod))
	assert.Equal(t, []string{"/photos"}, m.loaded)

	assert.True(t, h.OnTypedRune('~'))
	assert.False(t, h.OnTypedRune('x'))
	assert.Equal(t, 1, m.home)

	assert.False(t, typed(h, fyne.KeyF5))
}

func TestExplorerHandlerCtrlT(t *testing.T) {
	m := newMockExplorer(1, 1)
	h := NewExplorerKeyHandler(m, zerolog.Nop())

	assert.False(t, h.OnKeyDown(&fyne.KeyEvent{Name: fyne.KeyT}))
	assert.Equal(t, 0, m.toggles)

	assert.True(t, h.OnKeyDown(&fyne.KeyEvent{Name: desktop.KeyControlLeft}))
	assert.True(t, h.OnKeyDown(&fyne.KeyEvent{Name: fyne.KeyT}))
	assert.Equal(t, 1, m.toggles)

	assert.True(t, h.OnKeyUp(&fyne.KeyEvent{Name: desktop.KeyControlLeft}))
	assert.False(t, h.OnKeyDown(&fyne.KeyEvent{Name: fyne.KeyT}))
	assert.Equal(t, 1, m.toggles)
	assert.False(t, h.OnKeyUp(&fyne.KeyEvent{Name: fyne.KeyT}))
}
