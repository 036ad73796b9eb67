package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdexplorer/internal/config"
	"sdexplorer/internal/fileinfo"
)

func borderCursor() config.CursorStyleConfig {
	return config.CursorStyleConfig{Type: "border", Thickness: 2, Color: [4]uint8{255, 255, 255, 255}}
}

func TestThumbCellTaps(t *testing.T) {
	test.NewTempApp(t)

	var tapped, opened []int
	cell := NewThumbCell(120, borderCursor(),
		func(i int) { tapped = append(tapped, i) },
		func(i int) { opened = append(opened, i) },
	)

	// Unbound cells ignore taps
	test.Tap(cell)
	assert.Empty(t, tapped)

	cell.Update(3, fileinfo.FilePath{Name: "photo.png"}, nil, false)
	test.Tap(cell)
	test.DoubleTap(cell)

	assert.Equal(t, []int{3}, tapped)
	assert.Equal(t, []int{3}, opened)
}

func TestThumbCellUpdate(t *testing.T) {
	test.NewTempApp(t)

	cell := NewThumbCell(120, borderCursor(), nil, nil)
	w := test.NewWindow(cell)
	defer w.Close()
	w.Resize(fyne.NewSize(200, 200))

	thumb := canvas.NewRectangle(color.Transparent)
	cell.Update(1, fileinfo.FilePath{Name: "notes.txt"}, thumb, false)

	assert.Equal(t, 1, cell.Index())
	assert.Equal(t, "notes.txt", cell.Entry().Name)
	assert.Equal(t, "notes.txt", cell.Label().Text)
	require.Len(t, cell.thumbHolder.Objects, 1)
	assert.Same(t, thumb, cell.thumbHolder.Objects[0])
	assert.Empty(t, cell.cursorLayer.Objects)

	cell.SetSelected(true)
	assert.True(t, cell.Selected())
	assert.Len(t, cell.cursorLayer.Objects, 1)

	cell.Update(2, fileinfo.FilePath{Name: "Albums", IsDir: true}, nil, false)
	assert.Empty(t, cell.thumbHolder.Objects)
	assert.Empty(t, cell.cursorLayer.Objects)
}

func TestThumbCellMinSize(t *testing.T) {
	test.NewTempApp(t)

	cell := NewThumbCell(10, borderCursor(), nil, nil)
	assert.Equal(t, fyne.NewSize(64, 64), cell.MinSize())

	cell = NewThumbCell(150, borderCursor(), nil, nil)
	assert.Equal(t, fyne.NewSize(150, 150), cell.MinSize())
}
