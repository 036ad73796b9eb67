package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sdexplorer/internal/config"
	"sdexplorer/internal/constants"
	"sdexplorer/internal/fileinfo"
)

// ThumbCell is one grid cell: the selector output above the entry name.
// Cells are recycled by the grid, so all per-entry state arrives through Update.
type ThumbCell struct {
	widget.BaseWidget

	index    int
	entry    fileinfo.FilePath
	selected bool
	cellSize float32

	thumbHolder *fyne.Container
	label       *widget.Label
	cursorLayer *fyne.Container

	cursorRenderer CursorRenderer
	cursorStyle    config.CursorStyleConfig

	onTapped       func(index int)
	onDoubleTapped func(index int)
}

// NewThumbCell creates an empty cell of the given edge length
func NewThumbCell(cellSize float32, cursorStyle config.CursorStyleConfig, onTapped, onDoubleTapped func(int)) *ThumbCell {
	if cellSize < constants.MinCellSize {
		cellSize = constants.MinCellSize
	}

	label := widget.NewLabel("")
	label.Alignment = fyne.TextAlignCenter
	label.Truncation = fyne.TextTruncateEllipsis

	c := &ThumbCell{
		index:          -1,
		cellSize:       cellSize,
		thumbHolder:    container.NewStack(),
		label:          label,
		cursorLayer:    container.NewWithoutLayout(),
		cursorRenderer: NewCursorRenderer(cursorStyle),
		cursorStyle:    cursorStyle,
		onTapped:       onTapped,
		onDoubleTapped: onDoubleTapped,
	}
	c.ExtendBaseWidget(c)
	return c
}

// Update binds the cell to a grid entry and its rendered thumbnail
func (c *ThumbCell) Update(index int, entry fileinfo.FilePath, thumb fyne.CanvasObject, selected bool) {
	c.index = index
	c.entry = entry
	c.selected = selected

	c.label.SetText(entry.Name)
	if thumb != nil {
		c.thumbHolder.Objects = []fyne.CanvasObject{thumb}
	} else {
		c.thumbHolder.Objects = nil
	}
	c.thumbHolder.Refresh()
	c.Refresh()
}

// SetSelected toggles the cursor highlight
func (c *ThumbCell) SetSelected(selected bool) {
	if c.selected == selected {
		return
	}
	c.selected = selected
	c.Refresh()
}

// Index returns the grid index the cell currently shows
func (c *ThumbCell) Index() int { return c.index }

// Entry returns the entry the cell currently shows
func (c *ThumbCell) Entry() fileinfo.FilePath { return c.entry }

// Selected reports whether the cursor is on this cell
func (c *ThumbCell) Selected() bool { return c.selected }

// Label returns the name label
func (c *ThumbCell) Label() *widget.Label { return c.label }

// Tapped moves the cursor onto this cell
func (c *ThumbCell) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil && c.index >= 0 {
		c.onTapped(c.index)
	}
}

// DoubleTapped opens the entry
func (c *ThumbCell) DoubleTapped(_ *fyne.PointEvent) {
	if c.onDoubleTapped != nil && c.index >= 0 {
		c.onDoubleTapped(c.index)
	}
}

// CreateRenderer creates the widget renderer
func (c *ThumbCell) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, c.label, nil, nil, c.thumbHolder)
	return &thumbCellRenderer{cell: c, content: content}
}

func (c *ThumbCell) layoutCursor(size fyne.Size) {
	if c.selected && !size.IsZero() {
		c.cursorLayer.Objects = []fyne.CanvasObject{
			c.cursorRenderer.RenderCursor(size, c.cursorStyle),
		}
	} else {
		c.cursorLayer.Objects = nil
	}
	c.cursorLayer.Resize(size)
	c.cursorLayer.Refresh()
}

type thumbCellRenderer struct {
	cell    *ThumbCell
	content *fyne.Container
}

func (r *thumbCellRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
	r.cell.layoutCursor(size)
}

func (r *thumbCellRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.cell.cellSize, r.cell.cellSize)
}

func (r *thumbCellRenderer) Refresh() {
	r.content.Refresh()
	r.cell.layoutCursor(r.cell.Size())
}

func (r *thumbCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content, r.cell.cursorLayer}
}

func (r *thumbCellRenderer) Destroy() {}
