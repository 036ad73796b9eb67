package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"sdexplorer/internal/config"
	"sdexplorer/internal/constants"
)

// CursorRenderer draws the grid cursor over a cell of the given size
type CursorRenderer interface {
	RenderCursor(bounds fyne.Size, style config.CursorStyleConfig) fyne.CanvasObject
}

func cursorColor(style config.CursorStyleConfig) color.Color {
	return color.NRGBA{R: style.Color[0], G: style.Color[1], B: style.Color[2], A: style.Color[3]}
}

func cursorThickness(style config.CursorStyleConfig) float32 {
	if style.Thickness <= 0 {
		return constants.DefaultCursorThickness
	}
	return float32(style.Thickness)
}

// UnderlineCursorRenderer draws a bar under the entry name
type UnderlineCursorRenderer struct{}

func (r *UnderlineCursorRenderer) RenderCursor(bounds fyne.Size, style config.CursorStyleConfig) fyne.CanvasObject {
	thickness := cursorThickness(style)
	underline := canvas.NewRectangle(cursorColor(style))
	underline.Resize(fyne.NewSize(bounds.Width, thickness))
	underline.Move(fyne.NewPos(0, bounds.Height-thickness))
	return underline
}

// BorderCursorRenderer frames the whole cell
type BorderCursorRenderer struct{}

func (r *BorderCursorRenderer) RenderCursor(bounds fyne.Size, style config.CursorStyleConfig) fyne.CanvasObject {
	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = cursorColor(style)
	frame.StrokeWidth = cursorThickness(style)
	frame.CornerRadius = frame.StrokeWidth * 2
	frame.Resize(bounds)
	return container.NewWithoutLayout(frame)
}

// BackgroundCursorRenderer tints the whole cell
type BackgroundCursorRenderer struct{}

func (r *BackgroundCursorRenderer) RenderCursor(bounds fyne.Size, style config.CursorStyleConfig) fyne.CanvasObject {
	background := canvas.NewRectangle(cursorColor(style))
	background.CornerRadius = cursorThickness(style) * 2
	background.Resize(bounds)
	return background
}

// NewCursorRenderer picks the renderer for style.Type; unknown types get the underline
func NewCursorRenderer(style config.CursorStyleConfig) CursorRenderer {
	switch style.Type {
	case "border":
		return &BorderCursorRenderer{}
	case "background":
		return &BackgroundCursorRenderer{}
	default:
		return &UnderlineCursorRenderer{}
	}
}
