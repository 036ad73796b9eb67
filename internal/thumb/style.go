package thumb

import (
	"fyne.io/fyne/v2"

	"sdexplorer/internal/constants"
)

// IconStyle sizes an extension icon inside its cell
type IconStyle struct {
	MaxWidth   float32   // 0 means uncapped
	FillWidth  bool      // stretch to the cell width (up to MaxWidth)
	FillHeight bool      // stretch to the cell height
	MinSize    fyne.Size // smallest size the icon asks for
}

// DefaultIconStyle is applied to every icon before caller styles
func DefaultIconStyle() IconStyle {
	return IconStyle{
		MaxWidth:   constants.DefaultIconMaxWidth,
		FillWidth:  true,
		FillHeight: true,
	}
}

// Merge layers over on top of s. Non-zero sizes in over replace those in s;
// fill flags accumulate.
func (s IconStyle) Merge(over IconStyle) IconStyle {
	out := s
	if over.MaxWidth > 0 {
		out.MaxWidth = over.MaxWidth
	}
	if over.MinSize.Width > 0 || over.MinSize.Height > 0 {
		out.MinSize = over.MinSize
	}
	out.FillWidth = out.FillWidth || over.FillWidth
	out.FillHeight = out.FillHeight || over.FillHeight
	return out
}

type options struct {
	iconStyle IconStyle
}

// Option customizes a single Render call
type Option func(*options)

// WithIconStyle merges style over the default icon sizing
func WithIconStyle(style IconStyle) Option {
	return func(o *options) { o.iconStyle = o.iconStyle.Merge(style) }
}

// iconLayout caps the child width and optionally stretches it, centering
// whatever space is left.
type iconLayout struct {
	style IconStyle
}

func (l *iconLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		minSize := o.MinSize()

		w := minSize.Width
		if l.style.FillWidth {
			w = size.Width
		}
		if l.style.MaxWidth > 0 && w > l.style.MaxWidth {
			w = l.style.MaxWidth
		}
		if w > size.Width {
			w = size.Width
		}

		h := minSize.Height
		if l.style.FillHeight || h > size.Height {
			h = size.Height
		}

		o.Resize(fyne.NewSize(w, h))
		o.Move(fyne.NewPos((size.Width-w)/2, (size.Height-h)/2))
	}
}

func (l *iconLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var out fyne.Size
	for _, o := range objects {
		out = out.Max(o.MinSize())
	}
	if l.style.MaxWidth > 0 && out.Width > l.style.MaxWidth {
		out.Width = l.style.MaxWidth
	}
	return out
}
