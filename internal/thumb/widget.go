package thumb

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sdexplorer/internal/constants"
	"sdexplorer/internal/fileinfo"
)

// Selector renders entries using the host's thumbnail resolver and icon registry.
// It keeps no per-entry state; Render may be called from any goroutine that
// is allowed to build canvas objects.
type Selector struct {
	resolver Resolver
	registry Registry
}

// NewSelector creates a Selector. A nil registry never matches an extension.
func NewSelector(resolver Resolver, registry Registry) *Selector {
	return &Selector{resolver: resolver, registry: registry}
}

// Choose reports which visual Render would produce
func (s *Selector) Choose(entry fileinfo.FilePath, override bool) Kind {
	return Choose(entry, override, s.registry)
}

// Render builds the visual for entry. The location id is carried on the
// result for the caller; it does not influence the choice.
func (s *Selector) Render(entry fileinfo.FilePath, locationID int, override bool, opts ...Option) *FileThumb {
	o := options{iconStyle: DefaultIconStyle()}
	for _, opt := range opts {
		opt(&o)
	}

	ft := &FileThumb{
		kind:       Choose(entry, override, s.registry),
		locationID: locationID,
	}

	switch ft.kind {
	case KindFolder:
		ft.image = canvas.NewImageFromResource(theme.FolderIcon())
		ft.image.FillMode = canvas.ImageFillContain
		ft.image.SetMinSize(fyne.NewSquareSize(constants.FolderGlyphSize))
		ft.content = container.NewCenter(ft.image)

	case KindThumbnail:
		if s.resolver != nil {
			ft.source = s.resolver.ThumbnailURL(entry.File.CasID)
		}
		ft.image = thumbnailImage(ft.source)
		ft.content = ft.image

	case KindIcon:
		res, _ := s.registry.Lookup(entry.Extension)
		ft.style = o.iconStyle
		ft.image = canvas.NewImageFromResource(res)
		ft.image.FillMode = canvas.ImageFillContain
		ft.image.SetMinSize(ft.style.MinSize)
		ft.content = container.New(&iconLayout{style: ft.style}, ft.image)

	default:
		ft.content = container.NewWithoutLayout()
	}

	ft.ExtendBaseWidget(ft)
	return ft
}

func thumbnailImage(source string) *canvas.Image {
	img := &canvas.Image{
		FillMode:  canvas.ImageFillContain,
		ScaleMode: canvas.ImageScaleSmooth,
	}
	if source == "" {
		return img
	}
	uri, err := storage.ParseURI(source)
	if err != nil {
		return img
	}
	loaded := canvas.NewImageFromURI(uri)
	loaded.FillMode = img.FillMode
	loaded.ScaleMode = img.ScaleMode
	return loaded
}

// FileThumb is the rendered visual for one entry
type FileThumb struct {
	widget.BaseWidget

	kind       Kind
	locationID int
	source     string
	style      IconStyle
	image      *canvas.Image
	content    fyne.CanvasObject
}

// Kind returns which of the four visuals was chosen
func (t *FileThumb) Kind() Kind { return t.kind }

// LocationID returns the location id given to Render
func (t *FileThumb) LocationID() int { return t.locationID }

// Source returns the resolved thumbnail URL; empty unless Kind is KindThumbnail
func (t *FileThumb) Source() string { return t.source }

// Style returns the merged icon style; zero unless Kind is KindIcon
func (t *FileThumb) Style() IconStyle { return t.style }

// Image returns the drawn image, or nil for the empty placeholder
func (t *FileThumb) Image() *canvas.Image { return t.image }

// Content returns the root canvas object
func (t *FileThumb) Content() fyne.CanvasObject { return t.content }

// CreateRenderer implements fyne.Widget
func (t *FileThumb) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}
