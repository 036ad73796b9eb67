package thumb

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func TestDefaultIconStyle(t *testing.T) {
	s := DefaultIconStyle()
	assert.Equal(t, float32(170), s.MaxWidth)
	assert.True(t, s.FillWidth)
	assert.True(t, s.FillHeight)
	assert.Equal(t, fyne.Size{}, s.MinSize)
}

func TestIconStyleMerge(t *testing.T) {
	base := DefaultIconStyle()

	assert.Equal(t, base, base.Merge(IconStyle{}), "zero style changes nothing")

	merged := base.Merge(IconStyle{MaxWidth: 64, MinSize: fyne.NewSquareSize(32)})
	assert.Equal(t, float32(64), merged.MaxWidth)
	assert.Equal(t, fyne.NewSquareSize(32), merged.MinSize)
	assert.True(t, merged.FillWidth)

	fill := IconStyle{}.Merge(IconStyle{FillHeight: true})
	assert.False(t, fill.FillWidth)
	assert.True(t, fill.FillHeight)
}

func TestIconLayout(t *testing.T) {
	testCases := []struct {
		name    string
		style   IconStyle
		size    fyne.Size
		wantSz  fyne.Size
		wantPos fyne.Position
	}{
		{
			name:    "fill capped by max width",
			style:   IconStyle{MaxWidth: 100, FillWidth: true, FillHeight: true},
			size:    fyne.NewSize(200, 80),
			wantSz:  fyne.NewSize(100, 80),
			wantPos: fyne.NewPos(50, 0),
		},
		{
			name:    "fill below max width",
			style:   IconStyle{MaxWidth: 300, FillWidth: true, FillHeight: true},
			size:    fyne.NewSize(200, 80),
			wantSz:  fyne.NewSize(200, 80),
			wantPos: fyne.NewPos(0, 0),
		},
		{
			name:    "natural size centered",
			style:   IconStyle{},
			size:    fyne.NewSize(200, 80),
			wantSz:  fyne.NewSize(20, 20),
			wantPos: fyne.NewPos(90, 30),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obj := canvas.NewRectangle(nil)
			obj.SetMinSize(fyne.NewSquareSize(20))

			l := &iconLayout{style: tc.style}
			l.Layout([]fyne.CanvasObject{obj}, tc.size)

			assert.Equal(t, tc.wantSz, obj.Size())
			assert.Equal(t, tc.wantPos, obj.Position())
		})
	}
}

func TestIconLayoutMinSize(t *testing.T) {
	obj := canvas.NewRectangle(nil)
	obj.SetMinSize(fyne.NewSize(400, 30))

	l := &iconLayout{style: IconStyle{MaxWidth: 170}}
	assert.Equal(t, fyne.NewSize(170, 30), l.MinSize([]fyne.CanvasObject{obj}))
}
