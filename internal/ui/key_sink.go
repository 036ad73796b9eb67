package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"sdexplorer/internal/keymanager"
)

// KeySink makes any content focusable and feeds its key events to a
// KeyManager. The thumbnail grid sits inside one so arrows and Tab
// never reach the grid's own focus handling.
type KeySink struct {
	widget.BaseWidget
	Content fyne.CanvasObject

	km        *keymanager.KeyManager
	acceptTab bool
	focused   bool
}

// KeySinkOption customizes KeySink behavior.
type KeySinkOption func(*KeySink)

// WithTabCapture toggles Tab capture.
func WithTabCapture(on bool) KeySinkOption { return func(k *KeySink) { k.acceptTab = on } }

// NewKeySink wraps content. Tab is captured unless disabled.
func NewKeySink(content fyne.CanvasObject, km *keymanager.KeyManager, opts ...KeySinkOption) *KeySink {
	k := &KeySink{Content: content, km: km, acceptTab: true}
	for _, o := range opts {
		o(k)
	}
	k.ExtendBaseWidget(k)
	return k
}

// CreateRenderer delegates rendering to the wrapped content.
func (k *KeySink) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(k.Content)
}

func (k *KeySink) FocusGained() { k.focused = true }
func (k *KeySink) FocusLost()   { k.focused = false }

// Focused reports whether the sink currently holds keyboard focus.
func (k *KeySink) Focused() bool { return k.focused }

func (k *KeySink) TypedKey(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleTypedKey(ev)
	}
}

func (k *KeySink) TypedRune(r rune) {
	if k.km != nil {
		k.km.HandleTypedRune(r)
	}
}

// KeyDown implements desktop.Keyable.
func (k *KeySink) KeyDown(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleKeyDown(ev)
	}
}

// KeyUp implements desktop.Keyable.
func (k *KeySink) KeyUp(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleKeyUp(ev)
	}
}

// AcceptsTab implements fyne.Tabbable.
func (k *KeySink) AcceptsTab() bool { return k.acceptTab }
