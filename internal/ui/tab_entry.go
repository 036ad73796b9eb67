package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// TabEntry is the path entry: it keeps Tab instead of moving focus and
// reports Escape through OnCancel.
type TabEntry struct {
	widget.Entry
	OnCancel func()

	acceptTab bool
}

// NewTabEntry creates a new TabEntry with Tab capture enabled.
func NewTabEntry() *TabEntry {
	e := &TabEntry{acceptTab: true}
	e.ExtendBaseWidget(e)
	return e
}

// TypedKey handles Escape and passes everything else to the entry.
func (e *TabEntry) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && e.OnCancel != nil {
		e.OnCancel()
		return
	}
	e.Entry.TypedKey(ev)
}

// AcceptsTab indicates this entry consumes Tab so focus will not move.
func (e *TabEntry) AcceptsTab() bool { return e.acceptTab }

// SetTabCapture toggles Tab capture behavior.
func (e *TabEntry) SetTabCapture(on bool) { e.acceptTab = on }
