package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ShowOpenError tells the user that an entry could not be launched.
func ShowOpenError(parent fyne.Window, name string, err error) {
	dialog.NewError(fmt.Errorf("cannot open %s: %w", name, err), parent).Show()
}
