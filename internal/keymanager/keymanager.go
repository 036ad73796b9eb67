package keymanager

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

// KeyHandler defines the interface for handling keyboard events
type KeyHandler interface {
	// OnKeyDown handles key press events
	OnKeyDown(ev *fyne.KeyEvent) bool // returns true if handled

	// OnKeyUp handles key release events
	OnKeyUp(ev *fyne.KeyEvent) bool // returns true if handled

	// OnTypedKey handles typed key events
	OnTypedKey(ev *fyne.KeyEvent) bool // returns true if handled

	// OnTypedRune handles typed characters
	OnTypedRune(r rune) bool // returns true if handled

	// GetName returns a descriptive name for this handler (for debugging)
	GetName() string
}

// KeyManager routes keyboard events to the handler on top of a stack
type KeyManager struct {
	handlers []KeyHandler
	mutex    sync.RWMutex
	logger   zerolog.Logger
}

// NewKeyManager creates a new KeyManager instance
func NewKeyManager(logger zerolog.Logger) *KeyManager {
	return &KeyManager{
		handlers: make([]KeyHandler, 0),
		logger:   logger.With().Str("component", "keymanager").Logger(),
	}
}

// PushHandler adds a new key handler to the top of the stack
func (km *KeyManager) PushHandler(handler KeyHandler) {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	km.handlers = append(km.handlers, handler)
	km.logger.Debug().Str("handler", handler.GetName()).Int("depth", len(km.handlers)).Msg("pushed handler")
}

// PopHandler removes the top key handler from the stack
func (km *KeyManager) PopHandler() KeyHandler {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	if len(km.handlers) == 0 {
		km.logger.Debug().Msg("pop from empty handler stack")
		return nil
	}

	handler := km.handlers[len(km.handlers)-1]
	km.handlers = km.handlers[:len(km.handlers)-1]

	km.logger.Debug().Str("handler", handler.GetName()).Int("depth", len(km.handlers)).Msg("popped handler")
	return handler
}

// GetCurrentHandler returns the top handler without removing it
func (km *KeyManager) GetCurrentHandler() KeyHandler {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	if len(km.handlers) == 0 {
		return nil
	}
	return km.handlers[len(km.handlers)-1]
}

// HandleKeyDown routes key down events to the current top handler
func (km *KeyManager) HandleKeyDown(ev *fyne.KeyEvent) {
	km.dispatch("KeyDown", func(h KeyHandler) bool { return h.OnKeyDown(ev) })
}

// HandleKeyUp routes key up events to the current top handler
func (km *KeyManager) HandleKeyUp(ev *fyne.KeyEvent) {
	km.dispatch("KeyUp", func(h KeyHandler) bool { return h.OnKeyUp(ev) })
}

// HandleTypedKey routes typed key events to the current top handler
func (km *KeyManager) HandleTypedKey(ev *fyne.KeyEvent) {
	km.dispatch("TypedKey", func(h KeyHandler) bool { return h.OnTypedKey(ev) })
}

// HandleTypedRune routes typed characters to the current top handler
func (km *KeyManager) HandleTypedRune(r rune) {
	km.dispatch("TypedRune", func(h KeyHandler) bool { return h.OnTypedRune(r) })
}

func (km *KeyManager) dispatch(kind string, call func(KeyHandler) bool) {
	currentHandler := km.GetCurrentHandler()
	if currentHandler == nil {
		km.logger.Debug().Str("event", kind).Msg("no handler available")
		return
	}
	handled := call(currentHandler)
	km.logger.Debug().Str("event", kind).Str("handler", currentHandler.GetName()).Bool("handled", handled).Send()
}

// GetStackSize returns the current number of handlers in the stack
func (km *KeyManager) GetStackSize() int {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	return len(km.handlers)
}

// ListHandlers returns the names of all handlers in the stack (for debugging)
func (km *KeyManager) ListHandlers() []string {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	names := make([]string, len(km.handlers))
	for i, handler := range km.handlers {
		names[i] = handler.GetName()
	}
	return names
}
