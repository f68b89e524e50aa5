package inventory

import "sync/atomic"

// Handler observes container mutations so callers can emit the
// fire-and-forget sound-event rows for cooking completion, animal
// death, drinking, filling, and harvesting without every
// move/split/quick-move call site needing to know about sound tables
// directly.
type Handler interface {
	// HandleMove receives the slot-set and slot a move affected. Move,
	// QuickMoveIn, QuickMoveOut and Split do not call it themselves.
	HandleMove(s SlotSet, slot int)
}

// NopHandler implements Handler by doing nothing. WrapHandler substitutes
// it for a nil Handler.
type NopHandler struct{}

// HandleMove implements Handler.
func (NopHandler) HandleMove(SlotSet, int) {}

type handlerWrapper func(SlotSet, Handler) Handler

var handlerWrap atomic.Value

func init() {
	handlerWrap.Store(handlerWrapper(func(_ SlotSet, h Handler) Handler { return h }))
}

// SetHandlerWrap installs a function that wraps handlers assigned to a
// SlotSet, run after a nil Handler is substituted with NopHandler. Tests
// use this to inject a recording Handler without threading one through
// every call site.
func SetHandlerWrap(w func(SlotSet, Handler) Handler) {
	if w == nil {
		handlerWrap.Store(handlerWrapper(func(_ SlotSet, h Handler) Handler { return h }))
		return
	}
	handlerWrap.Store(handlerWrapper(w))
}

// WrapHandler applies the installed wrapper to h for s, substituting
// NopHandler if h is nil.
func WrapHandler(s SlotSet, h Handler) Handler {
	if h == nil {
		h = NopHandler{}
	}
	return handlerWrap.Load().(handlerWrapper)(s, h)
}
