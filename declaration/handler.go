package declaration

import "cssfold/properties"

// Handler routes the declarations of one list (normal or important) to the
// group handlers and collects the folded output.
type Handler struct {
	handlers []properties.PropertyHandler
	decls    properties.DeclarationList
}

// NewHandler returns a handler with the font, margin and padding groups
// registered in that order.
func NewHandler() *Handler {
	return NewHandlerWith(
		properties.NewFontHandler(),
		properties.NewMarginHandler(),
		properties.NewPaddingHandler(),
	)
}

// NewHandlerWith registers handlers in the given order.
func NewHandlerWith(handlers ...properties.PropertyHandler) *Handler {
	return &Handler{handlers: handlers}
}

// HandleProperty offers p to every group handler in registration order; the
// first one to accept it wins. Unclaimed properties pass through unchanged.
func (h *Handler) HandleProperty(p properties.Property) {
	for _, ph := range h.handlers {
		if ph.HandleProperty(p, &h.decls) {
			return
		}
	}
	h.decls.Push(p)
}

// Finalize flushes the group handlers in registration order and returns the
// output list. The handler is empty afterwards and may serve another block.
func (h *Handler) Finalize() properties.DeclarationList {
	for _, ph := range h.handlers {
		ph.Finalize(&h.decls)
	}
	out := h.decls
	h.decls = nil
	return out
}
