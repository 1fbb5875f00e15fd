package properties

import "cssfold/values"

// DeclarationList is an ordered list of declarations as they will be printed.
type DeclarationList []Property

// Push appends p.
func (l *DeclarationList) Push(p Property) {
	*l = append(*l, p)
}

// PropertyHandler folds the properties of one group. HandleProperty reports
// whether p was consumed; Finalize flushes accumulated state into dest.
type PropertyHandler interface {
	HandleProperty(p Property, dest *DeclarationList) bool
	Finalize(dest *DeclarationList)
}

// Slot holds an optional longhand value.
type Slot[V any] struct {
	value V
	ok    bool
}

// Set stores v.
func (s *Slot[V]) Set(v V) {
	s.value, s.ok = v, true
}

// Get returns the stored value and whether one is present.
func (s Slot[V]) Get() (V, bool) {
	return s.value, s.ok
}

// IsSet reports whether a value is present.
func (s Slot[V]) IsSet() bool {
	return s.ok
}

// Group describes one property group: Store puts a typed property of the
// group into its slots and reports false when the value does not have the
// type of the property, Fold emits the folded declarations of a complete or
// partial state.
type Group[S any] struct {
	Tag   GroupTag
	Store func(s *S, p Property) bool
	Fold  func(s S, dest *DeclarationList)
}

// GroupHandler accumulates the longhands of one group until finalized.
type GroupHandler[S any] struct {
	group  Group[S]
	state  S
	hasAny bool
}

// NewGroupHandler returns an empty handler for g.
func NewGroupHandler[S any](g Group[S]) *GroupHandler[S] {
	return &GroupHandler[S]{group: g}
}

// HandleProperty implements PropertyHandler. Unparsed declarations of the
// group interrupt folding: pending state is flushed first and the raw
// declaration follows it unchanged. A typed value the group cannot store is
// declined after the flush so the caller keeps it in order.
func (h *GroupHandler[S]) HandleProperty(p Property, dest *DeclarationList) bool {
	if h.group.Tag == GroupNone || p.ID().Group() != h.group.Tag {
		return false
	}
	if _, raw := p.(Unparsed); raw {
		h.Finalize(dest)
		dest.Push(p)
		return true
	}
	if !h.group.Store(&h.state, p) {
		h.Finalize(dest)
		return false
	}
	h.hasAny = true
	return true
}

// Finalize implements PropertyHandler.
func (h *GroupHandler[S]) Finalize(dest *DeclarationList) {
	if !h.hasAny {
		return
	}
	h.group.Fold(h.take(), dest)
}

// Pending reports whether the handler holds unflushed values.
func (h *GroupHandler[S]) Pending() bool {
	return h.hasAny
}

// take moves the state out, leaving the handler empty.
func (h *GroupHandler[S]) take() S {
	s := h.state
	var zero S
	h.state, h.hasAny = zero, false
	return s
}

// pushSet appends the value of a set slot as a longhand of id.
func pushSet[V values.Value](dest *DeclarationList, id PropertyID, s Slot[V]) {
	if v, ok := s.Get(); ok {
		dest.Push(NewTyped(id, v))
	}
}
