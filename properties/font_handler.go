package properties

import (
	"slices"

	"cssfold/values"
)

type fontState struct {
	family      Slot[FontFamilyList]
	size        Slot[FontSize]
	style       Slot[FontStyle]
	weight      Slot[FontWeight]
	stretch     Slot[FontStretch]
	lineHeight  Slot[LineHeight]
	variantCaps Slot[FontVariantCaps]
}

func (s fontState) complete() bool {
	return s.family.IsSet() && s.size.IsSet() && s.style.IsSet() && s.weight.IsSet() &&
		s.stretch.IsSet() && s.lineHeight.IsSet() && s.variantCaps.IsSet()
}

// FontGroup folds font, its longhands and line-height.
var FontGroup = Group[fontState]{
	Tag:   GroupFont,
	Store: storeFont,
	Fold:  foldFont,
}

// NewFontHandler returns an empty handler for the font group.
func NewFontHandler() *GroupHandler[fontState] {
	return NewGroupHandler(FontGroup)
}

func storeFont(s *fontState, p Property) bool {
	switch p.ID() {
	case PropFont:
		f, ok := valueOf[Font](p)
		if !ok {
			return false
		}
		s.family.Set(slices.Clone(f.Family))
		s.size.Set(f.Size)
		s.style.Set(f.Style)
		s.weight.Set(f.Weight)
		s.stretch.Set(f.Stretch)
		s.lineHeight.Set(f.LineHeight)
		s.variantCaps.Set(f.VariantCaps.ToFontVariantCaps())
		return true
	case PropFontFamily:
		v, ok := valueOf[FontFamilyList](p)
		if ok {
			s.family.Set(slices.Clone(v))
		}
		return ok
	case PropFontSize:
		return store(&s.size, p)
	case PropFontStyle:
		return store(&s.style, p)
	case PropFontWeight:
		return store(&s.weight, p)
	case PropFontStretch:
		return store(&s.stretch, p)
	case PropLineHeight:
		return store(&s.lineHeight, p)
	case PropFontVariantCaps:
		return store(&s.variantCaps, p)
	}
	return false
}

// store sets slot from the value of p when it has the slot's type.
func store[V values.Value](slot *Slot[V], p Property) bool {
	v, ok := valueOf[V](p)
	if ok {
		slot.Set(v)
	}
	return ok
}

// foldFont emits the font shorthand when every longhand is known and the
// stretch has a keyword spelling. Variant caps the shorthand cannot express
// are reset to normal inside it and restated right after.
func foldFont(s fontState, dest *DeclarationList) {
	if s.complete() {
		if stretch, ok := s.stretch.value.ToKeyword(); ok {
			caps, css2 := s.variantCaps.value.ToCSS2()
			dest.Push(NewTyped(PropFont, Font{
				Family:      s.family.value,
				Size:        s.size.value,
				Style:       s.style.value,
				Weight:      s.weight.value,
				Stretch:     FontStretch{Keyword: stretch},
				LineHeight:  s.lineHeight.value,
				VariantCaps: caps,
			}))
			if !css2 {
				dest.Push(NewTyped(PropFontVariantCaps, s.variantCaps.value))
			}
			return
		}
	}
	pushSet(dest, PropFontFamily, s.family)
	pushSet(dest, PropFontSize, s.size)
	pushSet(dest, PropFontStyle, s.style)
	pushSet(dest, PropFontVariantCaps, s.variantCaps)
	pushSet(dest, PropFontWeight, s.weight)
	pushSet(dest, PropFontStretch, s.stretch)
	pushSet(dest, PropLineHeight, s.lineHeight)
}
