package properties

import (
	"slices"

	"cssfold/values"
)

// LengthPercentageOrAuto is a margin side value.
type LengthPercentageOrAuto struct {
	Auto  bool
	Value values.LengthPercentage // nil when Auto
}

// Auto is the `auto` margin.
var Auto = LengthPercentageOrAuto{Auto: true}

// ParseLengthPercentageOrAuto parses `auto` or a length or percentage.
func ParseLengthPercentageOrAuto(c *values.Cursor) (LengthPercentageOrAuto, error) {
	if c.Try(func(c *values.Cursor) error { return c.ExpectIdentMatching("auto") }) == nil {
		return Auto, nil
	}
	v, err := values.ParseLengthPercentage(c)
	if err != nil {
		return LengthPercentageOrAuto{}, err
	}
	return LengthPercentageOrAuto{Value: v}, nil
}

// ToCSS implements values.Value.
func (v LengthPercentageOrAuto) ToCSS(p *values.Printer) error {
	if v.Auto || v.Value == nil {
		return p.WriteString("auto")
	}
	return v.Value.ToCSS(p)
}

// ParseNonNegativeLengthPercentage rejects negative lengths and percentages.
func ParseNonNegativeLengthPercentage(c *values.Cursor) (values.LengthPercentage, error) {
	loc := c.Location()
	t, _ := c.Peek()
	v, err := values.ParseLengthPercentage(c)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case values.Length:
		if v.Value < 0 {
			return nil, values.UnexpectedTokenError(t, loc)
		}
	case values.Percentage:
		if v < 0 {
			return nil, values.UnexpectedTokenError(t, loc)
		}
	}
	return v, nil
}

// Side is a comparable value usable in a Rect.
type Side interface {
	values.Value
	comparable
}

// Rect holds the four sides of a box in top, right, bottom, left order.
type Rect[V Side] struct {
	Top, Right, Bottom, Left V
}

// ParseRect parses one to four side values with the usual expansion rules.
func ParseRect[V Side](c *values.Cursor, side func(*values.Cursor) (V, error)) (Rect[V], error) {
	top, err := side(c)
	if err != nil {
		return Rect[V]{}, err
	}
	right, err := values.TryParse(c, side)
	if err != nil {
		return Rect[V]{top, top, top, top}, nil
	}
	bottom, err := values.TryParse(c, side)
	if err != nil {
		return Rect[V]{top, right, top, right}, nil
	}
	left, err := values.TryParse(c, side)
	if err != nil {
		return Rect[V]{top, right, bottom, right}, nil
	}
	return Rect[V]{top, right, bottom, left}, nil
}

// ToCSS implements values.Value, writing the shortest equivalent form. Sides
// are compared by their printed text, so 0px and 0 collapse when minifying.
func (r Rect[V]) ToCSS(p *values.Printer) error {
	var text [4]string
	for i, v := range [4]V{r.Top, r.Right, r.Bottom, r.Left} {
		text[i] = values.ToString(v, p.Minify)
	}
	n := 4
	if text[3] == text[1] {
		n = 3
		if text[2] == text[0] {
			n = 2
			if text[1] == text[0] {
				n = 1
			}
		}
	}
	for i, s := range text[:n] {
		if i > 0 {
			p.WriteByte(' ')
		}
		p.WriteString(s)
	}
	return p.Err()
}

type boxState[V Side] struct {
	sides [4]Slot[V]
}

// boxGroup builds the group of a box shorthand whose longhands are listed in
// top, right, bottom, left order.
func boxGroup[V Side](tag GroupTag, shorthand PropertyID) Group[boxState[V]] {
	longhands := shorthand.Longhands()
	return Group[boxState[V]]{
		Tag: tag,
		Store: func(s *boxState[V], p Property) bool {
			if p.ID() == shorthand {
				r, ok := valueOf[Rect[V]](p)
				if !ok {
					return false
				}
				for i, v := range [4]V{r.Top, r.Right, r.Bottom, r.Left} {
					s.sides[i].Set(v)
				}
				return true
			}
			i := slices.Index(longhands, p.ID())
			v, ok := valueOf[V](p)
			if i < 0 || !ok {
				return false
			}
			s.sides[i].Set(v)
			return true
		},
		Fold: func(s boxState[V], dest *DeclarationList) {
			top, t := s.sides[0].Get()
			right, r := s.sides[1].Get()
			bottom, b := s.sides[2].Get()
			left, l := s.sides[3].Get()
			if t && r && b && l {
				dest.Push(NewTyped(shorthand, Rect[V]{top, right, bottom, left}))
				return
			}
			for i, id := range longhands {
				pushSet(dest, id, s.sides[i])
			}
		},
	}
}

// MarginGroup folds margin and its sides.
var MarginGroup = boxGroup[LengthPercentageOrAuto](GroupMargin, PropMargin)

// PaddingGroup folds padding and its sides.
var PaddingGroup = boxGroup[values.LengthPercentage](GroupPadding, PropPadding)

// NewMarginHandler returns an empty handler for the margin group.
func NewMarginHandler() *GroupHandler[boxState[LengthPercentageOrAuto]] {
	return NewGroupHandler(MarginGroup)
}

// NewPaddingHandler returns an empty handler for the padding group.
func NewPaddingHandler() *GroupHandler[boxState[values.LengthPercentage]] {
	return NewGroupHandler(PaddingGroup)
}
