package properties

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

// PropertyID names every property the engine specializes.
type PropertyID int

const (
	PropUnknown PropertyID = iota

	PropFont
	PropFontFamily
	PropFontSize
	PropFontStyle
	PropFontWeight
	PropFontStretch
	PropFontVariantCaps
	PropLineHeight
	PropVerticalAlign

	PropMargin
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft

	PropPadding
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft

	propCount
)

// GroupTag identifies the handler that owns a property.
type GroupTag int

const (
	GroupNone GroupTag = iota
	GroupFont
	GroupMargin
	GroupPadding
)

type propertyInfo struct {
	name      string
	group     GroupTag
	longhands []PropertyID
}

var propertyInfos = [propCount]propertyInfo{
	PropUnknown: {name: ""},

	PropFont: {name: "font", group: GroupFont, longhands: []PropertyID{
		PropFontFamily, PropFontSize, PropFontStyle, PropFontVariantCaps,
		PropFontWeight, PropFontStretch, PropLineHeight,
	}},
	PropFontFamily:      {name: "font-family", group: GroupFont},
	PropFontSize:        {name: "font-size", group: GroupFont},
	PropFontStyle:       {name: "font-style", group: GroupFont},
	PropFontWeight:      {name: "font-weight", group: GroupFont},
	PropFontStretch:     {name: "font-stretch", group: GroupFont},
	PropFontVariantCaps: {name: "font-variant-caps", group: GroupFont},
	PropLineHeight:      {name: "line-height", group: GroupFont},
	PropVerticalAlign:   {name: "vertical-align"},

	PropMargin: {name: "margin", group: GroupMargin, longhands: []PropertyID{
		PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft,
	}},
	PropMarginTop:    {name: "margin-top", group: GroupMargin},
	PropMarginRight:  {name: "margin-right", group: GroupMargin},
	PropMarginBottom: {name: "margin-bottom", group: GroupMargin},
	PropMarginLeft:   {name: "margin-left", group: GroupMargin},

	PropPadding: {name: "padding", group: GroupPadding, longhands: []PropertyID{
		PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft,
	}},
	PropPaddingTop:    {name: "padding-top", group: GroupPadding},
	PropPaddingRight:  {name: "padding-right", group: GroupPadding},
	PropPaddingBottom: {name: "padding-bottom", group: GroupPadding},
	PropPaddingLeft:   {name: "padding-left", group: GroupPadding},
}

var propertyByName = func() map[string]PropertyID {
	m := make(map[string]PropertyID, len(propertyInfos))
	for id, info := range propertyInfos {
		if info.name != "" {
			m[info.name] = PropertyID(id)
		}
	}
	return m
}()

// LookupPropertyID resolves a property name, ignoring ASCII case. Unknown
// names (including custom properties) map to PropUnknown.
func LookupPropertyID(name string) PropertyID {
	if strings.HasPrefix(name, "--") {
		return PropUnknown
	}
	return propertyByName[string(parse.ToLower([]byte(name)))]
}

func (id PropertyID) info() propertyInfo {
	if id < 0 || id >= propCount {
		return propertyInfos[PropUnknown]
	}
	return propertyInfos[id]
}

// String returns the canonical property name, empty for PropUnknown.
func (id PropertyID) String() string {
	return id.info().name
}

// Group returns the group whose handler folds this property.
func (id PropertyID) Group() GroupTag {
	return id.info().group
}

// IsShorthand reports whether id expands into longhands.
func (id PropertyID) IsShorthand() bool {
	return len(id.info().longhands) > 0
}

// Longhands lists the properties a shorthand sets.
func (id PropertyID) Longhands() []PropertyID {
	return append([]PropertyID(nil), id.info().longhands...)
}
