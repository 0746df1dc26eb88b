package textstore

// ColorMode distinguishes how a ColorSpec's value should be interpreted.
type ColorMode uint8

const (
	// ColorModeIndexed treats Index as an 8/256-palette index.
	ColorModeIndexed ColorMode = iota
	// ColorModeRGB treats R, G, B as a 24-bit true-color value.
	ColorModeRGB
)

// ColorSpec is an optional color value: either an indexed palette entry or
// a 24-bit RGB triple. The zero value means "unset".
type ColorSpec struct {
	Set   bool
	Mode  ColorMode
	Index uint8
	R, G, B uint8
}

// IndexedColor builds a ColorSpec for an 8/256-palette index.
func IndexedColor(index uint8) ColorSpec {
	return ColorSpec{Set: true, Mode: ColorModeIndexed, Index: index}
}

// RGBColor builds a ColorSpec for a 24-bit true color.
func RGBColor(r, g, b uint8) ColorSpec {
	return ColorSpec{Set: true, Mode: ColorModeRGB, R: r, G: g, B: b}
}

// ColorProperty attaches an optional foreground and background color to a
// span of text.
type ColorProperty struct {
	Fg ColorSpec
	Bg ColorSpec
}

// UserProperty carries opaque consumer-defined data attached to a span
// (e.g. a syntax token kind, a diagnostic severity).
type UserProperty struct {
	Data any
}

// Property is either a ColorProperty or a UserProperty. Exactly one of the
// two fields should be non-nil/meaningful; Kind disambiguates.
type PropertyKind uint8

const (
	PropertyKindColor PropertyKind = iota
	PropertyKindUser
)

// Property is the value half of a text-property span.
type Property struct {
	Kind  PropertyKind
	Color ColorProperty
	User  UserProperty
}

// NewColorProperty wraps a ColorProperty as a Property.
func NewColorProperty(c ColorProperty) Property {
	return Property{Kind: PropertyKindColor, Color: c}
}

// NewUserProperty wraps opaque data as a Property.
func NewUserProperty(data any) Property {
	return Property{Kind: PropertyKindUser, User: UserProperty{Data: data}}
}

// Span is an unordered (begin, end, property) text-property record. Spans
// may overlap arbitrarily; queries return every span containing a
// location.
type Span struct {
	Begin    Location
	End      Location
	Property Property
}

// Contains reports whether loc falls within [Begin, End) for this span.
func (s Span) Contains(loc Location) bool {
	return Region{Begin: s.Begin, End: s.End}.ContainsLocation(loc)
}
