package dom

import "strconv"

// Property names an inline style property. Only the properties the drag
// machinery touches are defined; everything else about an element's
// appearance belongs to the host driver.
type Property string

const (
	Left     Property = "left"
	Top      Property = "top"
	Width    Property = "width"
	Height   Property = "height"
	Position Property = "position"
	Display  Property = "display"
)

// Values for the Position and Display properties.
const (
	PositionAbsolute = "absolute"
	DisplayNone      = "none"
)

// Style is an element's set of inline property overrides. The zero value is
// ready to use. Properties that are not set defer to the element's layout
// rect (geometry) or the driver's defaults (position, display).
type Style struct {
	props map[Property]string
}

// Set assigns a property value, overwriting any previous value.
func (s *Style) Set(p Property, v string) {
	if s.props == nil {
		s.props = make(map[Property]string)
	}
	s.props[p] = v
}

// SetInt assigns an integer-valued property such as Left or Width.
func (s *Style) SetInt(p Property, v int) {
	s.Set(p, strconv.Itoa(v))
}

// Get returns the property value and whether it is set.
func (s *Style) Get(p Property) (string, bool) {
	v, ok := s.props[p]
	return v, ok
}

// Int returns the property parsed as an integer. The second return is false
// when the property is unset or not numeric.
func (s *Style) Int(p Property) (int, bool) {
	v, ok := s.props[p]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Remove deletes the given properties, leaving others untouched.
func (s *Style) Remove(ps ...Property) {
	for _, p := range ps {
		delete(s.props, p)
	}
}

// Has reports whether the property is set.
func (s *Style) Has(p Property) bool {
	_, ok := s.props[p]
	return ok
}
