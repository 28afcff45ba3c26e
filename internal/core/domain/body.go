package domain

// Body identifies one of the seven tracked celestial bodies.
type Body int

// The tracked bodies. The set is fixed; outer planets and points beyond
// Saturn are deliberately out of scope.
const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
)

var bodyNames = [...]string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn"}

// String returns the display name of the body.
func (b Body) String() string {
	if b < Sun || b > Saturn {
		return "Unknown"
	}
	return bodyNames[b]
}

// Bodies returns the tracked bodies in their fixed reporting order.
// Conjunctions for one moment are always emitted in this order.
func Bodies() []Body {
	return []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}
}

// BodyPosition is a body's ecliptic longitude at one moment.
// Positions are transient: recomputed every scan step, never cached.
type BodyPosition struct {
	Body      Body
	Name      string
	Longitude float64
}
