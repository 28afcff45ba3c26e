package domain

// Sign is one of the twelve zodiac signs, each spanning 30 degrees
// of ecliptic longitude starting at 0 Aries.
type Sign string

// The twelve signs in zodiacal order.
const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

var signs = [12]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// SignOf maps an ecliptic longitude to its zodiac sign. Inputs outside
// [0, 360) are wrapped first, so SignOf(L) == SignOf(L + 360k) for any k.
func SignOf(longitude float64) Sign {
	i := int(Normalize360(longitude) / 30)
	return signs[i%12]
}

// String returns the sign name.
func (s Sign) String() string {
	return string(s)
}
