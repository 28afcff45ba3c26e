package domain

// FortuneLongitude derives the Part of Fortune from the Sun, Moon and
// Ascendant longitudes: Moon + Ascendant - Sun, wrapped into [0, 360).
// This is the traditional day formula; the night variant is out of scope.
func FortuneLongitude(sun, moon, ascendant float64) float64 {
	return Normalize360(moon + ascendant - sun)
}
