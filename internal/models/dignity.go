package models

// Dignity classifies a planet's standing in a sign.
type Dignity string

const (
	DignityExalted     Dignity = "Exalted"
	DignityOwnSign     Dignity = "Own Sign"
	DignityDebilitated Dignity = "Debilitated"
	DignityNeutral     Dignity = "Neutral"
)

// ExaltationPoint is the sign and exact degree of a planet's deepest
// exaltation.
type ExaltationPoint struct {
	Sign   Sign
	Degree float64
}

var exaltationPoints = map[Planet]ExaltationPoint{
	Sun:     {Aries, 10},
	Moon:    {Taurus, 3},
	Mars:    {Capricorn, 28},
	Mercury: {Virgo, 15},
	Jupiter: {Cancer, 5},
	Venus:   {Pisces, 27},
	Saturn:  {Libra, 20},
	Rahu:    {Gemini, 20},
	Ketu:    {Sagittarius, 20},
}

var ownSigns = map[Planet][]Sign{
	Sun:     {Leo},
	Moon:    {Cancer},
	Mercury: {Gemini, Virgo},
	Venus:   {Taurus, Libra},
	Mars:    {Aries, Scorpio},
	Jupiter: {Sagittarius, Pisces},
	Saturn:  {Capricorn, Aquarius},
	Rahu:    {Aquarius},
	Ketu:    {Scorpio},
}

var debilitationSigns = map[Planet]Sign{
	Sun:     Libra,
	Moon:    Scorpio,
	Mercury: Pisces,
	Venus:   Virgo,
	Mars:    Cancer,
	Jupiter: Capricorn,
	Saturn:  Aries,
	Rahu:    Sagittarius,
	Ketu:    Gemini,
}

// DignityOf classifies a planet's standing in a sign. Exaltation takes
// precedence over own sign, debilitation over neutral.
func DignityOf(planet Planet, sign Sign) Dignity {
	if pt, ok := exaltationPoints[planet]; ok && pt.Sign == sign {
		return DignityExalted
	}
	for _, s := range ownSigns[planet] {
		if s == sign {
			return DignityOwnSign
		}
	}
	if s, ok := debilitationSigns[planet]; ok && s == sign {
		return DignityDebilitated
	}
	return DignityNeutral
}

// ExaltationOf returns the exaltation point for a planet.
func ExaltationOf(planet Planet) (ExaltationPoint, bool) {
	pt, ok := exaltationPoints[planet]
	return pt, ok
}

// OwnSignsOf returns the signs a planet rules in its own right.
func OwnSignsOf(planet Planet) []Sign {
	return ownSigns[planet]
}

// DebilitationOf returns the sign of a planet's debilitation.
func DebilitationOf(planet Planet) (Sign, bool) {
	s, ok := debilitationSigns[planet]
	return s, ok
}
