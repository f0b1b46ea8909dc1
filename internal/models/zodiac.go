package models

import "math"

// Sign is a zodiac sign index in [0,11], Aries through Pisces.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign name.
func (s Sign) String() string {
	if s < 0 || s > 11 {
		return "Unknown"
	}
	return signNames[s]
}

// Number returns the 1-based sign number (Aries=1 .. Pisces=12).
func (s Sign) Number() int {
	return int(s) + 1
}

// signRulers maps each sign to its ruling planet.
var signRulers = map[Sign]Planet{
	Aries:       Mars,
	Taurus:      Venus,
	Gemini:      Mercury,
	Cancer:      Moon,
	Leo:         Sun,
	Virgo:       Mercury,
	Libra:       Venus,
	Scorpio:     Mars,
	Sagittarius: Jupiter,
	Capricorn:   Saturn,
	Aquarius:    Saturn,
	Pisces:      Jupiter,
}

// Ruler returns the planet ruling this sign.
func (s Sign) Ruler() Planet {
	return signRulers[s]
}

// NormalizeDegrees maps any degree value into [0,360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SignOf returns the zodiac sign for a longitude. The longitude is
// normalized first; the index is clamped against float edge values at
// exactly 360°.
func SignOf(longitude float64) Sign {
	idx := int(NormalizeDegrees(longitude) / 30)
	if idx > 11 {
		idx = 11
	}
	return Sign(idx)
}

// DegreeInSign returns the position within the occupied sign, in [0,30).
func DegreeInSign(longitude float64) float64 {
	return math.Mod(NormalizeDegrees(longitude), 30)
}

// AngularDistance returns the separation between two longitudes,
// folded into [0,180].
func AngularDistance(a, b float64) float64 {
	diff := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// SignsApart returns the minimum house-style distance between two signs
// around the 12-sign cycle, in [0,6].
func SignsApart(a, b Sign) int {
	diff := int(a) - int(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > 6 {
		diff = 12 - diff
	}
	return diff
}
