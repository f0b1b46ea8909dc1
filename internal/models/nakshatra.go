package models

// Nakshatra is a lunar mansion index in [0,26].
type Nakshatra int

// NakshatraSpan is the arc of one nakshatra in degrees (13°20').
const NakshatraSpan = 360.0 / 27.0

// PadaSpan is the arc of one pada, a quarter nakshatra (3°20').
const PadaSpan = NakshatraSpan / 4.0

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra",
	"Swati", "Vishakha", "Anuradha", "Jyeshtha", "Mula",
	"Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

// String returns the nakshatra name.
func (n Nakshatra) String() string {
	if n < 0 || n > 26 {
		return "Unknown"
	}
	return nakshatraNames[n]
}

// NakshatraPosition locates a longitude within the 27-segment lunar zodiac.
type NakshatraPosition struct {
	Nakshatra Nakshatra `json:"nakshatra"`
	Name      string    `json:"name"`
	Pada      int       `json:"pada"` // 1-4
	// Fraction is the position within the nakshatra, 0 at its start
	// and approaching 1 at its end.
	Fraction float64 `json:"fraction"`
}

// boundaryEpsilon absorbs float rounding at exact segment boundaries,
// where quotients like 180/13.333 land just below the integer they
// represent in exact arithmetic.
const boundaryEpsilon = 1e-9

// NakshatraOf maps any longitude to its nakshatra and pada. The input is
// normalized mod 360; indexes are clamped against float edge values so the
// result is always in range.
func NakshatraOf(longitude float64) NakshatraPosition {
	lon := NormalizeDegrees(longitude)

	idx := int(lon/NakshatraSpan + boundaryEpsilon)
	if idx > 26 {
		idx = 26
	}

	within := lon - float64(idx)*NakshatraSpan
	pada := int(within/PadaSpan+boundaryEpsilon) + 1
	if pada < 1 {
		pada = 1
	}
	if pada > 4 {
		pada = 4
	}

	fraction := within / NakshatraSpan
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	return NakshatraPosition{
		Nakshatra: Nakshatra(idx),
		Name:      Nakshatra(idx).String(),
		Pada:      pada,
		Fraction:  fraction,
	}
}
