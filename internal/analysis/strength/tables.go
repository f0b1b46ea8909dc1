package strength

import "kundali-engine/internal/models"

// Sub-score values for positional standing.
const (
	sthanaOwn         = 15.0
	sthanaDebilitated = 3.0
	sthanaNeutral     = 9.0
)

// digHouses maps each planet to the pair of houses where it gains full
// directional strength.
var digHouses = map[models.Planet][2]int{
	models.Sun:     {1, 10},
	models.Mercury: {1, 10},
	models.Jupiter: {1, 10},
	models.Mars:    {4, 5},
	models.Venus:   {4, 5},
	models.Saturn:  {7, 8},
	models.Rahu:    {7, 8},
	models.Ketu:    {7, 8},
	models.Moon:    {10, 11},
}

const (
	digStrong  = 15.0
	digNeutral = 8.0
)

// Diurnal planets gain temporal strength for daytime births, nocturnal
// ones for nighttime births. The remaining planets are indifferent.
var diurnalPlanets = map[models.Planet]bool{
	models.Sun:     true,
	models.Mars:    true,
	models.Jupiter: true,
}

var nocturnalPlanets = map[models.Planet]bool{
	models.Moon:   true,
	models.Venus:  true,
	models.Saturn: true,
}

const (
	kalaStrong  = 12.0
	kalaNeutral = 8.0

	// Daytime is the half-open hour window [6,18).
	dayStartHour = 6
	dayEndHour   = 18
)

const (
	chestaDirect     = 10.0
	chestaRetrograde = 4.0
	chestaFastBonus  = 3.0
	chestaSlowMalus  = 2.0

	fastMotionThreshold = 1.0
	slowMotionThreshold = 0.1
)

// naisargikaRanks is the classical natural-strength ordering on a
// 60-point scale. The sub-score normalizes rank/60 onto [0,15].
var naisargikaRanks = map[models.Planet]float64{
	models.Sun:     60,
	models.Moon:    51,
	models.Venus:   42,
	models.Jupiter: 34,
	models.Mercury: 25,
	models.Mars:    17,
	models.Saturn:  10,
	models.Rahu:    15,
	models.Ketu:    12,
}

const (
	drishtiBase     = 8.0
	drishtiInfluence = 2.0
	oppositionHouses = 6
)

const (
	subScoreMax   = 15.0
	totalScoreMax = 60.0
)

// Status is the categorical strength bucket.
type Status string

const (
	StatusVeryStrong Status = "Very Strong"
	StatusStrong     Status = "Strong"
	StatusModerate   Status = "Moderate"
	StatusWeak       Status = "Weak"
	StatusVeryWeak   Status = "Very Weak"
)

// statusOf buckets a percentage; thresholds are inclusive on the lower
// bound.
func statusOf(percent float64) Status {
	switch {
	case percent >= 80:
		return StatusVeryStrong
	case percent >= 60:
		return StatusStrong
	case percent >= 40:
		return StatusModerate
	case percent >= 20:
		return StatusWeak
	default:
		return StatusVeryWeak
	}
}

// strongThresholdPercent marks a planet as strong for the chart
// aggregate.
const strongThresholdPercent = 70.0

// Quality is the chart-level strength bucket.
type Quality string

const (
	QualityExcellent   Quality = "Excellent"
	QualityGood        Quality = "Good"
	QualityAverage     Quality = "Average"
	QualityChallenging Quality = "Challenging"
)

func qualityOf(strongCount int, averagePoints float64) Quality {
	switch {
	case strongCount >= 5 && averagePoints >= 35:
		return QualityExcellent
	case strongCount >= 3 && averagePoints >= 30:
		return QualityGood
	case strongCount >= 2 && averagePoints >= 25:
		return QualityAverage
	default:
		return QualityChallenging
	}
}
