package dasha

import "kundali-engine/internal/models"

// Characteristics is the canned interpretation set for one lord's
// period.
type Characteristics struct {
	Signification   string `json:"signification"`
	PositiveEffects string `json:"positive_effects"`
	NegativeEffects string `json:"negative_effects"`
	BestFor         string `json:"best_for"`
	Challenges      string `json:"challenges"`
}

var characteristics = map[models.Planet]Characteristics{
	models.Sun: {
		Signification:   "Self, father, government, authority, power",
		PositiveEffects: "Gain in power, status, authority; achievement; recognition",
		NegativeEffects: "Ego issues; health problems; conflicts with authority",
		BestFor:         "Government jobs, leadership, political success",
		Challenges:      "Arrogance, pride, health issues",
	},
	models.Moon: {
		Signification:   "Mind, emotions, mother, comfort, public acceptance",
		PositiveEffects: "Emotional stability; gains through mother; public favor; travel",
		NegativeEffects: "Emotional turbulence; depression; health issues; rumors",
		BestFor:         "Emotional healing, travel, public work, family matters",
		Challenges:      "Mood swings, anxiety, instability",
	},
	models.Mars: {
		Signification:   "Energy, courage, conflict, surgery, siblings, property",
		PositiveEffects: "Courage; success in competition; property gains; surgery benefits",
		NegativeEffects: "Accidents; conflicts; diseases; financial losses",
		BestFor:         "Military, sports, competitive endeavors, property matters",
		Challenges:      "Accidents, surgeries, conflicts, aggression",
	},
	models.Mercury: {
		Signification:   "Communication, intelligence, business, commerce, education",
		PositiveEffects: "Communication success; business growth; education; intellectual development",
		NegativeEffects: "Confusion; business losses; communication failures",
		BestFor:         "Business, teaching, writing, trade, contracts",
		Challenges:      "Nervousness, confusion, misunderstandings",
	},
	models.Jupiter: {
		Signification:   "Wisdom, children, prosperity, luck, dharma, higher learning",
		PositiveEffects: "Expansion; prosperity; children; religious inclination; wisdom",
		NegativeEffects: "Over-expansion; legal issues; weight gain",
		BestFor:         "Higher education, spirituality, children, wealth accumulation",
		Challenges:      "Overindulgence, excessive spending",
	},
	models.Venus: {
		Signification:   "Love, marriage, beauty, arts, vehicles, comforts, enjoyment",
		PositiveEffects: "Marriage; love relationships; artistic gains; vehicles; comforts",
		NegativeEffects: "Relationship issues; excess indulgence; health problems",
		BestFor:         "Marriage, arts, entertainment, luxury business",
		Challenges:      "Relationship complications, excess, sensuality",
	},
	models.Saturn: {
		Signification:   "Discipline, karma, delays, longevity, service, hard work",
		PositiveEffects: "Spiritual growth; discipline; building solid foundation; longevity",
		NegativeEffects: "Delays; difficulties; health issues; loss; hardships",
		BestFor:         "Spiritual practice, discipline, building lasting structures",
		Challenges:      "Delays, hardships, health issues, depression",
	},
	models.Rahu: {
		Signification:   "Illusion, obsession, foreign matters, technology, unconventional success",
		PositiveEffects: "Unexpected gains; foreign travel; technology success; fame",
		NegativeEffects: "Illusion; obsession; addictions; accidents; losses",
		BestFor:         "Technology, foreign business, unconventional ventures",
		Challenges:      "Illusions, addictions, unexpected difficulties",
	},
	models.Ketu: {
		Signification:   "Spiritual growth, detachment, liberation, mysteries, occult",
		PositiveEffects: "Spiritual advancement; detachment; mystical understanding; liberation",
		NegativeEffects: "Health issues; confusion; isolation; losses",
		BestFor:         "Spiritual practice, meditation, occult studies",
		Challenges:      "Isolation, health problems, confusion",
	},
}

// CharacteristicsOf returns the interpretation set for a lord's period.
// Unknown planets return the zero value.
func CharacteristicsOf(planet models.Planet) Characteristics {
	return characteristics[planet]
}
