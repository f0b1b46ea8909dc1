// Package chart assembles natal charts from ephemeris providers and
// runs the analysis sections over them.
package chart

import (
	"strings"
	"time"

	"kundali-engine/internal/analysis/aspects"
	"kundali-engine/internal/analysis/dasha"
	"kundali-engine/internal/analysis/houses"
	"kundali-engine/internal/analysis/strength"
	"kundali-engine/internal/analysis/transit"
	"kundali-engine/internal/analysis/varga"
	"kundali-engine/internal/analysis/yoga"
	"kundali-engine/internal/errors"
	"kundali-engine/internal/models"
)

// BirthDetails identifies a chart subject: instant and place of birth.
type BirthDetails struct {
	Name      string    `json:"name"`
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// Validate checks the birth instant and geographic bounds. Coordinates
// outside their valid ranges are rejected, never silently defaulted.
func (b BirthDetails) Validate() error {
	if b.Time.IsZero() {
		return errors.Wrap(errors.ErrInvalidBirthDetails, "birth time not set")
	}
	if b.Latitude < -90 || b.Latitude > 90 {
		return errors.Wrapf(errors.ErrCoordinatesOutOfRange, "latitude %.4f outside [-90,90]", b.Latitude)
	}
	if b.Longitude < -180 || b.Longitude > 180 {
		return errors.Wrapf(errors.ErrCoordinatesOutOfRange, "longitude %.4f outside [-180,180]", b.Longitude)
	}
	return nil
}

// ID returns a stable identifier for the chart subject, used as the
// store key and in logs.
func (b BirthDetails) ID() string {
	name := strings.TrimSpace(b.Name)
	if name != "" {
		return name
	}
	return b.Time.UTC().Format("20060102T150405Z")
}

// Chart is the full derived record for one birth. Sections that failed
// or were skipped are nil; SectionErrors records why.
type Chart struct {
	Birth       BirthDetails `json:"birth"`
	GeneratedAt time.Time    `json:"generated_at"`
	JulianDay   float64      `json:"julian_day"`

	Ascendant models.Ascendant                        `json:"ascendant"`
	Positions map[models.Planet]models.PlanetPosition `json:"positions"`
	Houses    models.Houses                           `json:"houses"`

	// Missing lists ephemeris bodies the provider could not resolve.
	Missing []models.Planet `json:"missing,omitempty"`

	Dasha         *dasha.Timeline        `json:"dasha,omitempty"`
	Strength      *strength.ChartSummary `json:"strength,omitempty"`
	Varga         *varga.Result          `json:"varga,omitempty"`
	Aspects       *aspects.Result        `json:"aspects,omitempty"`
	HouseAnalysis *houses.Result         `json:"house_analysis,omitempty"`
	Yogas         *yoga.Result           `json:"yogas,omitempty"`
	Transits      *transit.Result        `json:"transits,omitempty"`

	// SectionErrors maps failed section names to their error text.
	SectionErrors map[string]string `json:"section_errors,omitempty"`
}

// Complete reports whether every core section produced a result.
func (c *Chart) Complete() bool {
	return len(c.SectionErrors) == 0
}

// HasPlanet reports whether a body survived ephemeris resolution.
func (c *Chart) HasPlanet(p models.Planet) bool {
	_, ok := c.Positions[p]
	return ok
}
