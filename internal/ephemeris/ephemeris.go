// Package ephemeris supplies sidereal body positions to the chart engine.
//
// Providers return per-body longitudes and daily motion for a Julian Day.
// The engine never asks a provider for Ketu; the descending node is
// always derived from Rahu downstream.
package ephemeris

import (
	"context"

	"kundali-engine/internal/models"
)

// BodyState is one body's instantaneous sidereal position.
type BodyState struct {
	Longitude float64 `json:"longitude"` // degrees, [0,360)
	Speed     float64 `json:"speed"`     // degrees per day, signed
}

// Provider supplies positions for the eight ephemeris bodies.
type Provider interface {
	// Positions returns the state of every body in models.EphemerisBodies
	// at the given Julian Day. A provider may omit bodies it cannot
	// resolve; callers treat missing entries as degraded sections.
	Positions(ctx context.Context, jd float64) (map[models.Planet]BodyState, error)

	// Name identifies the provider in logs and errors.
	Name() string
}

// AscendantProvider computes the rising degree for a time and place.
type AscendantProvider interface {
	// Ascendant returns the sidereal ascendant longitude in degrees for
	// the given Julian Day and geographic coordinates.
	Ascendant(ctx context.Context, jd, latitude, longitude float64) (float64, error)
}
