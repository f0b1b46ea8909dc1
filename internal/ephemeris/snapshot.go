package ephemeris

import (
	"context"

	"kundali-engine/internal/models"
)

// SnapshotProvider serves a fixed set of positions regardless of the
// requested time. Used for replaying externally computed ephemeris data
// and in tests.
type SnapshotProvider struct {
	bodies    map[models.Planet]BodyState
	ascendant float64
}

// NewSnapshotProvider wraps a fixed position set.
func NewSnapshotProvider(bodies map[models.Planet]BodyState, ascendant float64) *SnapshotProvider {
	copied := make(map[models.Planet]BodyState, len(bodies))
	for p, s := range bodies {
		copied[p] = BodyState{
			Longitude: models.NormalizeDegrees(s.Longitude),
			Speed:     s.Speed,
		}
	}
	return &SnapshotProvider{
		bodies:    copied,
		ascendant: models.NormalizeDegrees(ascendant),
	}
}

// Name identifies the provider in logs and errors.
func (p *SnapshotProvider) Name() string {
	return "snapshot"
}

// Positions returns the snapshot's fixed body states.
func (p *SnapshotProvider) Positions(ctx context.Context, jd float64) (map[models.Planet]BodyState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[models.Planet]BodyState, len(p.bodies))
	for body, state := range p.bodies {
		out[body] = state
	}
	return out, nil
}

// Ascendant returns the snapshot's fixed rising degree.
func (p *SnapshotProvider) Ascendant(ctx context.Context, jd, latitude, longitude float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return p.ascendant, nil
}
