// Package store provides chart persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"kundali-engine/internal/chart"
)

// ChartStore defines the interface for chart persistence.
type ChartStore interface {
	// SaveChart persists a derived chart, replacing any chart saved
	// under the same name.
	SaveChart(ctx context.Context, c *chart.Chart) error

	// GetChart loads a chart by name. Returns ErrChartNotFound when no
	// chart is saved under the name.
	GetChart(ctx context.Context, name string) (*chart.Chart, error)

	// ListCharts returns summaries of saved charts matching the filter,
	// newest first.
	ListCharts(ctx context.Context, filter ChartFilter) ([]ChartSummary, error)

	// DeleteChart removes a saved chart by name.
	DeleteChart(ctx context.Context, name string) error

	// Lifecycle
	Close() error
}

// ChartFilter represents filters for listing saved charts.
type ChartFilter struct {
	NamePrefix string
	After      time.Time
	Before     time.Time
	Limit      int
}

// ChartSummary is the listing row for a saved chart.
type ChartSummary struct {
	Name          string    `json:"name"`
	BirthTime     time.Time `json:"birth_time"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	AscendantSign string    `json:"ascendant_sign"`
	Complete      bool      `json:"complete"`
	SavedAt       time.Time `json:"saved_at"`
}
