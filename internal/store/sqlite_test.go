package store

import (
	"context"
	"os"
	"testing"
	"time"

	"kundali-engine/internal/errors"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := "test_charts.db"
	t.Cleanup(func() { os.Remove(dbPath) })

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetChartNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetChart(context.Background(), "nobody")
	if !errors.Is(err, errors.ErrChartNotFound) {
		t.Fatalf("GetChart = %v, want ErrChartNotFound", err)
	}

	var dataErr *errors.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("GetChart error is not a DataError: %v", err)
	}
	if dataErr.Key != "nobody" {
		t.Errorf("DataError key = %q", dataErr.Key)
	}
}

func TestDeleteChart(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	birth := time.Date(1985, 7, 20, 4, 45, 0, 0, time.UTC)
	if err := store.SaveChart(ctx, testChart("deleteme", birth, 12.97, 77.59, 95, 150)); err != nil {
		t.Fatalf("SaveChart: %v", err)
	}

	if err := store.DeleteChart(ctx, "deleteme"); err != nil {
		t.Fatalf("DeleteChart: %v", err)
	}
	if _, err := store.GetChart(ctx, "deleteme"); !errors.Is(err, errors.ErrChartNotFound) {
		t.Fatalf("chart still present after delete: %v", err)
	}
	if err := store.DeleteChart(ctx, "deleteme"); !errors.Is(err, errors.ErrChartNotFound) {
		t.Fatalf("double delete = %v, want ErrChartNotFound", err)
	}
}

func TestListChartsFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	births := map[string]time.Time{
		"alpha-one": time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		"alpha-two": time.Date(1985, 6, 15, 8, 30, 0, 0, time.UTC),
		"beta-one":  time.Date(2001, 12, 31, 23, 0, 0, 0, time.UTC),
	}
	for name, bt := range births {
		if err := store.SaveChart(ctx, testChart(name, bt, 28.61, 77.20, 10, 45)); err != nil {
			t.Fatalf("SaveChart(%s): %v", name, err)
		}
	}

	all, err := store.ListCharts(ctx, ChartFilter{})
	if err != nil {
		t.Fatalf("ListCharts: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d charts, want 3", len(all))
	}

	alphas, err := store.ListCharts(ctx, ChartFilter{NamePrefix: "alpha"})
	if err != nil {
		t.Fatalf("ListCharts(prefix): %v", err)
	}
	if len(alphas) != 2 {
		t.Fatalf("got %d alpha charts, want 2", len(alphas))
	}

	recent, err := store.ListCharts(ctx, ChartFilter{
		After: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("ListCharts(after): %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d recent charts, want 2", len(recent))
	}

	limited, err := store.ListCharts(ctx, ChartFilter{Limit: 1})
	if err != nil {
		t.Fatalf("ListCharts(limit): %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d charts with limit 1", len(limited))
	}

	for _, sum := range all {
		if sum.AscendantSign != "Aries" {
			t.Errorf("%s ascendant sign = %q, want Aries", sum.Name, sum.AscendantSign)
		}
		if !sum.Complete {
			t.Errorf("%s marked incomplete", sum.Name)
		}
	}
}
