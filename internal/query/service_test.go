package query

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/04yashgautam/adverai/internal/config"
	"github.com/04yashgautam/adverai/internal/llm"
	"github.com/04yashgautam/adverai/internal/models"
)

type fakePlanner struct {
	cfg models.VisualizationConfig
	err error
}

func (f *fakePlanner) Plan(context.Context, string) (models.VisualizationConfig, error) {
	return f.cfg, f.err
}

type fakeStore struct {
	rows      []models.Row
	history   []models.Row
	findErr   error
	gotDate   string
	histCalls int
}

func (f *fakeStore) FindRows(_ context.Context, date string) ([]models.Row, error) {
	f.gotDate = date
	return f.rows, f.findErr
}

func (f *fakeStore) ImpressionHistory(context.Context) ([]models.Row, error) {
	f.histCalls++
	return f.history, nil
}

func newTestService(p Planner, st Store) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewService(p, st, log, config.Config{OpenRouterKey: "k"})
	s.now = func() time.Time { return time.Date(2025, 8, 5, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSubmitMissingCredential(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewService(&fakePlanner{}, &fakeStore{}, log, config.Config{})
	_, err := s.Submit(context.Background(), "hi")
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestSubmitStoreUnavailable(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewService(&fakePlanner{}, nil, log, config.Config{OpenRouterKey: "k"})
	_, err := s.Submit(context.Background(), "hi")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSubmitExhaustionServesExactFallback(t *testing.T) {
	s := newTestService(&fakePlanner{err: llm.ErrProvidersExhausted}, &fakeStore{})
	got, err := s.Submit(context.Background(), "hi")
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	if !reflect.DeepEqual(got, Fallback()) {
		t.Fatalf("expected the fallback constant, got %+v", got)
	}
}

func TestSubmitStoreErrorServesFallback(t *testing.T) {
	st := &fakeStore{findErr: errors.New("server selection timeout")}
	s := newTestService(&fakePlanner{}, st)
	got, err := s.Submit(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Fallback()) {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestSubmitEmptyResultSubstitutesFallbackRows(t *testing.T) {
	st := &fakeStore{history: []models.Row{{"date": "2025-08-01", "impressions": 100}}}
	s := newTestService(&fakePlanner{}, st)
	got, err := s.Submit(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got.Data, Fallback().Data) {
		t.Fatalf("expected fallback rows, got %+v", got.Data)
	}
	// The line chart still reflects the real history, not the fallback's.
	want := []models.TimePoint{{Date: "2025-08-01", Impressions: 100}}
	if !reflect.DeepEqual(got.LineChartData, want) {
		t.Fatalf("got %+v want %+v", got.LineChartData, want)
	}
}

func TestSubmitEndToEndTodayFilter(t *testing.T) {
	row := models.Row{"campaign_name": "Launch", "date": "2025-08-05", "impressions": 42}
	st := &fakeStore{
		rows: []models.Row{row},
		history: []models.Row{
			{"date": "2025-08-04", "impressions": 10},
			{"date": "2025-08-05", "impressions": 42},
			{"date": "2025-08-04", "impressions": 5},
		},
	}
	p := &fakePlanner{cfg: models.VisualizationConfig{
		Filters: models.FilterSpec{Date: &models.DateFilter{Type: "single", Value: "today"}},
	}}
	s := newTestService(p, st)

	got, err := s.Submit(context.Background(), "today's performance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.gotDate != "2025-08-05" {
		t.Fatalf("store queried with %q", st.gotDate)
	}
	if len(got.Data) != 1 || !reflect.DeepEqual(got.Data[0], row) {
		t.Fatalf("got data %+v", got.Data)
	}
	// History is aggregated across all dates, independent of the filter.
	want := []models.TimePoint{
		{Date: "2025-08-04", Impressions: 15},
		{Date: "2025-08-05", Impressions: 42},
	}
	if !reflect.DeepEqual(got.LineChartData, want) {
		t.Fatalf("got line chart %+v want %+v", got.LineChartData, want)
	}
	if st.histCalls != 1 {
		t.Fatalf("expected one history read, got %d", st.histCalls)
	}
	if got.Metrics == nil || got.Visualizations == nil || got.Insights == nil {
		t.Fatal("top-level fields must be non-null")
	}
}
