package query

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/04yashgautam/adverai/internal/config"
	"github.com/04yashgautam/adverai/internal/llm"
	"github.com/04yashgautam/adverai/internal/metrics"
	"github.com/04yashgautam/adverai/internal/models"
)

// Precondition failures: the only errors Submit surfaces. Everything else
// collapses to the fallback payload.
var (
	ErrMissingCredential = errors.New("Missing OpenRouter API key")
	ErrStoreUnavailable  = errors.New("Database not connected")
)

var fallbacks = promauto.NewCounter(prometheus.CounterOpts{
	Name: "adverai_query_fallbacks_total",
	Help: "Queries answered with the canned fallback payload.",
})

// Planner produces a visualization plan from a natural-language request.
type Planner interface {
	Plan(ctx context.Context, userPrompt string) (models.VisualizationConfig, error)
}

// Store is the read-only view of the campaign-stats collection the pipeline
// needs. Nil means the store never came up.
type Store interface {
	FindRows(ctx context.Context, date string) ([]models.Row, error)
	ImpressionHistory(ctx context.Context) ([]models.Row, error)
}

type Service struct {
	planner Planner
	st      Store
	log     *slog.Logger
	cfg     config.Config
	now     func() time.Time
}

func NewService(planner Planner, st Store, log *slog.Logger, cfg config.Config) *Service {
	return &Service{planner: planner, st: st, log: log, cfg: cfg, now: time.Now}
}

// Submit runs the whole pipeline. The returned error is non-nil only for the
// two up-front precondition failures; every downstream failure is logged and
// answered with Fallback(), so callers always get a complete config.
func (s *Service) Submit(ctx context.Context, userPrompt string) (models.VisualizationConfig, error) {
	if s.cfg.OpenRouterKey == "" {
		return models.VisualizationConfig{}, ErrMissingCredential
	}
	if s.st == nil {
		return models.VisualizationConfig{}, ErrStoreUnavailable
	}

	cfg, err := s.run(ctx, userPrompt)
	if err != nil {
		kind := "unexpected"
		if errors.Is(err, llm.ErrProvidersExhausted) {
			kind = "providers_exhausted"
		}
		fallbacks.Inc()
		s.log.Error("query pipeline failed, serving fallback",
			slog.String("kind", kind),
			slog.String("err", err.Error()))
		return Fallback(), nil
	}
	return cfg, nil
}

func (s *Service) run(ctx context.Context, userPrompt string) (models.VisualizationConfig, error) {
	cfg, err := s.planner.Plan(ctx, userPrompt)
	if err != nil {
		return models.VisualizationConfig{}, err
	}

	date := ResolveDateFilter(cfg.Filters.Date, s.now())
	rows, err := s.st.FindRows(ctx, date)
	if err != nil {
		return models.VisualizationConfig{}, err
	}
	if len(rows) == 0 {
		// Empty result sets are absorbed here, not surfaced: the dashboard
		// always has something to render.
		rows = Fallback().Data
	}
	cfg.Data = rows

	history, err := s.st.ImpressionHistory(ctx)
	if err != nil {
		return models.VisualizationConfig{}, err
	}
	cfg.LineChartData = metrics.ImpressionsByDate(history)

	// Providers occasionally omit whole sections; keep every top-level field
	// non-null in the response.
	if cfg.Metrics == nil {
		cfg.Metrics = []models.MetricSpec{}
	}
	if cfg.Visualizations == nil {
		cfg.Visualizations = []models.VizSpec{}
	}
	if cfg.Insights == nil {
		cfg.Insights = []string{}
	}
	return cfg, nil
}
