package llm

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/04yashgautam/adverai/internal/models"
)

const systemPrompt = "You respond only in valid JSON."

var attempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "adverai_provider_attempts_total",
	Help: "Chat-completion attempts by model and outcome.",
}, []string{"model", "outcome"})

// Completer is the single outbound call the orchestrator needs; *Client
// satisfies it.
type Completer interface {
	Complete(ctx context.Context, model, system, user string, maxTokens int) (string, error)
}

// Orchestrator walks an ordered model chain until one returns text that
// survives sanitization and JSON decoding. Strictly sequential: one in-flight
// call, no same-model retries, first parsed plan wins.
type Orchestrator struct {
	c         Completer
	providers []string
	maxTokens int
	log       *slog.Logger
}

func NewOrchestrator(c Completer, providers []string, maxTokens int, log *slog.Logger) *Orchestrator {
	return &Orchestrator{c: c, providers: providers, maxTokens: maxTokens, log: log}
}

func (o *Orchestrator) Plan(ctx context.Context, userPrompt string) (models.VisualizationConfig, error) {
	prompt := BuildPrompt(userPrompt)
	for _, model := range o.providers {
		raw, err := o.c.Complete(ctx, model, systemPrompt, prompt, o.maxTokens)
		if err != nil {
			if errors.Is(err, ErrRateLimited) {
				attempts.WithLabelValues(model, "rate_limited").Inc()
				o.log.Warn("provider rate limited, trying next", slog.String("model", model))
			} else {
				attempts.WithLabelValues(model, "error").Inc()
				o.log.Warn("provider error", slog.String("model", model), slog.String("err", err.Error()))
			}
			continue
		}
		var cfg models.VisualizationConfig
		if err := json.Unmarshal([]byte(Sanitize(raw)), &cfg); err != nil {
			attempts.WithLabelValues(model, "parse_error").Inc()
			o.log.Warn("provider returned invalid JSON",
				slog.String("model", model),
				slog.String("err", err.Error()),
				slog.String("raw", raw))
			continue
		}
		attempts.WithLabelValues(model, "ok").Inc()
		return cfg, nil
	}
	return models.VisualizationConfig{}, ErrProvidersExhausted
}
