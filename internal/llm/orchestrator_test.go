package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

type scriptedCompleter struct {
	responses map[string]string // model -> raw text
	errs      map[string]error  // model -> error
	calls     []string
}

func (s *scriptedCompleter) Complete(_ context.Context, model, _, _ string, _ int) (string, error) {
	s.calls = append(s.calls, model)
	if err, ok := s.errs[model]; ok {
		return "", err
	}
	return s.responses[model], nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestOrchestratorAdvancesPastRateLimit(t *testing.T) {
	c := &scriptedCompleter{
		errs:      map[string]error{"m1": fmt.Errorf("model m1: %w", ErrRateLimited)},
		responses: map[string]string{"m2": `{"insights":["ok"]}`},
	}
	o := NewOrchestrator(c, []string{"m1", "m2", "m3"}, 500, discard())
	cfg, err := o.Plan(context.Background(), "reports")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Insights) != 1 || cfg.Insights[0] != "ok" {
		t.Fatalf("wrong config: %+v", cfg)
	}
	if len(c.calls) != 2 || c.calls[0] != "m1" || c.calls[1] != "m2" {
		t.Fatalf("expected m1 then m2 and stop, got %v", c.calls)
	}
}

func TestOrchestratorAdvancesPastParseFailure(t *testing.T) {
	c := &scriptedCompleter{
		responses: map[string]string{
			"m1": "Sure! Here is your chart plan.",
			"m2": "```json\n{\"metrics\":[{\"title\":\"Spend\",\"value_key\":\"spend\"}]}\n```",
		},
	}
	o := NewOrchestrator(c, []string{"m1", "m2"}, 500, discard())
	cfg, err := o.Plan(context.Background(), "cost analysis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Metrics) != 1 || cfg.Metrics[0].ValueKey != "spend" {
		t.Fatalf("fenced JSON not parsed: %+v", cfg)
	}
}

func TestOrchestratorExhaustion(t *testing.T) {
	c := &scriptedCompleter{
		errs: map[string]error{
			"m1": fmt.Errorf("model m1: %w", ErrRateLimited),
			"m2": errors.New("model m2: status 502"),
		},
		responses: map[string]string{"m3": "not json"},
	}
	o := NewOrchestrator(c, []string{"m1", "m2", "m3"}, 500, discard())
	_, err := o.Plan(context.Background(), "anything")
	if !errors.Is(err, ErrProvidersExhausted) {
		t.Fatalf("expected ErrProvidersExhausted, got %v", err)
	}
	if len(c.calls) != 3 {
		t.Fatalf("expected all three models tried, got %v", c.calls)
	}
}

func TestOrchestratorScalarDateFilter(t *testing.T) {
	c := &scriptedCompleter{
		responses: map[string]string{"m1": `{"filters":{"date":"today"}}`},
	}
	o := NewOrchestrator(c, []string{"m1"}, 500, discard())
	cfg, err := o.Plan(context.Background(), "today's numbers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Filters.Date == nil || cfg.Filters.Date.Value != "today" {
		t.Fatalf("scalar date filter lost: %+v", cfg.Filters.Date)
	}
}
