package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/04yashgautam/adverai/internal/query"
	"github.com/04yashgautam/adverai/internal/utils"
)

type queryRequest struct {
	UserPrompt string `json:"user_prompt"`
}

func NewRouter(log *slog.Logger, svc *query.Service) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.Instrument)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/query", func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", 400)
			return
		}
		cfg, err := svc.Submit(r.Context(), req.UserPrompt)
		if err != nil {
			// Precondition failures still answer 200 with an error payload;
			// callers always get a parseable body.
			writeJSON(w, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, cfg)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
