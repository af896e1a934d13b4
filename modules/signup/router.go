package signup

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// serviceName appears in the health payload.
const serviceName = "signup-gateway"

// RouterConfig wires the signup routes. RateLimit guards the subscribe
// endpoints only; health stays unthrottled for probes.
type RouterConfig struct {
	Service   *Service
	Brands    []Brand
	RateLimit func(http.Handler) http.Handler
	Logger    *slog.Logger
}

// Routes registers POST /subscribe/{brand}, the brands' legacy path
// aliases, and GET /health on an existing router, so the signup endpoints
// can share a mux with other modules.
func Routes(cfg RouterConfig) func(chi.Router) {
	if cfg.Service == nil {
		panic("signup: router requires a service")
	}

	h := newHandler(cfg.Service, cfg.Logger)

	byName := make(map[string]Brand, len(cfg.Brands))
	for _, b := range cfg.Brands {
		byName[b.Name] = b
	}

	return func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.RateLimit != nil {
				r.Use(cfg.RateLimit)
			}

			r.Post("/subscribe/{brand}", h.subscribeByName(byName, func(req *http.Request) string {
				return chi.URLParam(req, "brand")
			}))

			for _, b := range cfg.Brands {
				if b.LegacyPath != "" {
					r.Post(b.LegacyPath, h.subscribe(b))
				}
			}
		})

		r.Get("/health", healthHandler)
	}
}

// Router builds a standalone router with the signup routes.
func Router(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	Routes(cfg)(r)
	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
		Time    string `json:"time"`
	}{
		OK:      true,
		Service: serviceName,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
