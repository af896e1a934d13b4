package signup

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/justerika/signup-gateway/pkg/clientip"
	"github.com/justerika/signup-gateway/pkg/logger"
)

// maxBodyBytes bounds request bodies; signup payloads are tiny.
const maxBodyBytes = 64 << 10

// Fixed client-facing messages. Internals never leak into responses.
const (
	msgInvalidEmail = "Valid email is required."
	msgSaveFailed   = "Subscription could not be saved. Please try again later."
	msgUnknownBrand = "Unknown brand."
)

type subscribedResponse struct {
	OK    bool   `json:"ok"`
	Email string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	svc *Service
	log *slog.Logger
}

func newHandler(svc *Service, log *slog.Logger) *handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &handler{svc: svc, log: log}
}

// subscribe handles one brand's signup POST.
func (h *handler) subscribe(brand Brand) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		payload, err := ParsePayload(r)
		if err != nil {
			h.log.DebugContext(ctx, "rejected malformed payload",
				logger.Brand(brand.Name), logger.Error(err))
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidEmail})
			return
		}

		ip := clientip.FromContext(ctx)
		if ip == "" {
			ip = clientip.GetIP(r)
		}

		rec, err := h.svc.Subscribe(ctx, brand, payload, ip)
		switch {
		case errors.Is(err, ErrInvalidEmail):
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidEmail})
		case err != nil:
			respondJSON(w, http.StatusInternalServerError, errorResponse{Error: msgSaveFailed})
		default:
			respondJSON(w, http.StatusOK, subscribedResponse{OK: true, Email: rec.Email})
		}
	}
}

// subscribeByName resolves the {brand} URL slug before delegating.
func (h *handler) subscribeByName(brands map[string]Brand, param func(*http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand, ok := brands[param(r)]
		if !ok {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: msgUnknownBrand})
			return
		}
		h.subscribe(brand)(w, r)
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
