package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"restaurant-reservations/activity-svc/internal/service"

	"github.com/gorilla/mux"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Handler struct {
	Activity service.ActivityInterface
}

func NewHandler(svc service.ActivityInterface) *Handler {
	return &Handler{Activity: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/activity", h.getTotals).Methods("GET")
	r.HandleFunc("/api/activity/today", h.getToday).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "activity-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.Activity.Totals(r.Context())
	if err != nil {
		log.Printf("Error: failed to load activity totals: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	counts, err := h.Activity.Today(r.Context(), limit)
	if err != nil {
		log.Printf("Error: failed to load daily activity: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to encode response: %v", err)
	}
}
