package audit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
)

type Handler struct {
	svc *audit.Service
}

func NewHandler(svc *audit.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type entryResponse struct {
	ID         uuid.UUID       `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Action     audit.Action    `json:"action"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	ActorID    *uuid.UUID      `json:"actorId"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := audit.ListFilter{
		EntityType: q.Get("entityType"),
		EntityID:   q.Get("entityId"),
	}

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			rest.Error(w, r, apperr.Validation("limit must be a positive number"))
			return
		}

		filter.Limit = n
	}

	entries, err := h.svc.List(r.Context(), rest.Actor(r), filter)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{
			ID:         e.ID,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     e.Action,
			Before:     e.Before,
			After:      e.After,
			ActorID:    e.ActorID,
			CreatedAt:  e.CreatedAt,
		}
	}

	rest.JSON(w, http.StatusOK, resp)
}
