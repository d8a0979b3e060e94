package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/account"
	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)
	r.Put("/{id}/guide", h.linkGuide)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), rest.Actor(r), id)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, a)
}

// linkGuideRequest clears the link when GuideID is null.
type linkGuideRequest struct {
	GuideID *uuid.UUID `json:"guideId"`
}

func (h *Handler) linkGuide(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req linkGuideRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	a, err := h.svc.LinkGuide(r.Context(), rest.Actor(r), id, req.GuideID)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, a)
}
