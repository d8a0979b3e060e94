package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

// Handler serves the bulk maintenance operations.
type Handler struct {
	trips *trip.Service
}

func NewHandler(trips *trip.Service) *Handler {
	return &Handler{trips: trips}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/recalculate-fees", h.recalculateFees)
	r.Post("/backfill-leaders", h.backfillLeaders)
}

type recalculateResponse struct {
	RateVersion string `json:"rateVersion"`
	Trips       int    `json:"trips"`
	Guides      int    `json:"guides"`
	Changed     int    `json:"changed"`
}

func (h *Handler) recalculateFees(w http.ResponseWriter, r *http.Request) {
	res, err := h.trips.RecalculateFees(r.Context(), rest.Actor(r))
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, recalculateResponse{
		RateVersion: res.RateVersion,
		Trips:       res.Trips,
		Guides:      res.Guides,
		Changed:     res.Changed,
	})
}

type backfillResponse struct {
	Fixed          int         `json:"fixed"`
	FixedTripIDs   []uuid.UUID `json:"fixedTripIds"`
	AlreadyCorrect int         `json:"alreadyCorrect"`
}

func (h *Handler) backfillLeaders(w http.ResponseWriter, r *http.Request) {
	res, err := h.trips.BackfillLeaders(r.Context(), rest.Actor(r))
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	resp := backfillResponse{
		Fixed:          len(res.Fixed),
		FixedTripIDs:   res.Fixed,
		AlreadyCorrect: res.AlreadyCorrect,
	}

	if resp.FixedTripIDs == nil {
		resp.FixedTripIDs = []uuid.UUID{}
	}

	rest.JSON(w, http.StatusOK, resp)
}
