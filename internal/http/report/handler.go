package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
)

type Handler struct {
	svc *statement.Service
}

func NewHandler(svc *statement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.period)
	r.Post("/weekly/handoff", h.handOff)
}

// period serves a statement for exactly one of week=YYYY-Www, month=YYYY-MM,
// year=YYYY or start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *Handler) period(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rng, err := parseRange(q.Get("week"), q.Get("month"), q.Get("year"), q.Get("start"), q.Get("end"))
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	bucket, err := statement.ParseBucket(q.Get("bucket"))
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	report, err := h.svc.Period(r.Context(), rest.Actor(r), rng, bucket)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, report)
}

func parseRange(week, month, year, start, end string) (statement.Range, error) {
	given := 0
	for _, s := range []string{week, month, year, start + end} {
		if s != "" {
			given++
		}
	}

	if given != 1 {
		return statement.Range{}, apperr.Validation("give exactly one of week, month, year or start and end")
	}

	switch {
	case week != "":
		return statement.ParseWeek(week)
	case month != "":
		return statement.ParseMonth(month)
	case year != "":
		return statement.ParseYear(year)
	}

	if start == "" || end == "" {
		return statement.Range{}, apperr.Validation("start and end are both required for a custom range")
	}

	return statement.CustomRange(start, end)
}

// handOffRequest defaults to the previous week when Week is empty.
type handOffRequest struct {
	Week string `json:"week"`
}

func (h *Handler) handOff(w http.ResponseWriter, r *http.Request) {
	var req handOffRequest

	if r.ContentLength != 0 {
		if err := rest.DecodeJSON(r, &req); err != nil {
			rest.Error(w, r, err)
			return
		}
	}

	report, err := h.svc.HandOff(r.Context(), rest.Actor(r), req.Week)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusAccepted, report)
}
