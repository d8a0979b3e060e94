package trip

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/exception"
	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

type Handler struct {
	svc        *trip.Service
	exceptions *exception.Service
}

func NewHandler(svc *trip.Service, exceptions *exception.Service) *Handler {
	return &Handler{svc: svc, exceptions: exceptions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.create)
		r.Put("/{id}", h.replace)
		r.Patch("/{id}", h.patch)
		r.Patch("/{id}/status", h.updateStatus)
	})
}

// FeeRoutes serves per-guide fee overrides under /trip-guides.
func (h *Handler) FeeRoutes(r chi.Router) {
	r.Use(middleware.AllowContentType("application/json"))
	r.Patch("/{id}/fee", h.adjustFee)
}

// CashUpRoutes serves guide cash-up submissions under /cashups.
func (h *Handler) CashUpRoutes(r chi.Router) {
	r.Use(middleware.AllowContentType("application/json"))
	r.Post("/", h.cashUp)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := trip.ListFilter{
		Lead: q.Get("lead"),
		Note: q.Get("note"),
	}

	if s := q.Get("status"); s != "" {
		status := trip.Status(s)
		if !status.Valid() {
			rest.Error(w, r, apperr.Validation("invalid status %q", s))
			return
		}

		filter.Status = &status
	}

	var err error

	if filter.Start, err = rest.Date("start", q.Get("start")); err != nil {
		rest.Error(w, r, err)
		return
	}

	if filter.End, err = rest.Date("end", q.Get("end")); err != nil {
		rest.Error(w, r, err)
		return
	}

	if s := q.Get("guideId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			rest.Error(w, r, apperr.Validation("invalid guideId"))
			return
		}

		filter.GuideID = &id
	}

	trips, err := h.svc.List(r.Context(), rest.Actor(r), filter, q.Get("all") == "true")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	if trips == nil {
		trips = []*trip.Trip{}
	}

	rest.JSON(w, http.StatusOK, trips)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	t, err := h.svc.Get(r.Context(), rest.Actor(r), id)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, t)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	t, err := h.svc.Create(r.Context(), rest.Actor(r), params)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusCreated, t)
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req tripRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	t, err := h.svc.Replace(r.Context(), rest.Actor(r), id, params)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, t)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req patchTripRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	t, err := h.svc.Patch(r.Context(), rest.Actor(r), id, params)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, t)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req statusRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	t, err := h.svc.SetStatus(r.Context(), rest.Actor(r), id, req.Status)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, t)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), rest.Actor(r), id); err != nil {
		rest.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adjustFee(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req adjustFeeRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	tg, err := h.svc.AdjustFee(r.Context(), rest.Actor(r), id, req.FeeAmount, req.Reason)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, tg)
}

type cashUpResponse struct {
	Trip      *trip.Trip           `json:"trip"`
	Exception *exception.Exception `json:"exception,omitempty"`
}

// cashUp records a guide's trip for review. An inline exception is checked
// up front and created against the new trip once it exists.
func (h *Handler) cashUp(w http.ResponseWriter, r *http.Request) {
	actor := rest.Actor(r)

	var req cashUpRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var excParams *exception.CreateParams

	if req.Exception != nil {
		if _, err := actor.RequireGuide(); err != nil {
			rest.Error(w, r, err)
			return
		}

		typ, err := exception.ParseType(req.Exception.Type)
		if err != nil {
			rest.Error(w, r, err)
			return
		}

		excParams = &exception.CreateParams{
			Type:       typ,
			Reference:  req.Exception.Reference,
			AmountHint: req.Exception.AmountHint,
			Note:       req.Exception.Note,
		}
	}

	t, err := h.svc.SubmitCashUp(r.Context(), actor, params)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	resp := cashUpResponse{Trip: t}

	if excParams != nil {
		excParams.TripID = &t.ID

		if resp.Exception, err = h.exceptions.Create(r.Context(), actor, *excParams); err != nil {
			rest.Error(w, r, err)
			return
		}
	}

	rest.JSON(w, http.StatusCreated, resp)
}
