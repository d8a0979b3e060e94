package exception

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/exception"
	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
)

type Handler struct {
	svc *exception.Service
}

func NewHandler(svc *exception.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.create)
		r.Post("/{id}/handover", h.handover)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := exception.ListFilter{OpenOnly: q.Get("open") == "true"}

	if s := q.Get("guideId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			rest.Error(w, r, apperr.Validation("invalid guideId"))
			return
		}

		filter.GuideID = &id
	}

	list, err := h.svc.List(r.Context(), rest.Actor(r), filter)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	if list == nil {
		list = []*exception.Exception{}
	}

	rest.JSON(w, http.StatusOK, list)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), rest.Actor(r), id)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, e)
}

type createExceptionRequest struct {
	GuideID    *uuid.UUID       `json:"guideId"`
	Type       string           `json:"type" validate:"required"`
	Reference  *string          `json:"reference" validate:"omitempty,max=200"`
	AmountHint *decimal.Decimal `json:"amountHint"`
	Note       *string          `json:"note"`
	TripID     *uuid.UUID       `json:"tripId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExceptionRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	typ, err := exception.ParseType(req.Type)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	e, err := h.svc.Create(r.Context(), rest.Actor(r), exception.CreateParams{
		GuideID:    req.GuideID,
		Type:       typ,
		Reference:  req.Reference,
		AmountHint: req.AmountHint,
		Note:       req.Note,
		TripID:     req.TripID,
	})
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusCreated, e)
}

type handoverRequest struct {
	CountedAmount *decimal.Decimal `json:"countedAmount"`
	Comment       *string          `json:"comment" validate:"omitempty,max=1000"`
}

func (h *Handler) handover(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req handoverRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	ho, err := h.svc.Resolve(r.Context(), rest.Actor(r), id, exception.ResolveParams{
		CountedAmount: req.CountedAmount,
		Comment:       req.Comment,
	})
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, ho)
}
