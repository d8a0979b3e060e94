package invoice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
	"github.com/MrJamesThe3rd/cashup/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(middleware.AllowContentType("application/json"))
	r.Post("/", h.submit)
}

// submitRequest carries YYYY-Www for weekly invoices and YYYY-MM for monthly.
type submitRequest struct {
	Type   invoice.Kind `json:"type" validate:"required,oneof=weekly monthly"`
	Period string       `json:"period"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	inv, err := h.svc.Submit(r.Context(), rest.Actor(r), invoice.Request{Kind: req.Type, Period: req.Period})
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusCreated, inv)
}
