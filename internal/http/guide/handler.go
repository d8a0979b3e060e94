package guide

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
	"github.com/MrJamesThe3rd/cashup/internal/roster"
)

const maxRosterBytes = 10 << 20

type Handler struct {
	svc    *guide.Service
	parser *roster.Parser
}

func NewHandler(svc *guide.Service, parser *roster.Parser) *Handler {
	return &Handler{svc: svc, parser: parser}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/import", h.importRoster)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.create)
		r.Patch("/{id}", h.update)
	})

	r.Post("/{id}/deactivate", h.deactivate)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	guides, err := h.svc.List(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	if guides == nil {
		guides = []*guide.Guide{}
	}

	rest.JSON(w, http.StatusOK, guides)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, g)
}

type createGuideRequest struct {
	Name  string  `json:"name" validate:"required,max=200"`
	Rank  string  `json:"rank" validate:"required"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createGuideRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	rank, err := guide.ParseRank(req.Rank)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	g, err := h.svc.Create(r.Context(), rest.Actor(r), guide.CreateParams{
		Name:  req.Name,
		Rank:  rank,
		Email: req.Email,
	})
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusCreated, g)
}

type updateGuideRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Rank  *string `json:"rank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req updateGuideRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	params := guide.UpdateParams{Name: req.Name, Email: req.Email}

	if req.Rank != nil {
		rank, err := guide.ParseRank(*req.Rank)
		if err != nil {
			rest.Error(w, r, err)
			return
		}

		params.Rank = &rank
	}

	g, err := h.svc.Update(r.Context(), rest.Actor(r), id, params)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, g)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	g, err := h.svc.Deactivate(r.Context(), rest.Actor(r), id)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, g)
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

type skippedRowResponse struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Created []*guide.Guide       `json:"created"`
	Skipped []skippedRowResponse `json:"skipped"`
}

func (h *Handler) importRoster(w http.ResponseWriter, r *http.Request) {
	if err := rest.Actor(r).RequireAdmin(); err != nil {
		rest.Error(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxRosterBytes); err != nil {
		rest.Error(w, r, apperr.Validation("failed to parse form: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		rest.Error(w, r, apperr.Validation("file is required"))
		return
	}
	defer file.Close()

	rows, err := h.parser.Parse(file)
	if err != nil {
		rest.Error(w, r, apperr.Validation("invalid roster: %v", err))
		return
	}

	res, err := h.svc.ImportRoster(r.Context(), rest.Actor(r), rows)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	resp := importResponse{
		Created: res.Created,
		Skipped: make([]skippedRowResponse, len(res.Skipped)),
	}

	if resp.Created == nil {
		resp.Created = []*guide.Guide{}
	}

	for i, s := range res.Skipped {
		resp.Skipped[i] = skippedRowResponse{Name: s.Name, Reason: s.Reason}
	}

	rest.JSON(w, http.StatusOK, resp)
}
