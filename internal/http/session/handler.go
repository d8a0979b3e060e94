package session

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cashup/internal/account"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
)

// Handler turns a provider-authenticated request into a ledger session. The
// returned token carries the account's role and guide link.
type Handler struct {
	accounts *account.Service
	tokens   *auth.Verifier
	ttl      time.Duration
}

func NewHandler(accounts *account.Service, tokens *auth.Verifier, ttl time.Duration) *Handler {
	return &Handler{accounts: accounts, tokens: tokens, ttl: ttl}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
}

type sessionResponse struct {
	Account   *account.Account `json:"account"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor := rest.Actor(r)

	acct, err := h.accounts.SignIn(r.Context(), account.Identity{
		AccountID: actor.AccountID,
		Email:     actor.Email,
		Name:      actor.Name,
	})
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	token, err := h.tokens.Issue(acct.Actor(), h.ttl)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	expires := time.Now().Add(h.ttl)

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	rest.JSON(w, http.StatusOK, sessionResponse{Account: acct, Token: token, ExpiresAt: expires})
}
