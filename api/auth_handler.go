package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TianMHDev/portfolio-panel/errs"
	"github.com/TianMHDev/portfolio-panel/gateway"
	"github.com/TianMHDev/portfolio-panel/session"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	gw        *gateway.Client
	gate      *session.Gate
	cookies   session.Cookies
}

func newAuthHandler(gw *gateway.Client, gate *session.Gate, cookies session.Cookies) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gw:        gw,
		gate:      gate,
		cookies:   cookies,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login proxies the credentials to the backend. On success the returned token
// is persisted (the gate flips to logged in) and a signed session cookie is
// issued; on rejection nothing is stored.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if req.Username == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("username"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		token, err := h.gw.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.gate.Establish(token); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to persist session"))
			return
		}

		if err := h.cookies.Issue(w); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue session cookie"))
			return
		}

		h.responder.WriteJSON(w, statusResponse{
			Status:  "success",
			Message: "CONEXIÓN_ESTABLECIDA: Acceso autorizado",
		})
	}
}

// logout clears the stored token and expires the browser cookie.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.gate.Clear(); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to clear session"))
			return
		}

		h.cookies.Expire(w)
		h.responder.WriteJSON(w, statusResponse{
			Status:  "success",
			Message: "SESIÓN_FINALIZADA: Desconexión segura",
		})
	}
}
