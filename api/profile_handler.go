package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TianMHDev/portfolio-panel/errs"
	"github.com/TianMHDev/portfolio-panel/gateway"
	"github.com/TianMHDev/portfolio-panel/models"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	gw        *gateway.Client
}

func newProfileHandler(gw *gateway.Client) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gw:        gw,
	}
}

type panelResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message,omitempty"`
	Profile *models.Profile       `json:"profile"`
	Tools   []models.LearningTool `json:"tools"`
}

// getPanel returns the raw admin panel state: the stored profile (possibly
// null when the backend has none yet) and the unbucketed tool list.
func (h profileHandler) getPanel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.gw.GetProfile(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tools, err := h.gw.ListTools(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, panelResponse{Status: "success", Profile: profile, Tools: tools})
	}
}

// updateProfile performs a full-record replacement; every field the form left
// blank is written blank. A missing id defaults to the singleton row.
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("profile form", err))
			return
		}

		if strings.TrimSpace(profile.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if profile.ID == 0 {
			profile.ID = 1
		}

		if err := h.gw.UpdateProfile(r.Context(), profile); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.gw.GetProfile(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		tools, err := h.gw.ListTools(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, panelResponse{
			Status:  "success",
			Message: "PERFIL_SINCRONIZADO_GLOBALMENTE",
			Profile: updated,
			Tools:   tools,
		})
	}
}
