package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TianMHDev/portfolio-panel/errs"
	"github.com/TianMHDev/portfolio-panel/gateway"
	"github.com/TianMHDev/portfolio-panel/models"
)

type toolHandler struct {
	responder Responder
	logger    zerolog.Logger
	gw        *gateway.Client
}

func newToolHandler(gw *gateway.Client) toolHandler {
	logger := log.With().Str("handlerName", "toolHandler").Logger()

	return toolHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gw:        gw,
	}
}

type toolForm struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type toolListResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message,omitempty"`
	Tools   []models.LearningTool `json:"tools"`
	Profile *models.Profile       `json:"profile"`
}

func (h toolHandler) parseToolForm(r *http.Request) (gateway.ToolPayload, error) {
	var form toolForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return gateway.ToolPayload{}, errs.NewMalformedPayloadError("tool form", err)
	}

	if strings.TrimSpace(form.Name) == "" {
		return gateway.ToolPayload{}, errs.NewMissingRequiredFieldError("name")
	}

	status := models.ToolStatus(form.Status)
	switch status {
	case "":
		status = models.StatusLearning
	case models.StatusLearning, models.StatusBasic, models.StatusIntermediate, models.StatusMastered:
	default:
		return gateway.ToolPayload{}, errs.NewInvalidFieldError("status", form.Status)
	}

	return gateway.ToolPayload{
		Name:     strings.TrimSpace(form.Name),
		Category: form.Category,
		Status:   status,
		Progress: clampProgress(form.Progress),
	}, nil
}

// refreshedPanel re-reads tools and profile after a mutation so the panel can
// redraw without a second round trip.
func (h toolHandler) refreshedPanel(r *http.Request, message string) (toolListResponse, error) {
	tools, err := h.gw.ListTools(r.Context())
	if err != nil {
		return toolListResponse{}, err
	}
	profile, err := h.gw.GetProfile(r.Context())
	if err != nil {
		return toolListResponse{}, err
	}
	return toolListResponse{Status: "success", Message: message, Tools: tools, Profile: profile}, nil
}

// resetLearningGoal clears the profile's currently-learning line when an
// update moves the tool the profile names to MASTERED. Only updates trigger
// this; creating a tool never touches the profile. Any other tool, or an
// absent profile, leaves the profile untouched.
func (h toolHandler) resetLearningGoal(r *http.Request, tool models.LearningTool) error {
	if tool.Status != models.StatusMastered {
		return nil
	}

	profile, err := h.gw.GetProfile(r.Context())
	if err != nil || profile == nil {
		return err
	}
	if profile.CurrentlyLearning != tool.Name {
		return nil
	}

	profile.CurrentlyLearning = "Elegir nuevo objetivo..."
	profile.Status = "DISPONIBLE PARA NUEVOS RETOS"
	return h.gw.UpdateProfile(r.Context(), *profile)
}

func (h toolHandler) createTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h.parseToolForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.gw.CreateTool(r.Context(), payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		resp, err := h.refreshedPanel(r, "HABILIDAD_REGISTRADA_CON_ÉXITO")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, resp)
	}
}

func (h toolHandler) updateTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID := chi.URLParam(r, "toolID")
		if toolID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("toolID"))
			return
		}

		payload, err := h.parseToolForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tool, err := h.gw.UpdateTool(r.Context(), toolID, payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.resetLearningGoal(r, tool); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		resp, err := h.refreshedPanel(r, "HABILIDAD_ACTUALIZADA_CON_ÉXITO")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, resp)
	}
}

// deleteTool requires an explicit confirm=true query parameter; without it no
// backend call is made and the caller gets the confirmation prompt back.
func (h toolHandler) deleteTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID := chi.URLParam(r, "toolID")
		if toolID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("toolID"))
			return
		}

		if r.URL.Query().Get("confirm") != "true" {
			h.responder.WriteConfirmationRequired(w, "¿ELIMINAR_ESTE_CONOCIMIENTO_DE_LA_MATRIZ?")
			return
		}

		if err := h.gw.DeleteTool(r.Context(), toolID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		resp, err := h.refreshedPanel(r, "CONOCIMIENTO_ELIMINADO_CON_ÉXITO")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, resp)
	}
}
