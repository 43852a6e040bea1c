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

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	gw        *gateway.Client
}

func newProjectHandler(gw *gateway.Client) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gw:        gw,
	}
}

// projectForm carries the admin form fields as typed: stack is one
// comma-delimited line, features one entry per line, and the images sit in
// four fixed slots.
type projectForm struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Stack       string `json:"stack"`
	Description string `json:"description"`
	Problem     string `json:"problem"`
	Learning    string `json:"learning"`
	Features    string `json:"features"`
	GithubURL   string `json:"githubUrl"`
	LiveURL     string `json:"liveUrl"`
	ImageURL1   string `json:"imageUrl1"`
	ImageURL2   string `json:"imageUrl2"`
	ImageURL3   string `json:"imageUrl3"`
	ImageURL4   string `json:"imageUrl4"`
	Version     string `json:"version"`
}

// toPayload translates the form vocabulary into the backend's write shape.
func (f projectForm) toPayload() gateway.ProjectPayload {
	version := strings.TrimSpace(f.Version)
	if version == "" {
		version = "1.0.0"
	}

	return gateway.ProjectPayload{
		Title:        f.Title,
		Architecture: f.Category,
		Description:  f.Description,
		Problem:      f.Problem,
		Learning:     f.Learning,
		Features:     splitLines(f.Features),
		Technologies: splitComma(f.Stack),
		GithubURL:    f.GithubURL,
		DemoURL:      f.LiveURL,
		ImageURLs:    collectImageURLs(f.ImageURL1, f.ImageURL2, f.ImageURL3, f.ImageURL4),
		Version:      version,
	}
}

type projectListResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message,omitempty"`
	Projects []models.Project `json:"projects"`
}

func (h projectHandler) parseProjectForm(r *http.Request) (gateway.ProjectPayload, error) {
	var form projectForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return gateway.ProjectPayload{}, errs.NewMalformedPayloadError("project form", err)
	}

	if strings.TrimSpace(form.Title) == "" {
		return gateway.ProjectPayload{}, errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(form.Description) == "" {
		return gateway.ProjectPayload{}, errs.NewMissingRequiredFieldError("description")
	}
	if strings.TrimSpace(form.Stack) == "" {
		return gateway.ProjectPayload{}, errs.NewMissingRequiredFieldError("stack")
	}

	return form.toPayload(), nil
}

// refreshedList re-reads the project list after a mutation so the panel can
// redraw without a second round trip.
func (h projectHandler) refreshedList(r *http.Request, message string) (projectListResponse, error) {
	projects, err := h.gw.ListProjects(r.Context())
	if err != nil {
		return projectListResponse{}, err
	}
	return projectListResponse{Status: "success", Message: message, Projects: projects}, nil
}

func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.gw.ListProjects(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projectListResponse{Status: "success", Projects: projects})
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h.parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.gw.CreateProject(r.Context(), payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		resp, err := h.refreshedList(r, "PROYECTO_CREADO_EXITOSAMENTE")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, resp)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("projectID"))
			return
		}

		payload, err := h.parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.gw.UpdateProject(r.Context(), projectID, payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		resp, err := h.refreshedList(r, "PROYECTO_ACTUALIZADO_EXITOSAMENTE")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, resp)
	}
}

// deleteProject requires an explicit confirm=true query parameter; without it
// no backend call is made and the caller gets the confirmation prompt back.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("projectID"))
			return
		}

		if r.URL.Query().Get("confirm") != "true" {
			h.responder.WriteConfirmationRequired(w, "¿ELIMINAR_ESTE_RECURSO_PERMANENTEMENTE?")
			return
		}

		if err := h.gw.DeleteProject(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		resp, err := h.refreshedList(r, "RECURSO_ELIMINADO_DE_LA_RED")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, resp)
	}
}
