// Package gateway wraps the external portfolio backend's REST surface. All
// entities are owned by that service; this client only normalizes response
// shapes and attaches the stored session token to write operations.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TianMHDev/portfolio-panel/errs"
	"github.com/TianMHDev/portfolio-panel/models"
)

// TokenSource supplies the admin session token for authorized calls. It is
// read before every request; an empty string means logged out.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  zerolog.Logger
}

// New builds a client for the backend at rawBaseURL. A trailing slash is
// stripped and the "/api" prefix is appended unless already present.
func New(rawBaseURL string, tokens TokenSource, timeout time.Duration) *Client {
	base := strings.TrimSuffix(rawBaseURL, "/")
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  log.With().Str("component", "gateway").Logger(),
	}
}

// BaseURL returns the resolved backend base URL, including the /api prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request against the backend. A transport failure maps to
// errs.ErrUnreachable and a non-2xx status to errs.ErrRequestFailed; callers
// must not assume a parsed body exists behind either.
func (c *Client) do(ctx context.Context, operation, method, path string, body any, authorized bool, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.NewMalformedPayloadError(operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.NewUnreachableError(operation, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewUnreachableError(operation, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewUnreachableError(operation, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn().
			Str("operation", operation).
			Int("status", resp.StatusCode).
			Msg("backend request failed")
		return errs.NewUpstreamError(operation, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return errs.NewMalformedPayloadError(operation, err)
		}
	}

	return nil
}

// ListProjects fetches all projects and normalizes them into the display
// vocabulary. Public read, no auth header.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var records []projectRecord
	if err := c.do(ctx, "list projects", http.MethodGet, "/projects", nil, false, &records); err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, rec.normalize())
	}
	return projects, nil
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, payload ProjectPayload) (models.Project, error) {
	var rec projectRecord
	if err := c.do(ctx, "create project", http.MethodPost, "/projects", payload, true, &rec); err != nil {
		return models.Project{}, err
	}
	return rec.normalize(), nil
}

// UpdateProject replaces the project with the given backend identifier.
func (c *Client) UpdateProject(ctx context.Context, id string, payload ProjectPayload) (models.Project, error) {
	var rec projectRecord
	if err := c.do(ctx, "update project", http.MethodPut, "/projects/"+id, payload, true, &rec); err != nil {
		return models.Project{}, err
	}
	return rec.normalize(), nil
}

// DeleteProject removes a project. There is no undo.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, "delete project", http.MethodDelete, "/projects/"+id, nil, true, nil)
}

// ListTools fetches all skill/tool records. Public read, no auth header.
func (c *Client) ListTools(ctx context.Context) ([]models.LearningTool, error) {
	var tools []models.LearningTool
	if err := c.do(ctx, "list tools", http.MethodGet, "/learning-tools", nil, false, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// CreateTool registers a new skill/tool record.
func (c *Client) CreateTool(ctx context.Context, payload ToolPayload) (models.LearningTool, error) {
	var tool models.LearningTool
	if err := c.do(ctx, "create tool", http.MethodPost, "/learning-tools", payload, true, &tool); err != nil {
		return models.LearningTool{}, err
	}
	return tool, nil
}

// UpdateTool replaces the tool with the given backend identifier.
func (c *Client) UpdateTool(ctx context.Context, id string, payload ToolPayload) (models.LearningTool, error) {
	var tool models.LearningTool
	if err := c.do(ctx, "update tool", http.MethodPut, "/learning-tools/"+id, payload, true, &tool); err != nil {
		return models.LearningTool{}, err
	}
	return tool, nil
}

// DeleteTool removes a skill/tool record.
func (c *Client) DeleteTool(ctx context.Context, id string) error {
	return c.do(ctx, "delete tool", http.MethodDelete, "/learning-tools/"+id, nil, true, nil)
}

// GetProfile fetches the singleton profile. The backend is allowed to have no
// profile yet: a non-success status or a JSON null body yields (nil, nil), not
// an error. Only a transport failure is reported.
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profile", nil)
	if err != nil {
		return nil, errs.NewUnreachableError("get profile", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.NewUnreachableError("get profile", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewUnreachableError("get profile", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, nil
	}

	var profile *models.Profile
	if err := json.Unmarshal(bodyBytes, &profile); err != nil {
		return nil, errs.NewMalformedPayloadError("get profile", err)
	}
	return profile, nil
}

// UpdateProfile performs a full-record replacement of the singleton profile.
func (c *Client) UpdateProfile(ctx context.Context, profile models.Profile) error {
	return c.do(ctx, "update profile", http.MethodPost, "/profile", profile, true, nil)
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges admin credentials for an opaque session token. A non-success
// status is reported as errs.ErrLoginRejected.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", credentials{username, password}, false, &resp)
	if err != nil {
		if errs.IsRequestFailed(err) {
			return "", errs.NewLoginRejectedError()
		}
		return "", err
	}

	if resp.Token == "" {
		return "", errs.NewMalformedPayloadError("login", errors.New("backend returned an empty token"))
	}
	return resp.Token, nil
}

// SendMessage forwards a contact-form submission to the backend.
func (c *Client) SendMessage(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, "send message", http.MethodPost, "/contact", msg, false, nil)
}
