package models

// ProjectImage is a single gallery entry attached to a project. Type is one of
// "api", "architecture", "screenshot" or "mockup".
type ProjectImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Type    string `json:"type"`
}

// Project is the display model for a portfolio entry. Remote records arrive in
// the backend's own vocabulary (architecture/technologies/demoUrl) and are
// normalized into this shape by the gateway before anything else sees them.
type Project struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Stack       []string       `json:"stack"`
	Description string         `json:"description"`
	Problem     string         `json:"problem"`
	Learning    string         `json:"learning"`
	Features    []string       `json:"features"`
	GithubURL   string         `json:"githubUrl"`
	LiveURL     string         `json:"liveUrl,omitempty"`
	Images      []ProjectImage `json:"images"`
	Version     string         `json:"version,omitempty"`
}
