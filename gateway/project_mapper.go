package gateway

import (
	"strconv"

	"github.com/TianMHDev/portfolio-panel/models"
)

// ProjectPayload is the write shape the backend expects. The backend keeps its
// own field vocabulary (architecture, technologies, demoUrl, imageUrls); the
// admin controllers translate form values into this shape.
type ProjectPayload struct {
	Title        string   `json:"title"`
	Architecture string   `json:"architecture"`
	Description  string   `json:"description"`
	Problem      string   `json:"problem"`
	Learning     string   `json:"learning"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"`
	DemoURL      string   `json:"demoUrl"`
	ImageURLs    []string `json:"imageUrls"`
	Version      string   `json:"version"`
}

// ToolPayload is the write shape for skill/tool records.
type ToolPayload struct {
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Status   models.ToolStatus `json:"status"`
	Progress int               `json:"progress"`
}

// projectRecord accepts both the backend vocabulary and the display one, so a
// record that already carries display fields passes through unchanged.
type projectRecord struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Architecture string   `json:"architecture"`
	Stack        []string `json:"stack"`
	Technologies []string `json:"technologies"`
	Description  string   `json:"description"`
	Problem      string   `json:"problem"`
	Learning     string   `json:"learning"`
	Features     []string `json:"features"`
	GithubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	DemoURL      string   `json:"demoUrl"`
	ImageURLs    []string `json:"imageUrls"`
	ImageURL     string   `json:"imageUrl"`
	Version      string   `json:"version"`
}

// normalize maps a backend project record to the display model:
// architecture wins over category, technologies over stack, demoUrl over
// liveUrl, and the imageUrls list over the legacy single imageUrl field. The
// image sequence is empty only when neither image field is present.
func (r projectRecord) normalize() models.Project {
	category := r.Architecture
	if category == "" {
		category = r.Category
	}
	if category == "" {
		category = "BACKEND"
	}

	stack := r.Technologies
	if len(stack) == 0 {
		stack = r.Stack
	}
	if stack == nil {
		stack = []string{}
	}

	caption := r.Title
	if caption == "" {
		caption = "Project Screenshot"
	}

	images := []models.ProjectImage{}
	switch {
	case len(r.ImageURLs) > 0:
		for _, url := range r.ImageURLs {
			images = append(images, models.ProjectImage{URL: url, Caption: caption, Type: "screenshot"})
		}
	case r.ImageURL != "":
		images = append(images, models.ProjectImage{URL: r.ImageURL, Caption: caption, Type: "screenshot"})
	}

	liveURL := r.DemoURL
	if liveURL == "" {
		liveURL = r.LiveURL
	}

	return models.Project{
		ID:          strconv.FormatInt(r.ID, 10),
		Title:       r.Title,
		Category:    category,
		Stack:       stack,
		Description: r.Description,
		Problem:     r.Problem,
		Learning:    r.Learning,
		Features:    r.Features,
		GithubURL:   r.GithubURL,
		LiveURL:     liveURL,
		Images:      images,
		Version:     r.Version,
	}
}
