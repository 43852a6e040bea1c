package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/TianMHDev/portfolio-panel/gateway"
	"github.com/TianMHDev/portfolio-panel/models"
	"github.com/TianMHDev/portfolio-panel/reconcile"
	"github.com/TianMHDev/portfolio-panel/seed"
	"github.com/TianMHDev/portfolio-panel/session"
)

// fakeBackend stands in for the external portfolio backend. Every request is
// counted under "METHOD /path" so tests can assert exactly which upstream
// calls a handler made.
type fakeBackend struct {
	mu                sync.Mutex
	calls             map[string]int
	profile           *models.Profile
	tools             []models.LearningTool
	lastProfileUpdate *models.Profile
	lastProjectWrite  *gateway.ProjectPayload
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: map[string]int{}}
}

func (b *fakeBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.calls[r.Method+" "+r.URL.Path]++
	b.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/auth/login":
		var creds struct{ Username, Password string }
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "pass" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})

	case r.Method == http.MethodGet && r.URL.Path == "/api/projects":
		w.Write([]byte("[]"))

	case r.Method == http.MethodPost && r.URL.Path == "/api/projects":
		var payload gateway.ProjectPayload
		json.NewDecoder(r.Body).Decode(&payload)
		b.mu.Lock()
		b.lastProjectWrite = &payload
		b.mu.Unlock()
		w.Write([]byte(`{"id":1,"title":"` + payload.Title + `"}`))

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/projects/"):
		w.Write([]byte("{}"))

	case r.Method == http.MethodGet && r.URL.Path == "/api/learning-tools":
		b.mu.Lock()
		tools := b.tools
		b.mu.Unlock()
		if tools == nil {
			tools = []models.LearningTool{}
		}
		json.NewEncoder(w).Encode(tools)

	case (r.Method == http.MethodPost && r.URL.Path == "/api/learning-tools") ||
		(r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/learning-tools/")):
		var payload gateway.ToolPayload
		json.NewDecoder(r.Body).Decode(&payload)
		json.NewEncoder(w).Encode(models.LearningTool{
			ID:       3,
			Name:     payload.Name,
			Category: payload.Category,
			Status:   payload.Status,
			Progress: payload.Progress,
		})

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/learning-tools/"):
		w.Write([]byte("{}"))

	case r.Method == http.MethodGet && r.URL.Path == "/api/profile":
		b.mu.Lock()
		profile := b.profile
		b.mu.Unlock()
		if profile == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(profile)

	case r.Method == http.MethodPost && r.URL.Path == "/api/profile":
		var profile models.Profile
		json.NewDecoder(r.Body).Decode(&profile)
		b.mu.Lock()
		b.lastProfileUpdate = &profile
		b.profile = &profile
		b.mu.Unlock()
		w.Write([]byte("{}"))

	case r.Method == http.MethodPost && r.URL.Path == "/api/contact":
		w.Write([]byte("{}"))

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type memTokenStore struct {
	mu    sync.Mutex
	token string
}

func (m *memTokenStore) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memTokenStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memTokenStore) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type testEnv struct {
	router  http.Handler
	backend *fakeBackend
	gate    *session.Gate
	cookies session.Cookies
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	backend := newFakeBackend()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	gate := session.New(&memTokenStore{})
	cookies := session.NewCookies("test-key", time.Hour)
	gw := gateway.New(server.URL, gate, 5*time.Second)

	deps := Deps{
		Gateway: gw,
		Engine:  reconcile.New(gw),
		Gate:    gate,
		Cookies: cookies,
	}

	return testEnv{
		router:  newRouter(deps),
		backend: backend,
		gate:    gate,
		cookies: cookies,
	}
}

func (e testEnv) do(t *testing.T, method, target string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// login runs the real login flow and returns the issued session cookie.
func (e testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/admin/login", map[string]string{
		"username": "admin", "password": "pass",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestLogin(t *testing.T) {
	t.Run("success stores the token and issues a cookie", func(t *testing.T) {
		env := newTestEnv(t)

		cookie := env.login(t)
		if cookie.Value == "" {
			t.Error("expected a signed session cookie")
		}
		if !env.gate.LoggedIn() {
			t.Error("gate should be logged in after a successful login")
		}
		if env.gate.Token() != "tok-123" {
			t.Errorf("unexpected stored token %q", env.gate.Token())
		}
	})

	t.Run("rejected credentials store nothing", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/admin/login", map[string]string{
			"username": "admin", "password": "wrong",
		}, nil)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
		if env.gate.LoggedIn() {
			t.Error("gate must stay logged out after a rejected login")
		}
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == session.CookieName {
				t.Error("rejected login must not issue a session cookie")
			}
		}
	})

	t.Run("missing credentials never reach the backend", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/admin/login", map[string]string{"username": "admin"}, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if env.backend.count("POST /api/auth/login") != 0 {
			t.Error("validation failure still called the backend")
		}
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodPost, "/admin/logout", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if env.gate.LoggedIn() {
		t.Error("gate should be logged out after logout")
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge != -1 {
			t.Error("logout must expire the session cookie")
		}
	}
}

func TestAdminSurfaceRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no cookie", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/admin/projects", nil, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("valid cookie but no stored token", func(t *testing.T) {
		cookie := env.login(t)
		if err := env.gate.Clear(); err != nil {
			t.Fatal(err)
		}

		rec := env.do(t, http.MethodGet, "/admin/projects", nil, cookie)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}

func TestDeleteProjectConfirmation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	t.Run("without confirm nothing is deleted", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/admin/projects/7", nil, cookie)

		if rec.Code != http.StatusPreconditionRequired {
			t.Errorf("expected 428, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["prompt"] != "¿ELIMINAR_ESTE_RECURSO_PERMANENTEMENTE?" {
			t.Errorf("unexpected prompt %q", body["prompt"])
		}
		if env.backend.count("DELETE /api/projects/7") != 0 {
			t.Error("unconfirmed delete reached the backend")
		}
	})

	t.Run("with confirm the project is deleted and the list refreshed", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/admin/projects/7?confirm=true", nil, cookie)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["message"] != "RECURSO_ELIMINADO_DE_LA_RED" {
			t.Errorf("unexpected message %q", body["message"])
		}
		if env.backend.count("DELETE /api/projects/7") != 1 {
			t.Error("confirmed delete did not reach the backend exactly once")
		}
		if env.backend.count("GET /api/projects") != 1 {
			t.Error("response should carry a refreshed project list")
		}
	})
}

func TestCreateProjectTransformsFormFields(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodPost, "/admin/projects", map[string]any{
		"title":       "ORBIT",
		"category":    "FULLSTACK",
		"stack":       "Go, React",
		"description": "Plataforma de despliegue",
		"features":    "Login\nDashboard\n",
		"liveUrl":     "https://orbit.example.com",
		"imageUrl1":   "a.png",
		"imageUrl4":   "d.png",
	}, cookie)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	env.backend.mu.Lock()
	payload := env.backend.lastProjectWrite
	env.backend.mu.Unlock()
	if payload == nil {
		t.Fatal("backend never received the project")
	}
	if payload.Architecture != "FULLSTACK" {
		t.Errorf("category not mapped to architecture: %q", payload.Architecture)
	}
	if payload.DemoURL != "https://orbit.example.com" {
		t.Errorf("liveUrl not mapped to demoUrl: %q", payload.DemoURL)
	}
	if len(payload.Technologies) != 2 || payload.Technologies[1] != "React" {
		t.Errorf("stack not split: %v", payload.Technologies)
	}
	if len(payload.Features) != 2 {
		t.Errorf("features not split by line: %v", payload.Features)
	}
	if len(payload.ImageURLs) != 2 || payload.ImageURLs[1] != "d.png" {
		t.Errorf("image slots not collected: %v", payload.ImageURLs)
	}
	if payload.Version != "1.0.0" {
		t.Errorf("version not defaulted: %q", payload.Version)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	forms := []map[string]any{
		{"description": "sin título", "stack": "Go"},
		{"title": "ORBIT", "stack": "Go"},
		{"title": "ORBIT", "description": "sin stack"},
	}
	for _, form := range forms {
		rec := env.do(t, http.MethodPost, "/admin/projects", form, cookie)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %v, got %d", form, rec.Code)
		}
	}
	if env.backend.count("POST /api/projects") != 0 {
		t.Error("invalid form still reached the backend")
	}
}

func TestMasteredToolResetsLearningGoal(t *testing.T) {
	t.Run("matching tool clears the profile goal", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.profile = &models.Profile{ID: 1, Name: "TIAN", CurrentlyLearning: "Rust"}
		cookie := env.login(t)

		rec := env.do(t, http.MethodPut, "/admin/tools/3", map[string]any{
			"name": "Rust", "category": "BACKEND", "status": "MASTERED", "progress": 100,
		}, cookie)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		env.backend.mu.Lock()
		updated := env.backend.lastProfileUpdate
		env.backend.mu.Unlock()
		if updated == nil {
			t.Fatal("profile was not reset")
		}
		if updated.CurrentlyLearning != "Elegir nuevo objetivo..." {
			t.Errorf("unexpected learning goal %q", updated.CurrentlyLearning)
		}
		if updated.Status != "DISPONIBLE PARA NUEVOS RETOS" {
			t.Errorf("unexpected status %q", updated.Status)
		}
		if env.backend.count("POST /api/profile") != 1 {
			t.Errorf("expected exactly one profile update, got %d", env.backend.count("POST /api/profile"))
		}
	})

	t.Run("non-matching tool leaves the profile alone", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.profile = &models.Profile{ID: 1, Name: "TIAN", CurrentlyLearning: "Rust"}
		cookie := env.login(t)

		rec := env.do(t, http.MethodPut, "/admin/tools/3", map[string]any{
			"name": "Go", "status": "MASTERED",
		}, cookie)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if env.backend.count("POST /api/profile") != 0 {
			t.Error("profile was updated for an unrelated tool")
		}
	})

	t.Run("creating a mastered tool never touches the profile", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.profile = &models.Profile{ID: 1, Name: "TIAN", CurrentlyLearning: "Rust"}
		cookie := env.login(t)

		rec := env.do(t, http.MethodPost, "/admin/tools", map[string]any{
			"name": "Rust", "category": "BACKEND", "status": "MASTERED", "progress": 100,
		}, cookie)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if env.backend.count("POST /api/profile") != 0 {
			t.Errorf("create must not reset the learning goal, got %d profile updates",
				env.backend.count("POST /api/profile"))
		}
	})

	t.Run("non-mastered statuses never touch the profile", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.profile = &models.Profile{ID: 1, Name: "TIAN", CurrentlyLearning: "Rust"}
		cookie := env.login(t)

		rec := env.do(t, http.MethodPut, "/admin/tools/3", map[string]any{
			"name": "Rust", "status": "INTERMEDIATE",
		}, cookie)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if env.backend.count("POST /api/profile") != 0 {
			t.Error("profile was updated below MASTERED")
		}
	})
}

func TestToolValidation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	t.Run("missing name", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/admin/tools", map[string]any{"category": "BACKEND"}, cookie)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/admin/tools", map[string]any{
			"name": "Go", "status": "WIZARD",
		}, cookie)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDeleteToolConfirmation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodDelete, "/admin/tools/3", nil, cookie)
	if rec.Code != http.StatusPreconditionRequired {
		t.Errorf("expected 428, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["prompt"] != "¿ELIMINAR_ESTE_CONOCIMIENTO_DE_LA_MATRIZ?" {
		t.Errorf("unexpected prompt %q", body["prompt"])
	}
	if env.backend.count("DELETE /api/learning-tools/3") != 0 {
		t.Error("unconfirmed delete reached the backend")
	}
}

func TestUpdateProfileDefaultsSingletonID(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodPost, "/admin/profile", map[string]any{
		"name": "TIAN", "role": "BACKEND DEVELOPER",
	}, cookie)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env.backend.mu.Lock()
	updated := env.backend.lastProfileUpdate
	env.backend.mu.Unlock()
	if updated == nil || updated.ID != 1 {
		t.Errorf("expected singleton id 1, got %+v", updated)
	}
}

func TestContactForm(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing field never reaches the backend", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/contact", map[string]string{
			"name": "Ana", "message": "Hola",
		}, nil)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if env.backend.count("POST /api/contact") != 0 {
			t.Error("invalid submission still forwarded")
		}
	})

	t.Run("valid submission is forwarded", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/contact", map[string]string{
			"name": "Ana", "email": "ana@example.com", "message": "Hola",
		}, nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["message"] != "¡MENSAJE ENVIADO CON ÉXITO! TE RESPONDERÉ MUY PRONTO." {
			t.Errorf("unexpected message %q", body["message"])
		}
	})
}

func TestPortfolioViewDegradesToSeed(t *testing.T) {
	backend := newFakeBackend()
	server := httptest.NewServer(backend)
	server.Close() // backend is down

	gate := session.New(&memTokenStore{})
	gw := gateway.New(server.URL, gate, time.Second)
	deps := Deps{
		Gateway: gw,
		Engine:  reconcile.New(gw),
		Gate:    gate,
		Cookies: session.NewCookies("test-key", time.Hour),
	}
	router := newRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/view/portfolio", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("public view must render with the backend down, got %d", rec.Code)
	}

	var snap reconcile.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("response is not a snapshot: %v", err)
	}
	if snap.Hero != seed.Hero() {
		t.Errorf("expected seed hero, got %+v", snap.Hero)
	}
	if len(snap.Projects) != len(seed.Projects()) {
		t.Errorf("expected seed projects, got %d", len(snap.Projects))
	}
}
