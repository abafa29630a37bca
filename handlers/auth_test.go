package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"workmate/client"
	"workmate/models"
	"workmate/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubAuthClient resolves logins against a fixed account set.
type stubAuthClient struct {
	accounts map[string]models.Identity // email -> identity
}

func (s *stubAuthClient) Login(ctx context.Context, email, password string, role models.Role) (*models.Identity, error) {
	id, ok := s.accounts[email]
	if !ok || password != "pw" {
		return nil, fmt.Errorf("%w: Invalid credentials", client.ErrInvalidCredentials)
	}
	cp := id
	cp.Role = role
	return &cp, nil
}

func (s *stubAuthClient) Register(ctx context.Context, reg models.Registration) (*models.Identity, error) {
	if _, exists := s.accounts[reg.Email]; exists {
		return nil, fmt.Errorf("%w: Email already exists", client.ErrInvalidInput)
	}
	id := models.Identity{ID: "9", Name: reg.Name, Email: reg.Email, Role: reg.Role}
	s.accounts[reg.Email] = id
	return &id, nil
}

type nopPersist struct{}

func (nopPersist) Save(ctx context.Context, id models.Identity) error { return nil }
func (nopPersist) Load(ctx context.Context) (*models.Identity, error) { return nil, nil }
func (nopPersist) Clear(ctx context.Context) error                    { return nil }

func newAuthRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := &stubAuthClient{accounts: map[string]models.Identity{
		"a@x.com": {ID: "1", Name: "A", Email: "a@x.com"},
	}}
	sessions := session.NewStore(stub, nopPersist{}, zap.NewNop())
	h := NewAuthHandler(sessions)

	r := gin.New()
	r.GET("/login", h.LoginPageHandler)
	r.POST("/login", h.LoginHandler)
	r.POST("/register", h.RegisterHandler)
	r.POST("/logout", h.LogoutHandler)
	r.GET("/session", h.SessionHandler)
	return r, sessions
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		path         string
		wantStatus   int
		wantRedirect string
	}{
		{
			name:         "valid student login",
			body:         `{"email":"a@x.com","password":"pw","type":"student"}`,
			path:         "/login",
			wantStatus:   http.StatusOK,
			wantRedirect: "/student",
		},
		{
			name:         "login resumes recorded destination",
			body:         `{"email":"a@x.com","password":"pw","type":"student"}`,
			path:         "/login?next=%2Fstudent%2Fjobs",
			wantStatus:   http.StatusOK,
			wantRedirect: "/student/jobs",
		},
		{
			name:         "protocol-relative next falls back to the dashboard",
			body:         `{"email":"a@x.com","password":"pw","type":"student"}`,
			path:         "/login?next=" + url.QueryEscape("//evil.example.com/phish"),
			wantStatus:   http.StatusOK,
			wantRedirect: "/student",
		},
		{
			name:         "backslash-escaped next falls back to the dashboard",
			body:         `{"email":"a@x.com","password":"pw","type":"student"}`,
			path:         "/login?next=" + url.QueryEscape(`/\evil.example.com`),
			wantStatus:   http.StatusOK,
			wantRedirect: "/student",
		},
		{
			name:         "absolute URL next falls back to the dashboard",
			body:         `{"email":"a@x.com","password":"pw","type":"student"}`,
			path:         "/login?next=" + url.QueryEscape("https://evil.example.com"),
			wantStatus:   http.StatusOK,
			wantRedirect: "/student",
		},
		{
			name:       "wrong password",
			body:       `{"email":"a@x.com","password":"nope","type":"student"}`,
			path:       "/login",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       `{"email":"a@x.com"}`,
			path:       "/login",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown role",
			body:       `{"email":"a@x.com","password":"pw","type":"admin"}`,
			path:       "/login",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			router, sessions := newAuthRouter(t)

			w := postJSON(router, test.path, test.body)

			if w.Code != test.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, test.wantStatus, w.Body.String())
			}
			if test.wantStatus != http.StatusOK {
				// Failed attempts must not establish a session.
				if sessions.Current() != nil {
					t.Error("session established by failed login")
				}
				return
			}

			var resp struct {
				User     models.Identity `json:"user"`
				Redirect string          `json:"redirect"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Redirect != test.wantRedirect {
				t.Errorf("redirect = %q, want %q", resp.Redirect, test.wantRedirect)
			}
			cur := sessions.Current()
			if cur == nil || cur.ID != resp.User.ID {
				t.Errorf("Current() = %+v, response user = %+v", cur, resp.User)
			}
		})
	}
}

func TestLoginPageHandler(t *testing.T) {
	router, _ := newAuthRouter(t)

	tests := []struct {
		name     string
		path     string
		wantNext string
	}{
		{
			name: "plain visit gets the prompt",
			path: "/login",
		},
		{
			name:     "recorded destination is echoed",
			path:     "/login?next=%2Fstudent%2Fjobs",
			wantNext: `"next":"/student/jobs"`,
		},
		{
			name: "external destination is not echoed",
			path: "/login?next=" + url.QueryEscape("//evil.example.com"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, test.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			body := w.Body.String()
			if test.wantNext != "" && !strings.Contains(body, test.wantNext) {
				t.Errorf("body = %s, want it to contain %s", body, test.wantNext)
			}
			if test.wantNext == "" && strings.Contains(body, `"next"`) {
				t.Errorf("body = %s, want no next field", body)
			}
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	router, sessions := newAuthRouter(t)

	body := `{"name":"Acme","email":"jobs@acme.com","password":"pw","type":"provider","company":"Acme Inc"}`
	w := postJSON(router, "/register", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	cur := sessions.Current()
	if cur == nil || cur.Role != models.RoleProvider {
		t.Errorf("Current() = %+v, want provider session (auto-login)", cur)
	}

	// Duplicate registration fails and must not clobber the session.
	w = postJSON(router, "/register", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate status = %d, want 400", w.Code)
	}
	if sessions.Current() == nil {
		t.Error("failed registration cleared the session")
	}
}

func TestLogoutHandler(t *testing.T) {
	router, sessions := newAuthRouter(t)
	postJSON(router, "/login", `{"email":"a@x.com","password":"pw","type":"student"}`)

	for i := 0; i < 2; i++ {
		w := postJSON(router, "/logout", "")
		if w.Code != http.StatusOK {
			t.Fatalf("logout #%d status = %d, want 200", i+1, w.Code)
		}
	}
	if sessions.Current() != nil {
		t.Error("session survived logout")
	}
}

func TestSessionHandler(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))
	if !strings.Contains(w.Body.String(), `"authenticated":false`) {
		t.Errorf("anonymous session body = %s", w.Body.String())
	}

	postJSON(router, "/login", `{"email":"a@x.com","password":"pw","type":"student"}`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))
	if !strings.Contains(w.Body.String(), `"authenticated":true`) {
		t.Errorf("authenticated session body = %s", w.Body.String())
	}
}
