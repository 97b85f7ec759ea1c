package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/assettrack/asset-track-api/internal/domain"
	"github.com/assettrack/asset-track-api/internal/service"
	"github.com/assettrack/asset-track-api/internal/util"
)

type memUserRepo struct {
	users map[string]*domain.User
}

func (m *memUserRepo) Create(ctx context.Context, username string, passwordHash, passwordSalt []byte, role string) (*domain.User, error) {
	user := &domain.User{Username: username, PasswordHash: passwordHash, PasswordSalt: passwordSalt, Role: role}
	m.users[username] = user
	return user, nil
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if user, ok := m.users[username]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

type memSessionRepo struct {
	sessions map[string]*domain.Session
}

func (m *memSessionRepo) CreateSession(ctx context.Context, token string, principal domain.Principal, expiresAt time.Time) (*domain.Session, error) {
	session := &domain.Session{
		ID: int64(len(m.sessions) + 1), Token: token,
		Username: principal.Username, Role: principal.Role,
		ExpiresAt: expiresAt, IsActive: true,
	}
	m.sessions[token] = session
	clone := *session
	return &clone, nil
}

func (m *memSessionRepo) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	session, ok := m.sessions[token]
	if !ok || !session.IsActive || !time.Now().Before(session.ExpiresAt) {
		return nil, sql.ErrNoRows
	}
	clone := *session
	return &clone, nil
}

func (m *memSessionRepo) DeactivateSession(ctx context.Context, token string) error {
	if session, ok := m.sessions[token]; ok {
		session.IsActive = false
	}
	return nil
}

type memResetRepo struct {
	byToken map[string]*domain.PasswordReset
}

func (m *memResetRepo) Replace(ctx context.Context, username, token string, expiresAt time.Time) (*domain.PasswordReset, error) {
	for tok, reset := range m.byToken {
		if reset.Username == username {
			delete(m.byToken, tok)
		}
	}
	reset := &domain.PasswordReset{Username: username, Token: token, ExpiresAt: expiresAt}
	m.byToken[token] = reset
	clone := *reset
	return &clone, nil
}

func (m *memResetRepo) FindByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	if reset, ok := m.byToken[token]; ok {
		clone := *reset
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memResetRepo) Consume(ctx context.Context, token, username string, passwordHash, passwordSalt []byte) error {
	delete(m.byToken, token)
	return nil
}

type noopMailer struct {
	sent int
	err  error
}

func (n *noopMailer) SendPasswordReset(ctx context.Context, username, token string) error {
	n.sent++
	return n.err
}

func newAuthTestServer(t *testing.T) (*echo.Echo, *noopMailer) {
	t.Helper()
	users := &memUserRepo{users: map[string]*domain.User{}}
	hash, salt, err := util.DerivePassword("admin123")
	if err != nil {
		t.Fatalf("DerivePassword returned error: %v", err)
	}
	users.users["admin"] = &domain.User{Username: "admin", PasswordHash: hash, PasswordSalt: salt, Role: "admin"}

	sessions := &memSessionRepo{sessions: map[string]*domain.Session{}}
	mailer := &noopMailer{}

	auth := service.NewAuthService(users, sessions, time.Hour)
	resets := service.NewPasswordResetService(users, &memResetRepo{byToken: map[string]*domain.PasswordReset{}}, mailer, time.Hour, time.Second)

	e := echo.New()
	RegisterAuth(e, auth, resets)
	return e, mailer
}

func doJSON(e *echo.Echo, method, path, body, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) string {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName && c.Value != "" {
			return c.Name + "=" + c.Value
		}
	}
	return ""
}

func TestLoginLogoutScenario(t *testing.T) {
	e, _ := newAuthTestServer(t)

	// Wrong password: 200 with success=false and no session cookie.
	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"wrong"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on bad credentials, got %d", rec.Code)
	}
	var failBody map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &failBody); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if failBody["success"] != false {
		t.Fatalf("expected success=false, got %v", failBody["success"])
	}
	if sessionCookieFrom(rec) != "" {
		t.Fatal("no session cookie may be set on failed login")
	}

	// Correct password: success=true and a session cookie.
	rec = doJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookieFrom(rec)
	if cookie == "" {
		t.Fatal("expected session cookie on successful login")
	}

	// /me with the cookie reports the principal.
	rec = doJSON(e, http.MethodGet, "/me", "", cookie)
	var meBody map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &meBody); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if meBody["loggedIn"] != true || meBody["username"] != "admin" || meBody["role"] != "admin" {
		t.Fatalf("unexpected /me response: %v", meBody)
	}

	// Logout, then /me reports logged out.
	rec = doJSON(e, http.MethodPost, "/logout", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/me", "", cookie)
	if err := json.Unmarshal(rec.Body.Bytes(), &meBody); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if meBody["loggedIn"] != false {
		t.Fatalf("expected loggedIn=false after logout, got %v", meBody)
	}
}

func TestLoginMissingFields(t *testing.T) {
	e, _ := newAuthTestServer(t)
	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"admin"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rec.Code)
	}
}

func TestMeWithoutCookie(t *testing.T) {
	e, _ := newAuthTestServer(t)
	rec := doJSON(e, http.MethodGet, "/me", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/me must never error, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["loggedIn"] != false {
		t.Fatalf("expected loggedIn=false, got %v", body)
	}
}

func TestForgotPasswordUnknownUser(t *testing.T) {
	e, mailer := newAuthTestServer(t)
	rec := doJSON(e, http.MethodPost, "/forgot-password", `{"username":"ghost"}`, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", rec.Code)
	}
	if mailer.sent != 0 {
		t.Fatal("no mail may be sent for unknown user")
	}
}

func TestForgotPasswordDeliveryFailure(t *testing.T) {
	e, mailer := newAuthTestServer(t)
	mailer.err = context.DeadlineExceeded
	rec := doJSON(e, http.MethodPost, "/forgot-password", `{"username":"admin"}`, "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on delivery failure, got %d", rec.Code)
	}
}

func TestResetPasswordMissingFields(t *testing.T) {
	e, _ := newAuthTestServer(t)
	rec := doJSON(e, http.MethodPost, "/reset-password", `{"token":"abc"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing newPassword, got %d", rec.Code)
	}
}
