package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gescar/dealership-system/internal/core/domain"
)

type stubAuthService struct {
	token     string
	user      *domain.User
	err       error
	loggedOut []string
}

func (s *stubAuthService) Register(_ context.Context, name, email, _, role string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, &domain.User{ID: "usr_1", Name: name, Email: email, Role: role}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	u := *s.user
	u.Email = email
	return s.token, &u, nil
}

func (s *stubAuthService) Logout(_ context.Context, rawToken string) error {
	s.loggedOut = append(s.loggedOut, rawToken)
	return s.err
}

func TestAuthHandler_Register(t *testing.T) {
	e := echo.New()
	body := `{"name":"Ana","email":"ana@example.com","password":"secret1","role":"client"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(&stubAuthService{token: "tkn"})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tkn" {
		t.Errorf("expected token in response, got %q", resp.Token)
	}
	if resp.User == nil || resp.User.Role != "client" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	e := echo.New()
	body := `{"email":"ana@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(&stubAuthService{
		token: "tkn",
		user:  &domain.User{ID: "usr_1", Name: "Ana", Role: "dealer"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ana@example.com"`) {
		t.Errorf("expected user email echoed back, got: %s", rec.Body.String())
	}
}

func TestAuthHandler_LoginFailurePropagates(t *testing.T) {
	e := echo.New()
	body := `{"email":"ana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})
	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected sentinel error to propagate to the error handler, got: %v", err)
	}
}

func TestAuthHandler_LogoutUsesRawToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("raw_token", "the-token")

	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "the-token" {
		t.Errorf("expected raw token passed to service, got: %v", svc.loggedOut)
	}
}
