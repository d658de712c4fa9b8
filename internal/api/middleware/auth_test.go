package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medrecords/patient-system/internal/auth"
	"github.com/medrecords/patient-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[int]*domain.PublicUser
}

func (r *stubUserRepo) FindByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.PublicUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(context.Context, string, string, string) (*domain.PublicUser, error) {
	return nil, domain.ErrUserExists
}

func (r *stubUserRepo) SetDisabled(_ context.Context, id int, disabled bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsDisabled = disabled
	return nil
}

func signedToken(t *testing.T, tm *auth.TokenManager, id int, username, role string) string {
	t.Helper()
	token, err := tm.Issue(id, username, role)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tm := auth.NewTokenManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[int]*domain.PublicUser{
		1: {ID: 1, Username: "admin", Role: "admin"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, tm, 1, "admin", "admin"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tm, repo)(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != 1 {
			t.Fatalf("user id not set")
		}
		if c.Get(CtxUsername) != "admin" {
			t.Fatalf("username not set")
		}
		if c.Get(CtxRole) != "admin" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	tm := auth.NewTokenManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[int]*domain.PublicUser{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tm, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	tm := auth.NewTokenManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[int]*domain.PublicUser{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tm, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	tm := auth.NewTokenManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[int]*domain.PublicUser{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tm, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	e := echo.New()
	other := auth.NewTokenManager("other-secret", time.Hour)
	tm := auth.NewTokenManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[int]*domain.PublicUser{
		1: {ID: 1, Username: "admin", Role: "admin"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, other, 1, "admin", "admin"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tm, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// A valid token must be rejected once its account is disabled or gone: the
// gate re-checks the live store, not just the claims.
func TestAuthMiddleware_DisabledUser(t *testing.T) {
	e := echo.New()
	tm := auth.NewTokenManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[int]*domain.PublicUser{
		2: {ID: 2, Username: "bob", Role: "user"},
	}}

	token := signedToken(t, tm, 2, "bob", "user")
	if err := repo.SetDisabled(context.Background(), 2, true); err != nil {
		t.Fatalf("disable user: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tm, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for disabled account, got %d", rec.Code)
	}
}

func TestAuthMiddleware_VanishedUser(t *testing.T) {
	e := echo.New()
	tm := auth.NewTokenManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[int]*domain.PublicUser{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, tm, 42, "ghost", "admin"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tm, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown account, got %d", rec.Code)
	}
}
