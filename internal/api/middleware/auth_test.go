package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-auth-api/internal/core/domain"
	"github.com/userhub/user-auth-api/internal/core/ports"
)

type stubTokens struct {
	verifyFn func(token string) (*ports.TokenClaims, error)
}

func (s *stubTokens) Issue(ports.TokenClaims) (string, error) { return "", nil }
func (s *stubTokens) Verify(token string) (*ports.TokenClaims, error) {
	return s.verifyFn(token)
}

type stubUsers struct {
	findByIDFn func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUsers) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}
func (s *stubUsers) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}
func (s *stubUsers) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubUsers) Update(context.Context, string, ports.UserUpdate) (*domain.User, error) {
	return nil, errors.New("not implemented")
}
func (s *stubUsers) TouchLastLogin(context.Context, string) error { return errors.New("not implemented") }
func (s *stubUsers) Delete(context.Context, string) error         { return errors.New("not implemented") }
func (s *stubUsers) List(context.Context, int, int) ([]*domain.User, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := &stubTokens{verifyFn: func(token string) (*ports.TokenClaims, error) {
		if token != "good" {
			t.Fatalf("unexpected token: %q", token)
		}
		return &ports.TokenClaims{UserID: "u1", Email: "alice@example.com", Role: domain.RoleAdmin}, nil
	}}
	users := &stubUsers{findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
		if id != "u1" {
			t.Fatalf("unexpected id: %q", id)
		}
		return &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleAdmin, IsActive: true}, nil
	}}

	c, rec := newAuthContext(t, "Bearer good")

	called := false
	handler := Auth(tokens, users)(func(c echo.Context) error {
		called = true
		user, ok := CurrentUser(c)
		if !ok {
			t.Fatalf("user not attached to context")
		}
		if user.ID != "u1" || user.Role != domain.RoleAdmin {
			t.Fatalf("unexpected user: %+v", user)
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

func TestAuth_MissingHeader(t *testing.T) {
	c, _ := newAuthContext(t, "")

	handler := Auth(&stubTokens{}, &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_InvalidScheme(t *testing.T) {
	c, _ := newAuthContext(t, "Token abc")

	handler := Auth(&stubTokens{}, &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := &stubTokens{verifyFn: func(string) (*ports.TokenClaims, error) {
		return nil, domain.ErrTokenInvalid
	}}
	c, _ := newAuthContext(t, "Bearer bad")

	handler := Auth(tokens, &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := &stubTokens{verifyFn: func(string) (*ports.TokenClaims, error) {
		return nil, domain.ErrTokenExpired
	}}
	c, _ := newAuthContext(t, "Bearer stale")

	handler := Auth(tokens, &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuth_UserNotFound(t *testing.T) {
	tokens := &stubTokens{verifyFn: func(string) (*ports.TokenClaims, error) {
		return &ports.TokenClaims{UserID: "gone"}, nil
	}}
	users := &stubUsers{findByIDFn: func(context.Context, string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}}
	c, _ := newAuthContext(t, "Bearer good")

	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

// A still-valid token must be rejected once the account is deactivated.
func TestAuth_DeactivatedAccount(t *testing.T) {
	tokens := &stubTokens{verifyFn: func(string) (*ports.TokenClaims, error) {
		return &ports.TokenClaims{UserID: "u1"}, nil
	}}
	users := &stubUsers{findByIDFn: func(context.Context, string) (*domain.User, error) {
		return &domain.User{ID: "u1", IsActive: false}, nil
	}}
	c, _ := newAuthContext(t, "Bearer good")

	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
