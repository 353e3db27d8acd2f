package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/user-auth-api/internal/core/domain"
)

func fireError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account disabled", domain.ErrAccountDisabled, http.StatusUnauthorized},
		{"wrong password", domain.ErrWrongPassword, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := fireError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["success"] != false {
				t.Fatalf("expected success=false envelope: %+v", resp)
			}
			if resp["message"] == "" {
				t.Fatalf("expected message in envelope")
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	rec := fireError(t, errors.New("pq: connection refused at 10.0.0.3"))

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "internal server error" {
		t.Fatalf("internal details leaked: %v", resp["message"])
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec := fireError(t, &domain.ValidationError{Fields: []domain.FieldError{
		{Field: "email", Message: "email must be a valid email"},
		{Field: "password", Message: "password is required"},
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	errs, ok := resp["errors"].([]any)
	if !ok || len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", resp["errors"])
	}
	first := errs[0].(map[string]any)
	if first["field"] != "email" || first["message"] == "" {
		t.Fatalf("unexpected field error shape: %+v", first)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec := fireError(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
