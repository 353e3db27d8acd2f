package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-auth-api/internal/api/response"
)

const serviceVersion = "1.0.0"

// InfoHandler serves the unauthenticated GET / banner with service metadata
// and an endpoint map.
type InfoHandler struct {
	basePath string
}

func NewInfoHandler(basePath string) *InfoHandler {
	return &InfoHandler{basePath: basePath}
}

type serviceInfo struct {
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (h *InfoHandler) Banner(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Welcome to User Auth API", serviceInfo{
		Version: serviceVersion,
		Endpoints: map[string]string{
			"users":    h.basePath,
			"register": h.basePath + "/register",
			"login":    h.basePath + "/login",
			"profile":  h.basePath + "/profile",
		},
	})
}
