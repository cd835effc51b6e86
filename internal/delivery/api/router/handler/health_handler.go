package handler

import (
	"net/http"

	"uniform/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the API process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
