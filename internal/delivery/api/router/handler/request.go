package handler

import (
	"strconv"
	"strings"

	"uniform/internal/delivery/api/middleware"
	domainerrors "uniform/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body and runs the struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid request body")
	}

	return c.Validate(req)
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(map[string]string{name: "uuid"})
	}

	return id, nil
}

// callerID returns the authenticated student.
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetStudentID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("student ID missing from context")
	}

	return id, nil
}

// queryInt reads a non-negative integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, domainerrors.NewValidationError(map[string]string{name: "gte=0"})
	}

	return val, nil
}

// queryList splits a comma separated query parameter.
func queryList(c echo.Context, name string) []string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
