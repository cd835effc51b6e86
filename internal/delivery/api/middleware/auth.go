package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyRoles          = "roles"
	contextKeyEducationLevel = "educationLevel"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// AuthMiddleware verifies bearer tokens issued by the identity provider.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenSvc, logger: params.Logger}
}

// Authenticate validates the access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
		}

		// ValidateToken has already checked the subject.
		studentID, _ := claims.StudentID()

		deliverycontext.SetStudentID(c, studentID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))
		c.Set(contextKeyEducationLevel, claims.EducationLevel)

		return next(c)
	}
}

// RequireRole rejects callers without the role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !roles.Contains(requiredRole) {
				return domainerrors.ErrForbidden.WrapMessage("require role " + requiredRole.String())
			}

			return next(c)
		}
	}
}

// GetStudentID returns the authenticated caller.
func GetStudentID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetStudentID(c)
}

// GetRoles returns the caller's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

// IsAdmin reports whether the caller carries the admin role.
func IsAdmin(c echo.Context) bool {
	roles, ok := GetRoles(c)

	return ok && roles.Contains(entity.RoleAdmin)
}
