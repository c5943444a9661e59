package middleware

import (
	"net/http"
	"strings"

	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/domain/user"
	"zoo-procure-hub/internal/infrastructure/auth"
	"zoo-procure-hub/internal/infrastructure/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserRoleKey = "user_role"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

func errorJSON(msg string) map[string]any {
	return map[string]any{"success": false, "message": msg}
}

// AuthJWT validates the bearer token and stores the user id and role on the context.
func AuthJWT(p TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("No token, authorization denied"))
			}

			claims, err := p.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("Token is not valid"))
			}

			c.Set(CtxUserIDKey, claims.UserID)
			c.Set(CtxUserRoleKey, claims.Role)
			logger.With(c, zap.String("user_id", claims.UserID), zap.String("role", string(claims.Role)))
			return next(c)
		}
	}
}

// ActorFrom returns the authenticated user stored by AuthJWT.
func ActorFrom(c echo.Context) (order.Actor, bool) {
	id, _ := c.Get(CtxUserIDKey).(string)
	role, _ := c.Get(CtxUserRoleKey).(user.Role)
	if id == "" || role == "" {
		return order.Actor{}, false
	}
	return order.Actor{UserID: id, Role: role}, true
}

// RequireRoles lets the request through only for the listed roles.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("No token, authorization denied"))
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, errorJSON("Access denied"))
		}
	}
}
