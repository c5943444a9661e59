package http

import (
	"errors"
	"net/http"
	"net/url"

	"zoo-procure-hub/internal/adapter/middleware"
	"zoo-procure-hub/internal/domain/apperr"
	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/infrastructure/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Warning string       `json:"warning,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

type data map[string]any

var errBadBody = errors.New("invalid body")

func respond(c echo.Context, code int, msg string, d any) error {
	return c.JSON(code, Response{Success: true, Message: msg, Data: d})
}

// fail maps domain error kinds to status codes; anything unclassified is a
// 500 whose cause is logged and not sent to the client.
func fail(c echo.Context, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind() != apperr.KindInternal {
		return c.JSON(apperr.HTTPStatus(ae.Kind()), Response{Message: ae.Message()})
	}
	logger.FromContext(c).Error("request failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, Response{Message: "Internal server error"})
}

// bind decodes the body and runs the validator; the returned error has
// already been written to the client.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, Response{Message: "invalid body"})
		return errBadBody
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(req); err != nil {
		_ = c.JSON(http.StatusUnprocessableEntity, Response{
			Message: "validation failed",
			Details: ToFieldErrors(err),
		})
		return err
	}
	return nil
}

func actor(c echo.Context) order.Actor {
	a, _ := middleware.ActorFrom(c)
	return a
}

// pathParam returns a path parameter with any percent-encoding removed.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
