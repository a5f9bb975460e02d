package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"roomservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// errorKind classifies err for status mapping and metric labels.
func errorKind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errs.IsValidation(err):
		return "validation"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrInvalidState):
		return "invalid_state"
	default:
		return "error"
	}
}

func statusFor(kind string) int {
	switch kind {
	case "validation", "invalid_state":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {error: message}. Client errors carry their own
// message; everything else is logged with its stack and hidden behind a
// generic message.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusFor(errorKind(err))
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", fmt.Sprintf("%+v", err),
		)
		return ctx.JSON(status, ErrorResponse{Error: internalErrorMessage})
	}

	return ctx.JSON(status, ErrorResponse{Error: err.Error()})
}

// HTTPErrorHandler renders errors returned by middleware and routing
// (unknown routes, bad parameters, panics) in the same JSON shape.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := internalErrorMessage

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if status < http.StatusInternalServerError {
				message = fmt.Sprint(he.Message)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "error", fmt.Sprintf("%+v", err))
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, ErrorResponse{Error: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
