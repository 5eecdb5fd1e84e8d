package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"microfin-ledger/internal/domain/shared"
)

func statusFor(kind shared.Kind) int {
	switch kind {
	case shared.KindValidation:
		return http.StatusBadRequest
	case shared.KindNotFound:
		return http.StatusNotFound
	case shared.KindPreconditionFailed:
		return http.StatusPreconditionFailed
	case shared.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a domain error onto its status code. Anything that is not
// a DomainError is a store/internal failure: logged here, surfaced generic.
func writeError(c echo.Context, logger *zap.Logger, err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) && de.Kind != shared.KindInternal {
		return c.JSON(statusFor(de.Kind), ErrorResponse{Error: de.Message, Code: de.Code})
	}
	logger.Error("request failed",
		zap.String("path", c.Path()),
		zap.String("method", c.Request().Method),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
