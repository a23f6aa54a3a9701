package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// conflictErrors fail because another shipment currently owns the contested
// state. The request may succeed later without modification.
var conflictErrors = []error{
	services.ErrResourceUnavailable,
	commands.ErrOrderAlreadyDispatched,
}

// badRequestErrors fail because the request itself asks for something the
// lifecycle forbids.
var badRequestErrors = []error{
	order.ErrInvalidTransition,
	order.ErrOrderNotShippable,
	order.ErrInvalidDateRange,
	shipment.ErrInvalidTransition,
	shipment.ErrShipmentNotInTransit,
	delivery.ErrInvalidTransition,
	delivery.ErrSignatureRequired,
	delivery.ErrMaxAttemptsExceeded,
	commands.ErrRouteIsNotActive,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
}

// respondError maps a use case error onto an HTTP status and writes the
// JSON error body.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case matchesAny(err, conflictErrors):
		code = http.StatusConflict
	case matchesAny(err, badRequestErrors):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
