package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rslist/backend/internal/dto"
	"github.com/sirupsen/logrus"
)

// respondError maps a service failure to an HTTP response. Business-rule
// violations are the caller's fault; anything else is ours.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dto.ErrEventNotFound),
		errors.Is(err, dto.ErrUserNotFound),
		errors.Is(err, dto.ErrBudgetExceeded),
		errors.Is(err, dto.ErrPaymentInsufficient),
		errors.Is(err, dto.ErrInvalidIndex),
		errors.Is(err, dto.ErrRequestInvalid):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, dto.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		logrus.Errorf("Request failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrInternalFailure.Error()})
	}
}
