package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationID propagates the caller's correlation id, generating one when
// the header is absent.
func CorrelationID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			correlationID := c.Request().Header.Get(CorrelationIDHeader)
			if correlationID == "" {
				correlationID = uuid.New().String()
			}

			c.Set(CorrelationIDHeader, correlationID)
			c.Response().Header().Set(CorrelationIDHeader, correlationID)

			return next(c)
		}
	}
}
