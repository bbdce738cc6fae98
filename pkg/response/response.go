package response

import (
	"errors"
	"time"

	"github.com/ecommerce-catalog/catalog-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the wire shape of every error payload.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// WriteErrorResponse classifies err, logs it when it is unexpected and
// writes the structured error body. Internal failures keep their detail
// server-side and report a generic message to the caller.
func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	message := err.Error()
	if statusCode == errs.ErrStatusInternalServer {
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
		message = errs.ErrInternalServer.Error()
	} else if !errors.Is(err, errs.ErrNotFound) {
		log.Warn().Err(err).Str("path", c.Request().URL.Path).Msg("")
	}

	resp := ErrorResponse{
		Status:    statusCode,
		Message:   message,
		Path:      c.Request().URL.Path,
		Timestamp: time.Now(),
	}

	return c.JSON(statusCode, resp)
}
