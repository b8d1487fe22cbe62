package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/ner-eval/internal/dto"
	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler writes every handler error as a failed dto.CommonResult.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		status, msg := classify(err)
		if status >= http.StatusInternalServerError {
			slog.Error("Unhandled error", "error", err, "requestId", requestID)
		}

		res := dto.NewResult(requestID).WithMessage(msg).Fail(status)
		_ = c.JSON(status, res)
	}
}

func classify(err error) (int, string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if IsNotFound(err) {
		return http.StatusNotFound, err.Error()
	}

	return http.StatusInternalServerError, err.Error()
}
