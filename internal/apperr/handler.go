package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var iie *InvalidInputError
		if errors.As(err, &iie) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": iie.Message, "title": "invalid input"})
			return
		}

		var ise *InvalidStateError
		if errors.As(err, &ise) {
			_ = c.JSON(http.StatusConflict, map[string]string{"error": ise.Message, "title": "invalid state"})
			return
		}

		var ee *ExportError
		if errors.As(err, &ee) {
			slog.Error("Export failed", "error", err)
			_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": ee.Message, "title": "export error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
