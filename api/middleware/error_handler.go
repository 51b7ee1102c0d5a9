package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/streakquiz/backend/internal/apperrors"
)

// AppErrorHandler maps AppError codes onto HTTP responses. Anything
// without a code surfaces as a 500 with a generic message.
func AppErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		code = appErr.Code
		message = appErr.Message
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	if err := c.JSON(code, echo.Map{"error": message}); err != nil {
		c.Logger().Error(err)
	}
}
