package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error is an error with the HTTP status it should be reported with.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func BadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func Conflict(message string, err error) *Error {
	return New(http.StatusConflict, message, err)
}

func Unprocessable(message string, err error) *Error {
	return New(http.StatusUnprocessableEntity, message, err)
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "internal server error", err)
}

// ErrorMiddleware renders the last error attached with c.Error as
// {"error": message}. Unknown errors become a 500 and are logged.
func ErrorMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *Error
		if !errors.As(err, &appErr) {
			appErr = Internal(err)
		}
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
		c.AbortWithStatusJSON(appErr.Code, gin.H{"error": appErr.Message})
	}
}
