package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies client errors by the HTTP status they map to.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
)

// AppError is a client-facing error carrying its kind alongside a
// human-readable message. Services return these; handlers map them to
// a status code via RespondError without inspecting message text.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Status returns the HTTP status code for the error kind.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func ValidationError(format string, args ...any) error {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(format string, args ...any) error {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func ConflictError(format string, args ...any) error {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// RespondError writes a JSON error body for err. AppErrors keep their
// message and mapped status; anything else becomes an opaque 500.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
		return
	}
	GetLogger().Error("unexpected handler error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred. Please try again later."})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}
