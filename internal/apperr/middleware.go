package apperr

import (
	"net/http"

	"fbr-invoice-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const genericMessage = "Something went wrong"

type errorBody struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Middleware renders the last error a handler attached with c.Error.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, body := mapError(lastErr.Err)
		if status >= http.StatusInternalServerError {
			logger.FromContext(c.Request.Context()).Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", status),
				zap.Error(lastErr.Err),
			)
		}
		c.AbortWithStatusJSON(status, body)
	}
}

// Abort attaches err to the context and stops the handler chain.
func Abort(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorBody) {
	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError, errorBody{Status: "error", Message: genericMessage}
	}

	status := appErr.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if appErr.Kind == KindInternal {
		return status, errorBody{Status: "error", Message: genericMessage}
	}

	body := errorBody{Status: "fail", Message: appErr.Message, Errors: appErr.Errors}
	if status >= http.StatusInternalServerError {
		body.Status = "error"
	}
	return status, body
}
