package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/logger"
)

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// WriteError aborts the request with the status mapped from the error code.
func WriteError(c *gin.Context, err error) {
	code := errors.GetCode(err)

	if code.IsServerError() {
		logger.FromContext(c.Request.Context()).Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(code.HTTPStatus(), ErrorBody{Error: ErrorDetail{
		Code:    string(code),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	}})
}
