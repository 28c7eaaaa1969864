package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// 404s carry {message}; every other failure carries {error}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Storage(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("request failed",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", err,
			)
		}

		if appErr.Code == http.StatusNotFound {
			response.Message(c, appErr.Code, appErr.Message)
			return
		}
		response.Error(c, appErr.Code, appErr.Message)
	}
}
