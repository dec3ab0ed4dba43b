package httpx

import (
	"net/http"

	"admin-panel-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		status := serviceErrorStatus(serviceErr.Code)
		if status >= http.StatusInternalServerError {
			log.WithError(err).WithField("path", c.Request.URL.Path).Error("请求处理失败")
		}
		c.JSON(status, gin.H{"error": serviceErr.Message})
		return
	}
	log.WithError(err).WithField("path", c.Request.URL.Path).Error("请求处理失败")
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
