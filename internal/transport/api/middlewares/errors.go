package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "not found"
	case http.StatusRequestEntityTooLarge:
		return "request entity too large"
	case http.StatusTooManyRequests:
		return "too many requests"
	case http.StatusBadGateway:
		return "bad gateway"
	default:
		return "internal server error"
	}
}

// Errors отдаёт первую ошибку запроса как {"msg": ...}.
// Публичные ошибки показывают свой текст, остальные текст статуса.
// Если хендлер уже записал тело, ответ не трогается.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		firstErr := c.Errors[0]
		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		} else {
			msg = statusErrorText(c.Writer.Status())
		}

		c.JSON(c.Writer.Status(), gin.H{"msg": msg})
		c.Abort()
	}
}
