package middlewares

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	corsMaxAge      = 12 * time.Hour
	localhostOrigin = "http://localhost"
)

var defaultOrigins = []string{"https://yourcompany.com"}

// CORS разрешает http://localhost с любым портом, сайт компании и extraOrigins.
func CORS(extraOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(defaultOrigins)+len(extraOrigins))
	for _, origin := range append(defaultOrigins, extraOrigins...) {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, localhostOrigin) {
				return true
			}
			_, ok := allowed[origin]
			return ok
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
