package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/nitinco/nexsphere/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret []byte) {
	r.GET("/dashboard/stats",
		middleware.AuthMiddleware(jwtSecret),
		middleware.RateLimitByUser(5, 20),
		handler.Stats,
	)
}
