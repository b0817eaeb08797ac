package notification

import (
	"github.com/gin-gonic/gin"

	"github.com/nitinco/nexsphere/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret []byte) {
	r.GET("/emails",
		middleware.AuthMiddleware(jwtSecret),
		middleware.RateLimitByUser(3, 10),
		handler.GetAll,
	)
}
