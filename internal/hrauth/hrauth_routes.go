package hrauth

import (
	"github.com/gin-gonic/gin"

	"github.com/nitinco/nexsphere/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	hr := r.Group("/hr")
	{
		hr.POST("/login", middleware.RateLimitByIP(0.1, 5), handler.Login)
	}
}
