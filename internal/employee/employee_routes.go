package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/nitinco/nexsphere/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret []byte) {
	// Public intake form.
	r.POST("/register-employee",
		middleware.RateLimitByIP(0.5, 3),
		handler.Register,
	)

	// HR back office.
	r.GET("/employees",
		middleware.AuthMiddleware(jwtSecret),
		middleware.RateLimitByUser(3, 10),
		handler.GetAll,
	)
}
