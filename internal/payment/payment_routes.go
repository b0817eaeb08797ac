package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/nitinco/nexsphere/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret []byte) {
	employerGroup := r.Group("/employer")
	{
		employerGroup.POST("/create-order",
			middleware.RateLimitByIP(0.5, 3),
			handler.CreateOrder,
		)
		employerGroup.POST("/register",
			middleware.RateLimitByIP(0.5, 3),
			handler.RegisterEmployer,
		)
		employerGroup.POST("/manual-payment",
			middleware.RateLimitByIP(0.2, 2),
			handler.ManualPayment,
		)
	}

	// Provider-to-server path; authenticated by its own HMAC signature.
	r.POST("/razorpay/webhook", handler.Webhook)

	r.GET("/payments",
		middleware.AuthMiddleware(jwtSecret),
		middleware.RateLimitByUser(3, 10),
		handler.GetAll,
	)
}
