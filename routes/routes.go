package routes

import (
	"school-catering-api/handlers"
	"school-catering-api/middleware"
	"school-catering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Landing page content
		public.GET("/landing", handlers.GetLanding)
		public.GET("/landing/hero", handlers.GetHero)
		public.GET("/landing/features", handlers.GetFeatures)
		public.GET("/landing/pricing", handlers.GetPricing)
		public.GET("/landing/testimonials", handlers.GetTestimonials)
		public.GET("/landing/footer", handlers.GetFooter)

		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Payment lifecycle info (great for docs/Postman)
		public.GET("/payment-lifecycle", handlers.GetPaymentLifecycle)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/auth/refresh", handlers.RefreshSession)
		auth.POST("/auth/logout", handlers.Logout)
	}

	// ── Parent routes ──────────────────────────────────────────────
	parent := r.Group("/api/parent")
	parent.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleParent, models.RoleAdmin))
	{
		parent.GET("/children", handlers.GetMyChildren)
		parent.GET("/orders", handlers.GetMyOrders)
		parent.POST("/orders", handlers.PlaceOrder)
	}

	// ── Cashier routes (admin can act as cashier) ──────────────────
	cashier := r.Group("/api/cashier")
	cashier.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCashier, models.RoleAdmin))
	{
		cashier.GET("/orders/pending", handlers.GetPendingOrders)
		cashier.GET("/orders/search", handlers.SearchOrders)
		cashier.POST("/orders/:id/pay", handlers.PayOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.PUT("/users/:id/role", handlers.AdminSetUserRole)
	}
}
