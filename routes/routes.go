package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"counselhub/handlers"
	"counselhub/middleware"
	"counselhub/utils"
)

// RegisterCounselorRoutes registers counselor profile endpoints.
func RegisterCounselorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/counselors")
	{
		// Read endpoints are open to the console frontend.
		api.GET("", hb.Counselor.ListHandler)
		api.GET("/search", hb.Counselor.SearchHandler)
		api.GET("/id/:id", hb.Counselor.GetByIDHandler)
		api.GET("/email/:email", hb.Counselor.GetByEmailHandler)

		// Mutations require an operator session.
		protected := api.Group("")
		protected.Use(middleware.OperatorAuthMiddleware())
		protected.POST("", hb.Counselor.CreateHandler)
		protected.PUT("/id/:id", hb.Counselor.UpdateHandler)
		protected.DELETE("/id/:id", hb.Counselor.DeleteHandler)
		protected.POST("/id/:id/photo", hb.Storage.UploadProfileImageHandler)
	}
}

// RegisterScheduleRoutes registers availability template, materialized day,
// and booking endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/:id/availability", hb.Schedule.GetAvailabilityHandler)
		api.GET("/:id/days", hb.Schedule.ListDaysHandler)
		api.GET("/:id/days/:date", hb.Schedule.GetDayHandler)

		protected := api.Group("")
		protected.Use(middleware.OperatorAuthMiddleware())
		protected.PUT("/:id/availability", hb.Schedule.UpdateAvailabilityHandler)
		protected.POST("/:id/materialize", hb.Schedule.MaterializeHandler)
		protected.POST("/:id/days/:date/refresh", hb.Schedule.RefreshDayHandler)
		protected.POST("/:id/book", hb.Booking.BookSlotHandler)
		protected.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterCommunityRoutes registers community post and message endpoints.
func RegisterCommunityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/community")
	{
		api.GET("/posts", hb.Community.ListPostsHandler)
		api.GET("/posts/:postId", hb.Community.GetPostHandler)
		api.GET("/posts/:postId/messages", hb.Community.ListMessagesHandler)

		protected := api.Group("")
		protected.Use(middleware.OperatorAuthMiddleware())
		protected.POST("/posts", hb.Community.CreatePostHandler)
		protected.DELETE("/posts/:postId", hb.Community.DeletePostHandler)
		protected.POST("/posts/:postId/messages", hb.Community.AddMessageHandler)
	}
}

// RegisterOperatorRoutes registers console account endpoints. Registration
// is guarded by the static admin token so the first account can be created
// before any operator exists.
func RegisterOperatorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/operators")
	{
		api.POST("/login", hb.Operator.LoginHandler)
		api.POST("/register", middleware.AdminAuthMiddleware(), hb.Operator.RegisterHandler)
		api.GET("/me", middleware.OperatorAuthMiddleware(), hb.Operator.MeHandler)
	}
}

// RegisterDashboardRoutes registers the console stats endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.GET("/stats", hb.Dashboard.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.HealthCheck())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterOperatorRoutes(r, hb)
	RegisterCounselorRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterCommunityRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
