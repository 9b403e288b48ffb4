package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pawsitive/handlers"
	"pawsitive/middleware"
)

// RegisterScheduleRoutes registers the slot and booking endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/slots", hb.Scheduling.ListSlots)
		api.POST("/slots", hb.Scheduling.CreateSlot)
		api.DELETE("/slots/:id", hb.Scheduling.DeleteSlot)
		api.GET("/bookings", hb.Scheduling.ListBookings)
		api.POST("/bookings", hb.Scheduling.CreateBooking)
		api.PATCH("/bookings/:id", hb.Scheduling.UpdateBookingStatus)
	}
}

// RegisterChatRoutes registers the visitor chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.Chat.PostMessage)
		api.GET("", hb.Chat.GetMessages)
		api.GET("/messages", hb.Chat.GetMessages)
		api.POST("/respond", hb.Chat.Respond)
		api.GET("/status", hb.Chat.Status)
	}
}

// RegisterEnquiryRoutes registers the public contact-form endpoint.
func RegisterEnquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/enquiries", hb.Enquiries.Submit)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/chat-settings", hb.Chat.GetSettings)
		adminGroup.POST("/chat-settings", hb.Chat.UpdateSettings)
		adminGroup.GET("/conversations", hb.Chat.Conversations)
		adminGroup.GET("/visitors", hb.Admin.VisitorOverview)
		adminGroup.GET("/bans", hb.Admin.ListBans)
		adminGroup.POST("/bans", hb.Admin.CreateBan)
		adminGroup.DELETE("/bans/:identifier", hb.Admin.DeleteBan)
		adminGroup.GET("/enquiries", hb.Enquiries.List)
		adminGroup.PATCH("/enquiries/:id", hb.Enquiries.Update)
		adminGroup.DELETE("/enquiries/:id", hb.Enquiries.Delete)
	}
}

// RegisterPageRoutes registers the server-rendered pages and assets.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Pages.Index)
	r.GET("/services", hb.Pages.Services)
	r.GET("/about", hb.Pages.About)
	r.GET("/contact", hb.Pages.Contact)
	r.GET("/book", hb.Pages.Booking)
	r.GET("/admin", hb.Pages.Admin)
	r.Static("/static", "./static")
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterEnquiryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterPageRoutes(r, hb)
	RegisterHealthRoute(r)
}
