package routes

import (
	"net/http"
	"time"

	"driveline/handlers"
	"driveline/middleware"
	"driveline/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Chat    *handlers.ChatHandler
	Booking *handlers.BookingHandler
	Admin   *handlers.AdminHandler
}

// RegisterChatRoutes registers the conversational endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/chat", hb.Chat.HandleChat)
}

// RegisterBookingRoutes registers the direct booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/instructors", hb.Booking.ListInstructorsHandler)
		booking.POST("/submit", hb.Booking.SubmitBookingHandler)
	}
}

// RegisterAdminRoutes sets up the read-only diagnostic endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AdminAuthMiddleware())
		admin.GET("/sessions", hb.Admin.ListSessionsHandler)
		admin.GET("/sessions/:sessionID", hb.Admin.GetSessionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
