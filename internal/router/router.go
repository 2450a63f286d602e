package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"service_marketplace/internal/config"
	"service_marketplace/internal/handler"
	"service_marketplace/internal/middleware"
	"service_marketplace/internal/service"
	"service_marketplace/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Pinger reports database reachability for /health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies is everything the HTTP layer is built from
type Dependencies struct {
	Config         *config.Config
	Logger         *slog.Logger
	DB             Pinger
	AuthService    service.AuthService
	WorkerService  service.WorkerService
	BookingService service.BookingService
}

// New builds the gin engine with middleware and all routes registered
func New(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Server.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(deps.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.SessionAuthMiddleware(deps.AuthService, deps.Config.Session.CookieName, deps.Logger))

	v := validation.New()
	cookie := handler.CookieConfig{
		Name:   deps.Config.Session.CookieName,
		MaxAge: int(deps.Config.SessionTTL().Seconds()),
		Secure: deps.Config.Session.CookieSecure,
	}

	authHandler := handler.NewAuthHandler(deps.AuthService, v, cookie, deps.Logger)
	workerHandler := handler.NewWorkerHandler(deps.WorkerService, v, deps.Logger)
	bookingHandler := handler.NewBookingHandler(deps.BookingService, v, deps.Logger)

	authMW := middleware.RequireAuth()
	workerMW := middleware.WorkerOnly()
	customerMW := middleware.CustomerOnly()

	api := r.Group("/api")
	authHandler.RegisterAuthRoutes(api, authMW)
	workerHandler.RegisterWorkerRoutes(api, authMW, workerMW)
	bookingHandler.RegisterBookingRoutes(api, authMW, customerMW)

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := deps.DB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}
