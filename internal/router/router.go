package router

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/taskhub-dev/taskhub/internal/handlers"
	"github.com/taskhub-dev/taskhub/internal/metrics"
	"github.com/taskhub-dev/taskhub/internal/middleware"
	"github.com/taskhub-dev/taskhub/internal/types"
	"golang.org/x/time/rate"
)

func NewRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Logger())

	// Catch-all for anything a handler lets escape.
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}))

	r.Use(middleware.RequestID())

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	r.Use(collector.Middleware())
	r.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewRateLimiter(rate.Limit(20), 40)

	api := r.Group("/api", limiter.Middleware())
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/test", handlers.TestRoute)

		api.POST("/register", handlers.RegisterUser)
		api.POST("/signup", handlers.RegisterUser)
		api.POST("/login", handlers.LoginUser)

		api.GET("/settings/:user_id", handlers.GetSettings)
		api.PUT("/settings/:user_id", handlers.UpdateSettings)

		employees := api.Group("/employees")
		{
			employees.GET("", handlers.ListEmployees)
			employees.POST("", handlers.CreateEmployee)
			employees.GET("/:id", handlers.GetEmployee)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", handlers.ListTasks)
			tasks.POST("", handlers.CreateTask)
			tasks.GET("/:id", handlers.GetTask)
			tasks.PUT("/:id", handlers.UpdateTask)
			tasks.DELETE("/:id", handlers.DeleteTask)
		}

		chats := api.Group("/chats")
		{
			chats.GET("/:user_id/:other_id", handlers.ListMessages)
			chats.POST("", handlers.PostMessage)
		}
	}

	return r
}
