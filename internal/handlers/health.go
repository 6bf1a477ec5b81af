package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"message":   "TaskHub is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// TestRoute is the plain connectivity probe the browser client pings.
func TestRoute(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Server is working!"})
}
