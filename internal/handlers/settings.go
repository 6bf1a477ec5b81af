package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskhub-dev/taskhub/db"
	"github.com/taskhub-dev/taskhub/internal/models"
	"gorm.io/gorm"
)

type UpdateSettingsRequest struct {
	Theme         *string `json:"theme" binding:"omitempty,oneof=light dark auto"`
	Notifications *bool   `json:"notifications"`
	Language      *string `json:"language"`
}

func GetSettings(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	var settings models.Settings

	if err := db.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		} else {
			log.Printf("Failed to fetch settings for user %d: %v", userID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		}
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// UpdateSettings merges the provided fields into an existing settings row and
// stamps updatedAt. It never creates a row: a user without settings is a 404.
func UpdateSettings(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	var body UpdateSettingsRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var settings models.Settings

	if err := db.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		} else {
			log.Printf("Failed to fetch settings for user %d: %v", userID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		}
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if body.Theme != nil {
		updates["theme"] = *body.Theme
	}

	if body.Notifications != nil {
		updates["notifications"] = *body.Notifications
	}

	if body.Language != nil {
		updates["language"] = *body.Language
	}

	if err := db.DB.Model(&settings).Updates(updates).Error; err != nil {
		log.Printf("Failed to update settings for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	if err := db.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		log.Printf("Failed to refresh settings for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}

	ctx.JSON(http.StatusOK, settings)
}
