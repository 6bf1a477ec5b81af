package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskhub-dev/taskhub/db"
	"github.com/taskhub-dev/taskhub/internal/models"
)

type PostMessageRequest struct {
	SenderID    uint   `json:"senderId" binding:"required"`
	RecipientID uint   `json:"recipientId" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// ListMessages returns the conversation between two users, oldest first.
// The participant pair is unordered: (a, b) and (b, a) name the same
// conversation. Ties on created_at fall back to insertion order.
func ListMessages(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	otherID, err := strconv.ParseUint(ctx.Param("other_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	messages := make([]models.ChatMessage, 0)

	err = db.DB.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error

	if err != nil {
		log.Printf("Failed to list messages for %d <-> %d: %v", userID, otherID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// PostMessage appends a message to the conversation log. Messages are
// immutable once stored.
func PostMessage(ctx *gin.Context) {
	var body PostMessageRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "senderId, recipientId and message are required"})
		return
	}

	message := models.ChatMessage{
		SenderID:    body.SenderID,
		RecipientID: body.RecipientID,
		Message:     body.Message,
	}

	if err := db.DB.Create(&message).Error; err != nil {
		log.Printf("Failed to create message: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	ctx.JSON(http.StatusCreated, message)
}
