package models

import "time"

// ChatMessage is an append-only direct message. Rows are never updated or
// deleted; a conversation is reconstructed from the unordered participant
// pair at query time.
type ChatMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SenderID    uint      `gorm:"not null;index" json:"senderId"`
	RecipientID uint      `gorm:"not null;index" json:"recipientId"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}
