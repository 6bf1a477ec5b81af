package models

import "time"

// Settings holds per-user preferences. Exactly one row exists per user,
// created together with the user at registration.
type Settings struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Theme         string    `gorm:"not null;default:light" json:"theme"` // "light", "dark", "auto"
	Notifications bool      `gorm:"not null;default:true" json:"notifications"`
	Language      string    `gorm:"not null;default:en" json:"language"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
