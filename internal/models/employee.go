package models

type Employee struct {
	BaseModel

	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Department string `gorm:"not null;default:General" json:"department"`
}
