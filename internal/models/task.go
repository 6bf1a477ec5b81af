package models

type Task struct {
	BaseModel

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"` // date string, not interpreted server-side
	Status      string `gorm:"not null;default:pending" json:"status"` // "pending", "in-progress", "completed"
	UserID      uint   `gorm:"index" json:"userId"`                    // creator
}
