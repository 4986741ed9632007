package models

import "time"

// User is the author of messages.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username  string    `json:"username" gorm:"type:varchar(100);index" validate:"required,max=100"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required"` // Stored as given
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
