package models

import "time"

// Message is a titled post written by a user.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title     string    `json:"title" gorm:"type:varchar(255);index" validate:"required"`
	Body      string    `json:"body" gorm:"type:text" validate:"required"`
	Author    string    `json:"author" gorm:"type:varchar(36);index"` // User ID, not checked for existence
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageUpdate carries the fields of a partial update. Nil fields are left untouched.
type MessageUpdate struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
	Body  *string `json:"body" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the update would change nothing.
func (u MessageUpdate) IsEmpty() bool {
	return u.Title == nil && u.Body == nil
}

// Apply copies the supplied fields onto m.
func (u MessageUpdate) Apply(m *Message) {
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.Body != nil {
		m.Body = *u.Body
	}
}
