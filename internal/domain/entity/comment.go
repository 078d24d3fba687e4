package entity

import "time"

// Comment belongs to exactly one Todo. CreatedAt is set server-side at
// creation and never updated afterwards.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TodoID    uint      `json:"-" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"type:timestamp;not null"`
}

func (Comment) TableName() string {
	return "comment"
}
