package entity

import "time"

// Todo is a tracked task. Categories are a many-to-many association through
// the todo_category join table; Comments are exclusively owned and removed
// together with the Todo.
type Todo struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"type:varchar(180);not null"`
	Description *string    `json:"description" gorm:"type:text"`
	DueAt       *time.Time `json:"dueAt" gorm:"type:timestamp"`
	IsCompleted bool       `json:"isCompleted" gorm:"not null;default:false"`
	Categories  []Category `json:"categories" gorm:"many2many:todo_category"`
	Comments    []Comment  `json:"comments" gorm:"foreignKey:TodoID"`
}

func (Todo) TableName() string {
	return "todo"
}
