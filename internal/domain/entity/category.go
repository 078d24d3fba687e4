package entity

// Category groups todos. Names are globally unique.
type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:varchar(120);not null;uniqueIndex"`
	Todos []Todo `json:"-" gorm:"many2many:todo_category"`
}

func (Category) TableName() string {
	return "category"
}
