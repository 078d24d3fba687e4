package entity

// TodoCategory is the associative row of the Todo/Category many-to-many
// relation. It is modeled as a first-class relation so join rows can be
// queried and removed by either side without walking an object graph.
type TodoCategory struct {
	TodoID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}

func (TodoCategory) TableName() string {
	return "todo_category"
}
