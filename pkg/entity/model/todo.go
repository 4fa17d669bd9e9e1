package model

// Todo is an identified, named, completion-flagged task.
type Todo struct {
	ID         int    `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name       string `json:"name" db:"name" gorm:"column:name;not null"`
	IsComplete bool   `json:"is_complete" db:"is_complete" gorm:"column:is_complete;not null"`
}

// TableName pins the table for gorm.
func (Todo) TableName() string { return "todos" }

// CreateTodoInput represents the payload for creating todos.
// Name must be present. IsComplete is accepted on the wire but a new todo always starts incomplete.
type CreateTodoInput struct {
	Name       *string `json:"name"`
	IsComplete bool    `json:"is_complete"`
}

// UpdateTodoInput represents the payload for updating the completion flag.
// ID and IsComplete must be present; Name is ignored.
type UpdateTodoInput struct {
	ID         *int   `json:"id"`
	Name       string `json:"name"`
	IsComplete *bool  `json:"is_complete"`
}
