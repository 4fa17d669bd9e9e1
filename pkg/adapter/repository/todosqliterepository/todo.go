package todosqliterepository

import (
	ur "todo-app/pkg/usecase/repository"

	"gorm.io/gorm"
)

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository stores todos in the embedded SQLite file.
func NewTodoRepository(db *gorm.DB) ur.Todo {
	return &todoRepository{db: db}
}
