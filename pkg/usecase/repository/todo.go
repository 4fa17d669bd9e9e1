//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"
	"todo-app/pkg/entity/model"
)

// Todo is an interface of repository
// Every method is a single parameterized statement against the todos table.
type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, name string) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
	UpdateCompletion(ctx context.Context, id int, isComplete bool) error
}
