package todorepository

import (
	"context"
	"todo-app/pkg/entity/model"
)

func (r *todoRepository) Create(
	ctx context.Context,
	name string,
) (*model.Todo, error) {
	var todo model.Todo
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO todos (name, is_complete) VALUES ($1, $2) RETURNING id, name, is_complete`,
		name,
		false,
	).Scan(&todo.ID, &todo.Name, &todo.IsComplete)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return &todo, nil
}
