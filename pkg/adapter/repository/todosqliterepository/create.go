package todosqliterepository

import (
	"context"
	"todo-app/pkg/entity/model"
)

func (r *todoRepository) Create(
	ctx context.Context,
	name string,
) (*model.Todo, error) {
	todo := model.Todo{Name: name, IsComplete: false}
	if err := r.db.WithContext(ctx).Select("name", "is_complete").Create(&todo).Error; err != nil {
		return nil, model.NewDBError(err)
	}
	return &todo, nil
}
