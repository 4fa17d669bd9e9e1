package todosqliterepository

import (
	"context"
	"todo-app/pkg/entity/model"
)

func (r *todoRepository) List(ctx context.Context) ([]*model.Todo, error) {
	todos := make([]*model.Todo, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&todos).Error; err != nil {
		return nil, model.NewDBError(err)
	}
	return todos, nil
}
