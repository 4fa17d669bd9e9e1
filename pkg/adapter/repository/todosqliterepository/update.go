package todosqliterepository

import (
	"context"
	"todo-app/pkg/entity/model"
)

func (r *todoRepository) UpdateCompletion(ctx context.Context, id int, isComplete bool) error {
	err := r.db.WithContext(ctx).
		Model(&model.Todo{}).
		Where("id = ?", id).
		Update("is_complete", isComplete).Error
	if err != nil {
		return model.NewDBError(err)
	}
	return nil
}
