package todosqliterepository

import (
	"context"
	"todo-app/pkg/entity/model"
)

func (r *todoRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Todo{}).Error; err != nil {
		return model.NewDBError(err)
	}
	return nil
}
