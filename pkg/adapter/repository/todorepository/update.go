package todorepository

import (
	"context"
	"todo-app/pkg/entity/model"
)

// UpdateCompletion touching zero rows is not an error.
func (r *todoRepository) UpdateCompletion(ctx context.Context, id int, isComplete bool) error {
	if _, err := r.pool.Exec(ctx, `UPDATE todos SET is_complete = $1 WHERE id = $2`, isComplete, id); err != nil {
		return model.NewDBError(err)
	}
	return nil
}
