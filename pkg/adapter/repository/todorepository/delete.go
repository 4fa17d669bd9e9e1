package todorepository

import (
	"context"
	"todo-app/pkg/entity/model"
)

// Delete is a hard delete. A missing id affects zero rows and succeeds.
func (r *todoRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id); err != nil {
		return model.NewDBError(err)
	}
	return nil
}
