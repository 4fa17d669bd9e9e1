package todorepository

import (
	"context"
	"todo-app/pkg/entity/model"

	"github.com/jackc/pgx/v5"
)

func (r *todoRepository) List(ctx context.Context) ([]*model.Todo, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, is_complete FROM todos ORDER BY id ASC`)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	todos, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.Todo])
	if err != nil {
		return nil, model.NewDBError(err)
	}
	if todos == nil {
		todos = []*model.Todo{}
	}

	return todos, nil
}
