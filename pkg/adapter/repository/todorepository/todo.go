package todorepository

import (
	ur "todo-app/pkg/usecase/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type todoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository stores todos in Postgres through a shared pgx pool.
func NewTodoRepository(pool *pgxpool.Pool) ur.Todo {
	return &todoRepository{pool}
}
