package registry

import (
	"todo-app/pkg/adapter/controller"
	"todo-app/pkg/adapter/repository/todorepository"
	"todo-app/pkg/adapter/repository/todosqliterepository"
	"todo-app/pkg/usecase/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

type registry struct {
	todoRepo repository.Todo
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
}

// New registers entire controller over the Postgres pool.
func New(pool *pgxpool.Pool) Registry {
	return &registry{todoRepo: todorepository.NewTodoRepository(pool)}
}

// NewEmbedded registers entire controller over the embedded SQLite database.
func NewEmbedded(db *gorm.DB) Registry {
	return &registry{todoRepo: todosqliterepository.NewTodoRepository(db)}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Todo: r.NewTodoController(),
	}
}
