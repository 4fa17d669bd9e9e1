package registry

import (
	"todo-app/pkg/adapter/controller"
	usecase "todo-app/pkg/usecase/usecase/todo"
)

func (r *registry) NewTodoController() controller.Todo {
	u := usecase.NewTodoUseCase(r.todoRepo)

	return controller.NewTodoController(u)
}
