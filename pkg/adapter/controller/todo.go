package controller

import (
	"context"
	"todo-app/pkg/entity/model"
	usecase "todo-app/pkg/usecase/usecase/todo"
)

type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
	UpdateCompletion(ctx context.Context, input model.UpdateTodoInput) error
}

type todoController struct {
	todoUseCase usecase.Todo
}

// Create new todo controller

func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) List(ctx context.Context) ([]*model.Todo, error) {
	return tc.todoUseCase.List(ctx)
}

func (tc *todoController) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Create(ctx, input)
}

func (tc *todoController) Delete(ctx context.Context, id int) error {
	return tc.todoUseCase.Delete(ctx, id)
}

func (tc *todoController) UpdateCompletion(
	ctx context.Context,
	input model.UpdateTodoInput,
) error {
	return tc.todoUseCase.UpdateCompletion(ctx, input)
}
