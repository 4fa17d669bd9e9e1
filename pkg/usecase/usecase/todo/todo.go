package usecase

import (
	"context"
	"todo-app/pkg/entity/model"
	"todo-app/pkg/usecase/repository"
)

type todoUseCase struct {
	todoRepository repository.Todo
}

type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
	UpdateCompletion(ctx context.Context, input model.UpdateTodoInput) error
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

func (t *todoUseCase) List(ctx context.Context) ([]*model.Todo, error) {
	todos, err := t.todoRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*model.Todo{}
	}
	return todos, nil
}

// Create ignores the client supplied completion flag.
func (t *todoUseCase) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	if err := ValidateCreateTodoInput(input); err != nil {
		return nil, err
	}
	return t.todoRepository.Create(ctx, *input.Name)
}

func (t *todoUseCase) Delete(ctx context.Context, id int) error {
	return t.todoRepository.Delete(ctx, id)
}

func (t *todoUseCase) UpdateCompletion(
	ctx context.Context,
	input model.UpdateTodoInput,
) error {
	if err := ValidateUpdateTodoInput(input); err != nil {
		return err
	}
	return t.todoRepository.UpdateCompletion(ctx, *input.ID, *input.IsComplete)
}
