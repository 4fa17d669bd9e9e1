package usecase

import (
	"errors"
	"todo-app/pkg/entity/model"
)

// ValidateCreateTodoInput checks the create precondition: the name must be present.
// An empty string is a name.
func ValidateCreateTodoInput(input model.CreateTodoInput) error {
	if input.Name == nil {
		return model.NewInvalidParamError(errors.New("name is required"), "name")
	}
	return nil
}

// ValidateUpdateTodoInput checks the update precondition: id and is_complete must be present.
// Name is not compared against the stored value.
func ValidateUpdateTodoInput(input model.UpdateTodoInput) error {
	if input.ID == nil {
		return model.NewInvalidParamError(errors.New("id is required"), "id")
	}
	if input.IsComplete == nil {
		return model.NewInvalidParamError(errors.New("is_complete is required"), "is_complete")
	}
	return nil
}
