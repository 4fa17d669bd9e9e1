package usecase_test

import (
	"context"
	"errors"
	"testing"
	"todo-app/pkg/entity/model"
	"todo-app/pkg/usecase/repository/mocks"
	usecase "todo-app/pkg/usecase/usecase/todo"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupMockTodo(t *testing.T) (*mocks.MockTodo, func()) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockTodo(ctrl)
	teardown := func() {
		// Finish will assert that all the expected calls were made.
		ctrl.Finish()
	}
	return mockRepo, teardown
}

// Helper functions to get pointers
func intPtr(i int) *int { return &i }
func boolPtr(b bool) *bool { return &b }
func stringPtr(s string) *string { return &s }

func TestCreateTodo(t *testing.T) {
	mockRepo, teardown := setupMockTodo(t)

	defer teardown()

	tests := []struct {
		name    string
		input   model.CreateTodoInput
		arrange func()
		act     func(uc usecase.Todo, input model.CreateTodoInput) (*model.Todo, error)
		assert  func(t *testing.T, todo *model.Todo, err error)
	}{
		{
			name: "Should create todo",
			input: model.CreateTodoInput{
				Name: stringPtr("buy milk"),
			},
			arrange: func() {
				mockRepo.EXPECT().Create(gomock.Any(), "buy milk").
					Return(&model.Todo{ID: 1, Name: "buy milk"}, nil)
			},
			act: func(uc usecase.Todo, input model.CreateTodoInput) (*model.Todo, error) {
				return uc.Create(context.Background(), input)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.NoError(t, err, "expected no error when creating todo")
				require.NotNil(t, todo, "expected a non-nil todo")
				require.Equal(t, 1, todo.ID)
				require.Equal(t, "buy milk", todo.Name)
				require.False(t, todo.IsComplete)
			},
		},
		{
			name: "Should drop a client supplied is_complete",
			input: model.CreateTodoInput{
				Name:       stringPtr("already done?"),
				IsComplete: true,
			},
			arrange: func() {
				mockRepo.EXPECT().Create(gomock.Any(), "already done?").
					Return(&model.Todo{ID: 2, Name: "already done?"}, nil)
			},
			act: func(uc usecase.Todo, input model.CreateTodoInput) (*model.Todo, error) {
				return uc.Create(context.Background(), input)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.NoError(t, err)
				require.False(t, todo.IsComplete)
			},
		},
		{
			name:  "Should keep an empty name, it is still a name",
			input: model.CreateTodoInput{Name: stringPtr("")},
			arrange: func() {
				mockRepo.EXPECT().Create(gomock.Any(), "").
					Return(&model.Todo{ID: 3}, nil)
			},
			act: func(uc usecase.Todo, input model.CreateTodoInput) (*model.Todo, error) {
				return uc.Create(context.Background(), input)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.NoError(t, err)
				require.Equal(t, 3, todo.ID)
			},
		},
		{
			name:  "Should reject a missing name before touching the store",
			input: model.CreateTodoInput{IsComplete: true},
			arrange: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			act: func(uc usecase.Todo, input model.CreateTodoInput) (*model.Todo, error) {
				return uc.Create(context.Background(), input)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.Error(t, err)
				require.Nil(t, todo)
				require.Equal(t, model.InvalidParamError, model.Code(err))
			},
		},
		{
			name:  "Should propagate store failures",
			input: model.CreateTodoInput{Name: stringPtr("x")},
			arrange: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, model.NewDBError(errors.New("connection reset")))
			},
			act: func(uc usecase.Todo, input model.CreateTodoInput) (*model.Todo, error) {
				return uc.Create(context.Background(), input)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.Error(t, err)
				require.Nil(t, todo)
				require.Equal(t, model.DBError, model.Code(err))
			},
		},
	}

	// Run the test cases.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange: set expectations for this test case.
			tt.arrange()

			// Create the use case with the shared mock repository.
			uc := usecase.NewTodoUseCase(mockRepo)

			// Act: call the Create method.
			todo, err := tt.act(uc, tt.input)
			// Assert: validate the result.
			tt.assert(t, todo, err)
		})
	}
}

func TestListTodo(t *testing.T) {
	tests := []struct {
		name    string
		arrange func(mockRepo *mocks.MockTodo)
		assert  func(t *testing.T, todos []*model.Todo, err error)
	}{
		{
			name: "Should return what the store returns",
			arrange: func(mockRepo *mocks.MockTodo) {
				mockRepo.EXPECT().List(gomock.Any()).Return([]*model.Todo{
					{ID: 1, Name: "a"},
					{ID: 2, Name: "b", IsComplete: true},
				}, nil)
			},
			assert: func(t *testing.T, todos []*model.Todo, err error) {
				require.NoError(t, err)
				require.Len(t, todos, 2)
				require.Equal(t, 1, todos[0].ID)
				require.Equal(t, 2, todos[1].ID)
			},
		},
		{
			name: "Should never return a nil slice",
			arrange: func(mockRepo *mocks.MockTodo) {
				mockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			assert: func(t *testing.T, todos []*model.Todo, err error) {
				require.NoError(t, err)
				require.NotNil(t, todos)
				require.Empty(t, todos)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, teardown := setupMockTodo(t)
			defer teardown()

			tt.arrange(mockRepo)
			todos, err := usecase.NewTodoUseCase(mockRepo).List(context.Background())
			tt.assert(t, todos, err)
		})
	}
}

func TestUpdateCompletion(t *testing.T) {
	tests := []struct {
		name    string
		input   model.UpdateTodoInput
		arrange func(mockRepo *mocks.MockTodo)
		assert  func(t *testing.T, err error)
	}{
		{
			name:  "Valid update",
			input: model.UpdateTodoInput{ID: intPtr(1), Name: "ignored", IsComplete: boolPtr(true)},
			arrange: func(mockRepo *mocks.MockTodo) {
				mockRepo.EXPECT().UpdateCompletion(gomock.Any(), 1, true).Return(nil)
			},
			assert: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:  "Missing id fails before touching the store",
			input: model.UpdateTodoInput{Name: "no id", IsComplete: boolPtr(true)},
			arrange: func(mockRepo *mocks.MockTodo) {
				mockRepo.EXPECT().UpdateCompletion(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				require.Equal(t, model.InvalidParamError, model.Code(err))
			},
		},
		{
			name:  "Missing is_complete fails before touching the store",
			input: model.UpdateTodoInput{ID: intPtr(1)},
			arrange: func(mockRepo *mocks.MockTodo) {
				mockRepo.EXPECT().UpdateCompletion(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				require.Equal(t, model.InvalidParamError, model.Code(err))
			},
		},
		{
			name:  "Store failure is returned",
			input: model.UpdateTodoInput{ID: intPtr(3), IsComplete: boolPtr(false)},
			arrange: func(mockRepo *mocks.MockTodo) {
				mockRepo.EXPECT().UpdateCompletion(gomock.Any(), 3, false).
					Return(model.NewDBError(errors.New("boom")))
			},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				require.Equal(t, model.DBError, model.Code(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, teardown := setupMockTodo(t)
			defer teardown()

			tt.arrange(mockRepo)
			err := usecase.NewTodoUseCase(mockRepo).UpdateCompletion(context.Background(), tt.input)
			tt.assert(t, err)
		})
	}
}

func TestDeleteTodo(t *testing.T) {
	mockRepo, teardown := setupMockTodo(t)
	defer teardown()

	mockRepo.EXPECT().Delete(gomock.Any(), 42).Return(nil)

	err := usecase.NewTodoUseCase(mockRepo).Delete(context.Background(), 42)
	require.NoError(t, err, "deleting an unknown id is not an error")
}
