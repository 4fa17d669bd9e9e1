package testutil

import (
	"context"
	"sync"
	"testing"
	"todo-app/pkg/entity/model"
	"todo-app/pkg/usecase/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTodoRepositoryTests checks the store contract every engine must honour.
// reset must leave the todos table empty.
func RunTodoRepositoryTests(t *testing.T, repo repository.Todo, reset func(t *testing.T)) {
	t.Helper()

	ctx := context.Background()

	create := func(t *testing.T, name string) *model.Todo {
		todo, err := repo.Create(ctx, name)
		require.NoError(t, err)
		return todo
	}

	tests := []struct {
		name    string
		arrange func(t *testing.T) []*model.Todo
		act     func(t *testing.T, seeded []*model.Todo) ([]*model.Todo, error)
		assert  func(t *testing.T, seeded []*model.Todo, got []*model.Todo, err error)
	}{
		{
			name:    "It should list an empty table as an empty slice",
			arrange: func(t *testing.T) []*model.Todo { return nil },
			act: func(t *testing.T, _ []*model.Todo) ([]*model.Todo, error) {
				return repo.List(ctx)
			},
			assert: func(t *testing.T, _ []*model.Todo, got []*model.Todo, err error) {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Len(t, got, 0)
			},
		},
		{
			name: "It should create todos with increasing ids and is_complete false",
			arrange: func(t *testing.T) []*model.Todo {
				return nil
			},
			act: func(t *testing.T, _ []*model.Todo) ([]*model.Todo, error) {
				first, err := repo.Create(ctx, "buy milk")
				if err != nil {
					return nil, err
				}
				second, err := repo.Create(ctx, "walk dog")
				if err != nil {
					return nil, err
				}
				return []*model.Todo{first, second}, nil
			},
			assert: func(t *testing.T, _ []*model.Todo, got []*model.Todo, err error) {
				require.NoError(t, err)
				require.Len(t, got, 2)
				assert.Equal(t, "buy milk", got[0].Name)
				assert.False(t, got[0].IsComplete)
				assert.False(t, got[1].IsComplete)
				assert.Greater(t, got[1].ID, got[0].ID)
			},
		},
		{
			name: "It should list todos in ascending id order after updates",
			arrange: func(t *testing.T) []*model.Todo {
				a := create(t, "a")
				b := create(t, "b")
				c := create(t, "c")
				require.NoError(t, repo.UpdateCompletion(ctx, a.ID, true))
				return []*model.Todo{a, b, c}
			},
			act: func(t *testing.T, _ []*model.Todo) ([]*model.Todo, error) {
				return repo.List(ctx)
			},
			assert: func(t *testing.T, seeded []*model.Todo, got []*model.Todo, err error) {
				require.NoError(t, err)
				require.Len(t, got, 3)
				for i := range seeded {
					assert.Equal(t, seeded[i].ID, got[i].ID)
				}
				assert.True(t, got[0].IsComplete)
			},
		},
		{
			name: "It should change only is_complete",
			arrange: func(t *testing.T) []*model.Todo {
				return []*model.Todo{create(t, "keep my name")}
			},
			act: func(t *testing.T, seeded []*model.Todo) ([]*model.Todo, error) {
				if err := repo.UpdateCompletion(ctx, seeded[0].ID, true); err != nil {
					return nil, err
				}
				return repo.List(ctx)
			},
			assert: func(t *testing.T, seeded []*model.Todo, got []*model.Todo, err error) {
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, seeded[0].ID, got[0].ID)
				assert.Equal(t, "keep my name", got[0].Name)
				assert.True(t, got[0].IsComplete)
			},
		},
		{
			name: "It should treat deleting a missing id as a no-op",
			arrange: func(t *testing.T) []*model.Todo {
				return []*model.Todo{create(t, "survivor")}
			},
			act: func(t *testing.T, seeded []*model.Todo) ([]*model.Todo, error) {
				if err := repo.Delete(ctx, seeded[0].ID+1000); err != nil {
					return nil, err
				}
				return repo.List(ctx)
			},
			assert: func(t *testing.T, seeded []*model.Todo, got []*model.Todo, err error) {
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, *seeded[0], *got[0])
			},
		},
		{
			name: "It should treat updating a missing id as a no-op",
			arrange: func(t *testing.T) []*model.Todo {
				return []*model.Todo{create(t, "untouched")}
			},
			act: func(t *testing.T, seeded []*model.Todo) ([]*model.Todo, error) {
				if err := repo.UpdateCompletion(ctx, seeded[0].ID+1000, true); err != nil {
					return nil, err
				}
				return repo.List(ctx)
			},
			assert: func(t *testing.T, seeded []*model.Todo, got []*model.Todo, err error) {
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.False(t, got[0].IsComplete)
			},
		},
		{
			name: "It should delete and never reuse the id",
			arrange: func(t *testing.T) []*model.Todo {
				return []*model.Todo{create(t, "gone")}
			},
			act: func(t *testing.T, seeded []*model.Todo) ([]*model.Todo, error) {
				if err := repo.Delete(ctx, seeded[0].ID); err != nil {
					return nil, err
				}
				next, err := repo.Create(ctx, "next")
				if err != nil {
					return nil, err
				}
				return []*model.Todo{next}, nil
			},
			assert: func(t *testing.T, seeded []*model.Todo, got []*model.Todo, err error) {
				require.NoError(t, err)
				assert.Greater(t, got[0].ID, seeded[0].ID)
				all, err := repo.List(ctx)
				require.NoError(t, err)
				require.Len(t, all, 1)
				assert.Equal(t, "next", all[0].Name)
			},
		},
		{
			name:    "It should give concurrent creates with the same name distinct ids",
			arrange: func(t *testing.T) []*model.Todo { return nil },
			act: func(t *testing.T, _ []*model.Todo) ([]*model.Todo, error) {
				const n = 8
				out := make([]*model.Todo, n)
				errs := make([]error, n)
				var wg sync.WaitGroup
				for i := 0; i < n; i++ {
					wg.Add(1)
					go func(i int) {
						defer wg.Done()
						out[i], errs[i] = repo.Create(ctx, "same")
					}(i)
				}
				wg.Wait()
				for _, err := range errs {
					if err != nil {
						return nil, err
					}
				}
				return out, nil
			},
			assert: func(t *testing.T, _ []*model.Todo, got []*model.Todo, err error) {
				require.NoError(t, err)
				seen := map[int]bool{}
				for _, todo := range got {
					assert.False(t, seen[todo.ID], "duplicate id %d", todo.ID)
					seen[todo.ID] = true
				}
				all, err := repo.List(ctx)
				require.NoError(t, err)
				assert.Len(t, all, len(got))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset(t)
			seeded := tt.arrange(t)
			got, err := tt.act(t, seeded)
			tt.assert(t, seeded, got, err)
		})
	}
}
