package tui_test

import (
	"context"
	"errors"
	"testing"
	"todo-app/pkg/adapter/tui"
	"todo-app/pkg/entity/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	todos     []model.Todo
	nextID    int
	listErr   error
	createErr error
	deleteErr error
	updateErr error

	created []string
	deleted []int
	updated []model.Todo
}

func (f *fakeAPI) List(ctx context.Context) ([]model.Todo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Todo, len(f.todos))
	copy(out, f.todos)
	return out, nil
}

func (f *fakeAPI) Create(ctx context.Context, name string) (model.Todo, error) {
	f.created = append(f.created, name)
	if f.createErr != nil {
		return model.Todo{}, f.createErr
	}
	f.nextID++
	todo := model.Todo{ID: f.nextID, Name: name}
	f.todos = append(f.todos, todo)
	return todo, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeAPI) UpdateCompletion(ctx context.Context, todo model.Todo) error {
	f.updated = append(f.updated, todo)
	return f.updateErr
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var keyEnter = tea.KeyMsg{Type: tea.KeyEnter}

func send(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(tui.Model)
	require.True(t, ok)
	return nm, cmd
}

// resolve runs an outbound call and feeds its result back, the way the event loop would.
func resolve(t *testing.T, m tui.Model, cmd tea.Cmd) tui.Model {
	t.Helper()
	require.NotNil(t, cmd, "expected an outbound call")
	m, _ = send(t, m, cmd())
	return m
}

func loaded(t *testing.T, api *fakeAPI) tui.Model {
	t.Helper()
	m := tui.New(api, nil)
	return resolve(t, m, m.Init())
}

func seeded() *fakeAPI {
	return &fakeAPI{
		nextID: 3,
		todos: []model.Todo{
			{ID: 1, Name: "buy milk"},
			{ID: 2, Name: "walk dog", IsComplete: true},
			{ID: 3, Name: "call mum"},
		},
	}
}

func TestModel_Load(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() *fakeAPI
		assert  func(t *testing.T, m tui.Model)
	}{
		{
			name:    "It should replace the mirror with the server list",
			arrange: seeded,
			assert: func(t *testing.T, m tui.Model) {
				require.Len(t, m.Todos(), 3)
				assert.Equal(t, 1, m.Todos()[0].ID)
				assert.True(t, m.Todos()[1].IsComplete)
			},
		},
		{
			name: "It should keep the mirror and report when the list fails",
			arrange: func() *fakeAPI {
				return &fakeAPI{listErr: errors.New("connection refused")}
			},
			assert: func(t *testing.T, m tui.Model) {
				assert.Empty(t, m.Todos())
				status, isErr := m.Status()
				assert.True(t, isErr)
				assert.Contains(t, status, "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t, tt.arrange())
			tt.assert(t, m)
		})
	}
}

func TestModel_Reload(t *testing.T) {
	api := seeded()
	m := loaded(t, api)

	api.todos = api.todos[:1]
	m, cmd := send(t, m, keyRunes("r"))
	m = resolve(t, m, cmd)

	require.Len(t, m.Todos(), 1)
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_Create(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() *fakeAPI
		input   string
		assert  func(t *testing.T, api *fakeAPI, m tui.Model, cmd tea.Cmd)
	}{
		{
			name:    "It should append the server todo only after the call resolves",
			arrange: seeded,
			input:   "water plants",
			assert: func(t *testing.T, api *fakeAPI, m tui.Model, cmd tea.Cmd) {
				assert.Len(t, m.Todos(), 3, "create is not optimistic")
				m = resolve(t, m, cmd)
				require.Len(t, m.Todos(), 4)
				last := m.Todos()[3]
				assert.Equal(t, 4, last.ID)
				assert.Equal(t, "water plants", last.Name)
				assert.False(t, last.IsComplete)
				assert.False(t, m.Adding())
			},
		},
		{
			name:    "It should reject blank input without calling the service",
			arrange: seeded,
			input:   "   ",
			assert: func(t *testing.T, api *fakeAPI, m tui.Model, cmd tea.Cmd) {
				assert.Nil(t, cmd)
				assert.Empty(t, api.created)
				assert.True(t, m.Adding())
				_, isErr := m.Status()
				assert.True(t, isErr)
			},
		},
		{
			name: "It should leave the mirror alone when create fails",
			arrange: func() *fakeAPI {
				api := seeded()
				api.createErr = errors.New("500")
				return api
			},
			input: "doomed",
			assert: func(t *testing.T, api *fakeAPI, m tui.Model, cmd tea.Cmd) {
				m = resolve(t, m, cmd)
				assert.Len(t, m.Todos(), 3)
				assert.Equal(t, []string{"doomed"}, api.created)
				_, isErr := m.Status()
				assert.True(t, isErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := tt.arrange()
			m := loaded(t, api)

			m, _ = send(t, m, keyRunes("a"))
			require.True(t, m.Adding())
			m, _ = send(t, m, keyRunes(tt.input))
			m, cmd := send(t, m, keyEnter)

			tt.assert(t, api, m, cmd)
		})
	}
}

func TestModel_Delete(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		assert    func(t *testing.T, api *fakeAPI, m tui.Model)
	}{
		{
			name: "It should keep the optimistic removal on success",
			assert: func(t *testing.T, api *fakeAPI, m tui.Model) {
				require.Len(t, m.Todos(), 2)
				assert.Equal(t, 1, m.Todos()[0].ID)
				assert.Equal(t, 3, m.Todos()[1].ID)
				assert.Equal(t, []int{2}, api.deleted)
			},
		},
		{
			name:      "It should restore the item at its position on failure",
			deleteErr: errors.New("gateway timeout"),
			assert: func(t *testing.T, api *fakeAPI, m tui.Model) {
				require.Len(t, m.Todos(), 3)
				assert.Equal(t, []int{1, 2, 3}, []int{m.Todos()[0].ID, m.Todos()[1].ID, m.Todos()[2].ID})
				status, isErr := m.Status()
				assert.True(t, isErr)
				assert.Contains(t, status, "walk dog")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := seeded()
			api.deleteErr = tt.deleteErr
			m := loaded(t, api)

			m, _ = send(t, m, keyRunes("j"))
			m, cmd := send(t, m, keyRunes("d"))
			require.Len(t, m.Todos(), 2, "delete is applied before the call resolves")

			m = resolve(t, m, cmd)
			tt.assert(t, api, m)
		})
	}
}

func TestModel_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		updateErr error
		assert    func(t *testing.T, api *fakeAPI, m tui.Model)
	}{
		{
			name: "It should send the flipped todo and keep it",
			assert: func(t *testing.T, api *fakeAPI, m tui.Model) {
				assert.True(t, m.Todos()[0].IsComplete)
				require.Len(t, api.updated, 1)
				assert.Equal(t, model.Todo{ID: 1, Name: "buy milk", IsComplete: true}, api.updated[0])
			},
		},
		{
			name:      "It should revert the flag on failure",
			updateErr: errors.New("503"),
			assert: func(t *testing.T, api *fakeAPI, m tui.Model) {
				assert.False(t, m.Todos()[0].IsComplete)
				_, isErr := m.Status()
				assert.True(t, isErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := seeded()
			api.updateErr = tt.updateErr
			m := loaded(t, api)

			m, cmd := send(t, m, keyRunes("t"))
			require.True(t, m.Todos()[0].IsComplete, "toggle is applied before the call resolves")

			m = resolve(t, m, cmd)
			tt.assert(t, api, m)
		})
	}
}

func TestModel_EmptyListActionsAreNoops(t *testing.T) {
	api := &fakeAPI{}
	m := loaded(t, api)

	m, cmd := send(t, m, keyRunes("d"))
	assert.Nil(t, cmd)
	m, cmd = send(t, m, keyRunes("t"))
	assert.Nil(t, cmd)

	assert.Empty(t, api.deleted)
	assert.Empty(t, api.updated)
	assert.Contains(t, m.View(), "nothing to do")
}
