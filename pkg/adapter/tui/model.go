package tui

import (
	"context"
	"todo-app/pkg/entity/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// API is the part of the todo service the client talks to.
type API interface {
	List(ctx context.Context) ([]model.Todo, error)
	Create(ctx context.Context, name string) (model.Todo, error)
	Delete(ctx context.Context, id int) error
	UpdateCompletion(ctx context.Context, todo model.Todo) error
}

// Model is the client state: the local mirror of the server's list plus UI state.
// It is only touched from Update, which bubbletea calls from a single goroutine.
type Model struct {
	api    API
	logger *zap.SugaredLogger
	keys   KeyMap
	help   help.Model

	todos   []model.Todo
	cursor  int
	loading bool

	adding bool
	input  textinput.Model

	status    string
	statusErr bool
	width     int
}

// New creates the client state. Call Init (or run it under tea.NewProgram) to load the list.
func New(api API, logger *zap.SugaredLogger) Model {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Prompt = "+ "
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		api:     api,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		todos:   []model.Todo{},
		loading: true,
		input:   ti,
	}
}

// Init issues the initial List.
func (m Model) Init() tea.Cmd {
	return loadTodos(m.api)
}

// Todos returns a copy of the local mirror.
func (m Model) Todos() []model.Todo {
	out := make([]model.Todo, len(m.todos))
	copy(out, m.todos)
	return out
}

// Cursor returns the index of the selected row.
func (m Model) Cursor() int { return m.cursor }

// Status returns the last status line and whether it reports a failure.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

// Adding reports whether the new-todo input has focus.
func (m Model) Adding() bool { return m.adding }
