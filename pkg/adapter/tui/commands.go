package tui

import (
	"context"
	"todo-app/pkg/entity/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Results of the outbound calls, delivered back to Update.
type (
	loadedMsg struct {
		todos []model.Todo
		err   error
	}
	createdMsg struct {
		todo model.Todo
		err  error
	}
	deletedMsg struct {
		todo model.Todo
		err  error
	}
	toggledMsg struct {
		id       int
		previous bool
		err      error
	}
)

// In-flight calls are never cancelled, so they run on a background context.

func loadTodos(api API) tea.Cmd {
	return func() tea.Msg {
		todos, err := api.List(context.Background())
		return loadedMsg{todos: todos, err: err}
	}
}

func createTodo(api API, name string) tea.Cmd {
	return func() tea.Msg {
		todo, err := api.Create(context.Background(), name)
		return createdMsg{todo: todo, err: err}
	}
}

func deleteTodo(api API, todo model.Todo) tea.Cmd {
	return func() tea.Msg {
		err := api.Delete(context.Background(), todo.ID)
		return deletedMsg{todo: todo, err: err}
	}
}

func toggleTodo(api API, todo model.Todo, previous bool) tea.Cmd {
	return func() tea.Msg {
		err := api.UpdateCompletion(context.Background(), todo)
		return toggledMsg{id: todo.ID, previous: previous, err: err}
	}
}
