package tui

import (
	"fmt"
	"sort"
	"strings"
	"todo-app/pkg/entity/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update applies one message to the state and returns at most one outbound call.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateNormal(msg)

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.fail("load failed", msg.err)
			return m, nil
		}
		m.todos = msg.todos
		m.clampCursor()
		m.info(fmt.Sprintf("loaded %d todos", len(m.todos)))
		return m, nil

	case createdMsg:
		if msg.err != nil {
			m.fail("create failed", msg.err)
			return m, nil
		}
		m.todos = append(m.todos, msg.todo)
		m.info(fmt.Sprintf("added %q", msg.todo.Name))
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.restore(msg.todo)
			m.fail(fmt.Sprintf("delete of %q failed, restored", msg.todo.Name), msg.err)
		}
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			if i := m.indexOf(msg.id); i >= 0 {
				m.todos[i].IsComplete = msg.previous
			}
			m.fail("toggle failed, reverted", msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, loadTodos(m.api)

	case key.Matches(msg, m.keys.Delete):
		if len(m.todos) == 0 {
			return m, nil
		}
		idx := m.cursor
		removed := m.todos[idx]
		m.todos = append(m.todos[:idx:idx], m.todos[idx+1:]...)
		m.clampCursor()
		return m, deleteTodo(m.api, removed)

	case key.Matches(msg, m.keys.Toggle):
		if len(m.todos) == 0 {
			return m, nil
		}
		m.todos = m.Todos()
		todo := &m.todos[m.cursor]
		previous := todo.IsComplete
		todo.IsComplete = !previous
		return m, toggleTodo(m.api, *todo, previous)
	}

	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.status, m.statusErr = "name cannot be empty", true
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, createTodo(m.api, name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// restore puts a todo whose delete failed back at its id-ordered position.
func (m *Model) restore(todo model.Todo) {
	if m.indexOf(todo.ID) >= 0 {
		return
	}
	i := sort.Search(len(m.todos), func(i int) bool { return m.todos[i].ID > todo.ID })
	m.todos = append(m.todos, model.Todo{})
	copy(m.todos[i+1:], m.todos[i:])
	m.todos[i] = todo
}

func (m *Model) indexOf(id int) int {
	for i := range m.todos {
		if m.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.todos) {
		m.cursor = len(m.todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) info(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) fail(s string, err error) {
	m.logger.Warnw(s, "err", err)
	m.status, m.statusErr = fmt.Sprintf("%s: %v", s, err), true
}
