package tui

import (
	"fmt"
	"strings"
)

// View renders the mirror, the input line and the status line.
func (m Model) View() string {
	var b strings.Builder

	done := 0
	for _, t := range m.todos {
		if t.IsComplete {
			done++
		}
	}
	fmt.Fprintf(&b, "%s   %s %d  %s %d\n\n",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(m.todos)-done,
	)

	var rows []string
	if len(m.todos) == 0 {
		empty := "nothing to do"
		if m.loading {
			empty = "loading…"
		}
		rows = append(rows, mutedStyle.Render(empty))
	}
	for i, t := range m.todos {
		box, name := mutedStyle.Render(boxUnchecked), t.Name
		if t.IsComplete {
			box, name = successStyle.Render(boxChecked), doneStyle.Render(t.Name)
		}
		prefix := "  "
		if i == m.cursor && !m.adding {
			prefix = selectedStyle.Render("> ")
		}
		rows = append(rows, prefix+box+" "+name)
	}
	b.WriteString(panelStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(mutedStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString(m.help.View(inputKeyMap{Submit: m.keys.Submit, Cancel: m.keys.Cancel}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")

	return b.String()
}
