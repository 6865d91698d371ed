package console

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tartampluch/contact-assistant/internal/config"
)

// Model is the Bubble Tea model of the terminal prompt. Replies are printed
// above the input line with tea.Println so they stay in the scrollback.
type Model struct {
	assistant Assistant
	input     textinput.Model
	keys      keyMap

	history []string
	cursor  int // index into history while browsing, len(history) on a fresh line
	done    bool
}

// NewModel returns a focused prompt bound to a.
func NewModel(a Assistant) Model {
	ti := textinput.New()
	ti.Prompt = promptLabel
	ti.Placeholder = config.PromptPlaceholder
	ti.CharLimit = config.PromptCharLimit
	ti.ShowSuggestions = true
	ti.SetSuggestions(a.Suggestions())
	ti.Focus()

	return Model{
		assistant: a,
		input:     ti,
		keys:      defaultKeyMap(),
	}
}

// Init prints the welcome line and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.Println(m.assistant.Welcome()), textinput.Blink)
}

// Update handles prompt keys and forwards everything else to the text input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Sequence(tea.Println(m.assistant.Interrupted()), tea.Quit)
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.browse(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.browse(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input line, or nothing once the session has ended.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return m.input.View() + "\n"
}

// Done reports whether the session has ended.
func (m Model) Done() bool {
	return m.done
}

// History returns the remembered command lines, oldest first.
func (m Model) History() []string {
	return m.history
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.remember(line)

	echo := promptLabel + line
	reply := m.assistant.Execute(line)
	if reply.Exit {
		m.done = true
		return m, tea.Sequence(tea.Println(echo), tea.Println(reply.Text), tea.Quit)
	}
	return m, tea.Println(echo + "\n" + reply.Text)
}

// remember appends line to the history, skipping blanks and immediate repeats.
func (m *Model) remember(line string) {
	if line != "" && (len(m.history) == 0 || m.history[len(m.history)-1] != line) {
		m.history = append(m.history, line)
		if len(m.history) > config.HistoryLimit {
			m.history = m.history[len(m.history)-config.HistoryLimit:]
		}
	}
	m.cursor = len(m.history)
}

// browse moves through the history by delta and loads the entry into the input.
// Moving past the newest entry clears the line.
func (m *Model) browse(delta int) {
	next := m.cursor + delta
	if next < 0 || next > len(m.history) {
		return
	}
	m.cursor = next
	if next == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[next])
	m.input.CursorEnd()
}
