// Package console runs the interactive prompt that feeds lines to the assistant.
package console

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/tartampluch/contact-assistant/internal/assistant"
)

// Assistant executes prompt lines. *assistant.Dispatcher implements it.
type Assistant interface {
	Welcome() string
	Interrupted() string
	Suggestions() []string
	Execute(line string) assistant.Reply
}

var _ Assistant = (*assistant.Dispatcher)(nil)

// Session reads commands until the user exits, input ends or ctx is cancelled.
type Session interface {
	Run(ctx context.Context) error
}

// Options configures session creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force the line-based prompt even on a terminal.
}

// NewSession returns a terminal session when both ends are a TTY, or a plain
// line-based session otherwise. ForcePlain overrides TTY detection.
func NewSession(a Assistant, opts Options) Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.In) || !isTTY(opts.Out) {
		return NewPlainSession(a, opts.In, opts.Out)
	}
	return &TerminalSession{assistant: a, in: opts.In, out: opts.Out}
}

// isTTY reports whether v is connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// promptStyle renders the prompt label for output written to w.
func promptStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})
}

const promptLabel = "Enter a command: "
