package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tartampluch/contact-assistant/internal/config"
)

// TerminalSession runs the Bubble Tea prompt. When the program cannot drive
// the terminal it falls back to a PlainSession on the same streams.
type TerminalSession struct {
	assistant Assistant
	in        io.Reader
	out       io.Writer
}

// Run starts the terminal program and blocks until it ends.
func (s *TerminalSession) Run(ctx context.Context) error {
	slog.Info(config.MsgSessionStart,
		config.LogKeyComponent, config.CompConsole,
		config.LogKeyMode, config.ModeTerminal,
	)

	p := tea.NewProgram(NewModel(s.assistant),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
		tea.WithContext(ctx),
	)
	_, err := p.Run()

	switch {
	case err == nil:
		slog.Info(config.MsgSessionEnd, config.LogKeyComponent, config.CompConsole)
		return nil

	case ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled):
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompConsole)
		_, _ = fmt.Fprintln(s.out, s.assistant.Interrupted())
		return nil

	default:
		slog.Warn(config.MsgTUIFallback,
			config.LogKeyComponent, config.CompConsole,
			config.LogKeyError, err,
		)
		return NewPlainSession(s.assistant, s.in, s.out).Run(ctx)
	}
}
