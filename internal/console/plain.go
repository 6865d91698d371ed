package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/contact-assistant/internal/config"
)

// PlainSession reads newline-terminated commands from a reader.
// It is used for pipes, files and dumb terminals.
type PlainSession struct {
	assistant Assistant
	in        io.Reader
	out       io.Writer
	prompt    string
}

// NewPlainSession returns a session reading from in and writing to out.
func NewPlainSession(a Assistant, in io.Reader, out io.Writer) *PlainSession {
	return &PlainSession{
		assistant: a,
		in:        in,
		out:       out,
		prompt:    promptStyle(out).Render(promptLabel),
	}
}

// Run loops until exit, end of input or cancellation. Only a read error is returned.
func (s *PlainSession) Run(ctx context.Context) error {
	slog.Info(config.MsgSessionStart,
		config.LogKeyComponent, config.CompConsole,
		config.LogKeyMode, config.ModePlain,
	)
	defer slog.Info(config.MsgSessionEnd, config.LogKeyComponent, config.CompConsole)

	_, _ = fmt.Fprintln(s.out, s.assistant.Welcome())

	lines := make(chan string)
	readErr := make(chan error, config.ChannelBufferSize)

	// The reader goroutine may stay blocked on a terminal read after cancellation;
	// it ends with the process.
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		_, _ = fmt.Fprint(s.out, s.prompt)

		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompConsole)
			_, _ = fmt.Fprintln(s.out)
			_, _ = fmt.Fprintln(s.out, s.assistant.Interrupted())
			return nil

		case line, ok := <-lines:
			if !ok {
				_, _ = fmt.Fprintln(s.out)
				_, _ = fmt.Fprintln(s.out, s.assistant.Interrupted())
				if err := <-readErr; err != nil {
					return fmt.Errorf("%s: %w", config.ErrPrompt, err)
				}
				return nil
			}

			reply := s.assistant.Execute(line)
			_, _ = fmt.Fprintln(s.out, reply.Text)
			if reply.Exit {
				return nil
			}
		}
	}
}
