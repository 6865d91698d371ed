// Package assistant turns prompt lines into address book operations and replies.
package assistant

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/contact-assistant/internal/addressbook"
	"github.com/tartampluch/contact-assistant/internal/config"
	"github.com/tartampluch/contact-assistant/internal/i18n"
)

// Commands that end the session. They are handled before the table lookup.
var exitCommands = []string{"close", "exit"}

// Reply is the outcome of one prompt line.
type Reply struct {
	Text string
	Exit bool // the session must end after printing Text
}

// handlerFunc runs a command whose argument count has already been checked.
type handlerFunc func(args []string) (string, error)

// Command is one entry of the dispatch table.
type Command struct {
	Name     string
	Args     []string // required argument placeholders
	Optional []string // trailing optional argument placeholders
	run      handlerFunc
}

// Usage renders "name <arg> [opt]".
func (c Command) Usage() string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		parts = append(parts, "<"+a+">")
	}
	for _, a := range c.Optional {
		parts = append(parts, "["+a+"]")
	}
	return strings.Join(parts, " ")
}

func (c Command) accepts(n int) bool {
	return n >= len(c.Args) && n <= len(c.Args)+len(c.Optional)
}

// Dispatcher owns the command table and executes lines against one Book.
type Dispatcher struct {
	book   *addressbook.Book
	tr     *i18n.Translator
	clock  addressbook.Clock
	styles Styles
	window int

	commands map[string]Command
	order    []string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock sets the source of "today" for the birthdays report.
func WithClock(c addressbook.Clock) Option {
	return func(d *Dispatcher) { d.clock = c }
}

// WithWindow sets the default lookahead window, in days.
func WithWindow(days int) Option {
	return func(d *Dispatcher) { d.window = days }
}

// WithStyles sets the reply styles.
func WithStyles(s Styles) Option {
	return func(d *Dispatcher) { d.styles = s }
}

// New returns a Dispatcher operating on book. The book is owned by the caller.
func New(book *addressbook.Book, tr *i18n.Translator, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:   book,
		tr:     tr,
		clock:  addressbook.RealClock{},
		styles: NewStyles(io.Discard),
		window: config.DefaultWindowDays,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.register()
	return d
}

// Welcome is printed once when a session starts.
func (d *Dispatcher) Welcome() string {
	return d.tr.T(config.TKeyWelcome, nil)
}

// Interrupted is printed when the session is cancelled (Ctrl+C, SIGTERM, end of input).
func (d *Dispatcher) Interrupted() string {
	return d.tr.T(config.TKeyExiting, nil)
}

// Commands returns the dispatch table in registration order.
func (d *Dispatcher) Commands() []Command {
	out := make([]Command, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.commands[name])
	}
	return out
}

// Suggestions returns every command name the prompt can complete, exit commands last.
func (d *Dispatcher) Suggestions() []string {
	return append(slices.Clone(d.order), exitCommands...)
}

// Execute parses and runs one prompt line. Errors never escape: they are
// rendered into the reply so the prompt loop always continues.
func (d *Dispatcher) Execute(line string) Reply {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Reply{Text: d.styles.Hint.Render(d.tr.T(config.TKeyEmptyInput, nil))}
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	if slices.Contains(exitCommands, name) {
		return Reply{Text: d.tr.T(config.TKeyGoodbye, nil), Exit: true}
	}

	cmd, ok := d.commands[name]
	if !ok {
		return Reply{Text: d.styles.Error.Render(d.tr.T(config.TKeyInvalidCommand, nil)) + "\n" +
			d.tr.T(config.TKeyAvailable, nil) + "\n" + d.usageList()}
	}

	if !cmd.accepts(len(args)) {
		return Reply{Text: d.styles.Error.Render(d.tr.T(config.TKeyInvalidArgs, nil)) + "\n" +
			d.tr.T(config.TKeyUsage, map[string]any{"Usage": cmd.Usage()})}
	}

	start := time.Now()
	text, err := cmd.run(args)
	if err != nil {
		return Reply{Text: d.renderError(name, err)}
	}

	slog.Debug(config.MsgCommandRun,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyCommand, name,
		config.LogKeyArgs, len(args),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return Reply{Text: text}
}

func (d *Dispatcher) usageList() string {
	var b strings.Builder
	for _, c := range d.Commands() {
		b.WriteString("\t" + c.Usage() + "\n")
	}
	b.WriteString("\t" + d.tr.T(config.TKeyHelpExit, nil))
	return b.String()
}

// renderError maps address book failures to localized messages.
func (d *Dispatcher) renderError(command string, err error) string {
	var abErr *addressbook.Error
	if !errors.As(err, &abErr) {
		slog.Error(config.ErrUnhandled,
			config.LogKeyComponent, config.CompAssistant,
			config.LogKeyCommand, command,
			config.LogKeyError, err,
		)
		return d.styles.Error.Render(d.tr.T(config.TKeyUnexpected, nil))
	}

	slog.Debug(config.MsgCommandFailed,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyCommand, command,
		config.LogKeyError, err,
	)

	key := errorKey(abErr)
	if key == "" {
		return d.styles.Error.Render(d.tr.T(config.TKeyUnexpected, nil))
	}
	return d.styles.Error.Render(d.tr.T(key, map[string]any{"Value": abErr.Value}))
}

func errorKey(e *addressbook.Error) string {
	switch {
	case errors.Is(e.Kind, addressbook.ErrValidation):
		switch e.Subject {
		case addressbook.SubjectPhone:
			return config.TKeyErrInvalidPhone
		case addressbook.SubjectBirthday:
			return config.TKeyErrInvalidDate
		case addressbook.SubjectName:
			return config.TKeyErrInvalidName
		case addressbook.SubjectWindow:
			return config.TKeyErrInvalidWindow
		}
	case errors.Is(e.Kind, addressbook.ErrNotFound):
		switch e.Subject {
		case addressbook.SubjectContact:
			return config.TKeyErrNoContact
		case addressbook.SubjectPhone:
			return config.TKeyErrNoPhone
		}
	case errors.Is(e.Kind, addressbook.ErrDuplicate):
		switch e.Subject {
		case addressbook.SubjectContact:
			return config.TKeyErrDupContact
		case addressbook.SubjectPhone:
			return config.TKeyErrDupPhone
		}
	}
	return ""
}
