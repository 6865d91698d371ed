package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/tartampluch/contact-assistant/internal/addressbook"
	"github.com/tartampluch/contact-assistant/internal/assistant"
	"github.com/tartampluch/contact-assistant/internal/config"
	"github.com/tartampluch/contact-assistant/internal/console"
	"github.com/tartampluch/contact-assistant/internal/i18n"
	"github.com/tartampluch/contact-assistant/internal/seed"
)

// CLI is the command-line surface. Every flag overrides the settings file.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Debug   bool             `help:"Enable debug logging, mirrored to stderr."`
	Config  string           `help:"Path to the YAML settings file." type:"path" placeholder:"PATH"`
	Lang    string           `help:"Interface language (en, uk)." placeholder:"LANG"`
	Window  *int             `help:"Default lookahead of the birthdays command, in days." placeholder:"DAYS"`
	Seed    *int             `help:"Populate the address book with N fake contacts." placeholder:"N"`
	Plain   bool             `help:"Force the plain line prompt even on a terminal."`
}

// main is the application entry point.
// It delegates execution to runMain so deferred calls (like closing the log
// file) run before the process terminates.
func main() {
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, config.MsgErrorOutput, err)
		return config.ExitCodeError
	}
	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return config.ExitCodeUsage
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// stdout belongs to the prompt, so logs go to a file in the cache dir.
	logCloser := setupLogging(cli.Debug, stderr)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	settings, err := resolveSettings(&cli)
	if err == nil {
		err = run(ctx, settings, stdin, stdout)
	}
	if err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		_, _ = fmt.Fprintf(stderr, config.MsgErrorOutput, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// newParser builds the kong parser for cli. Extra options are appended last,
// which lets tests replace the exit hook.
func newParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name(config.AppName),
		kong.Description(config.AppDescription),
		kong.Vars{config.VarVersion: fmt.Sprintf(config.MsgVersionOutput,
			config.AppName, config.Version, config.Commit, config.Date)},
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	}
	return kong.New(cli, append(opts, options...)...)
}

// resolveSettings loads the settings file and applies the flag overrides.
func resolveSettings(cli *CLI) (*config.Settings, error) {
	path := cli.Config
	if path == "" {
		p, err := config.DefaultSettingsPath()
		if err != nil {
			slog.Warn(config.ErrConfigDir,
				config.LogKeyComponent, config.CompConfig,
				config.LogKeyError, err,
			)
		}
		path = p
	}

	s, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}

	if cli.Lang != "" {
		s.Language = cli.Lang
	}
	if cli.Window != nil {
		s.Window = *cli.Window
	}
	if cli.Seed != nil {
		s.Seed = *cli.Seed
	}
	if cli.Plain {
		s.Plain = true
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	slog.Info(config.MsgSettingsUsed,
		config.LogKeyComponent, config.CompConfig,
		config.LogKeyFile, path,
		config.LogKeyLang, s.Language,
		config.LogKeyWindow, s.Window,
		config.LogKeyCount, s.Seed,
	)
	return s, nil
}

// run wires the address book, the assistant and the prompt, then blocks
// until the session ends.
func run(ctx context.Context, s *config.Settings, in io.Reader, out io.Writer) error {
	tr, err := i18n.New(s.Language)
	if err != nil {
		return err
	}

	book := addressbook.NewBook()
	if s.Seed > 0 {
		if _, err := seed.New(0).Populate(book, s.Seed); err != nil {
			return err
		}
	}

	d := assistant.New(book, tr,
		assistant.WithWindow(s.Window),
		assistant.WithStyles(assistant.NewStyles(out)),
	)

	session := console.NewSession(d, console.Options{
		In:         in,
		Out:        out,
		ForcePlain: s.Plain,
	})
	return session.Run(ctx)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Records go to the log file and, in debug mode, to stderr as well.
func setupLogging(debugMode bool, stderr io.Writer) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			_, _ = fmt.Fprintf(stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
		writers = append(writers, stderr)
	}

	var sink io.Writer = io.Discard
	if len(writers) > 0 {
		sink = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(sink, opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
