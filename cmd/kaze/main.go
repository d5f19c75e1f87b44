// Package main is the entry point for the kaze text viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/islml/kaze/internal/ansi"
	"github.com/islml/kaze/internal/app"
	"github.com/islml/kaze/internal/config"
	"github.com/islml/kaze/internal/engine/document"
	kerrors "github.com/islml/kaze/internal/errors"
	"github.com/islml/kaze/internal/terminal"
	"github.com/islml/kaze/internal/watcher"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// cliOptions holds the parsed command line.
type cliOptions struct {
	configPath  string
	logPath     string
	logLevel    string
	showVersion bool
	filename    string
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("kaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	fs.StringVar(&opts.logPath, "log", "", "Append log lines to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "kaze - terminal text viewer\n\n")
		fmt.Fprintf(stderr, "Usage: kaze [options] <filename>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.filename = fs.Arg(0)
	return opts, nil
}

func run(args []string, stdin, stdout *os.File, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "kaze %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if opts.filename == "" {
		fmt.Fprintln(stdout, "usage: kaze <filename>")
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "kaze: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "kaze: %v\n", err)
		return 1
	}
	defer closeLog()

	// Open the file before touching the terminal.
	doc, err := document.Open(opts.filename, document.WithTabStop(cfg.TabStop))
	if err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(stderr, "kaze: %v\n", err)
		return 1
	}

	sess, err := terminal.Enter(stdin, stdout)
	if err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(stderr, "kaze: %v\n", err)
		return 1
	}
	defer sess.Close()

	rows, cols, err := sess.WindowSize()
	if err != nil {
		return fatal(nil, sess, logger, stderr, err)
	}

	editorOpts := app.Options{
		Rows:   rows,
		Cols:   cols,
		Config: cfg,
		Logger: logger,
	}

	if cfg.Watch {
		watchLog := logger.WithComponent("watcher")
		w, err := watcher.New(opts.filename)
		if err != nil {
			watchLog.Warn("%v", app.NewComponentError("watcher", "start", err))
		} else {
			watchLog.Debug("watching %s", w.Path())
			editorOpts.Watcher = w
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	editorOpts.Signals = signals

	ed := app.New(sess, doc, editorOpts)
	defer ed.Close()

	if err := ed.Run(); err != nil {
		if app.IsQuit(err) {
			return 0
		}
		return fatal(ed, sess, logger, stderr, err)
	}
	return 0
}

// loadConfig layers the config file and environment, then applies the
// command line overrides.
func loadConfig(opts cliOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logPath != "" {
		cfg.LogFile = opts.logPath
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds the session logger. Without a log file the output
// is discarded since stdout and stderr belong to the screen.
func newLogger(cfg *config.Config) (*app.Logger, func(), error) {
	lc := app.DefaultLoggerConfig()
	lc.Level = app.ParseLogLevel(cfg.LogLevel)

	if cfg.LogFile == "" {
		return app.NewLogger(lc), func() {}, nil
	}

	f, err := app.OpenLogFile(cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	lc.Output = f
	return app.NewLogger(lc), func() { f.Close() }, nil
}

// fatal clears the screen, restores the terminal and reports err.
// Signals and recovered panics end the session the same way as
// terminal, I/O and file errors.
func fatal(ed *app.Editor, sess *terminal.Session, logger *app.Logger, stderr io.Writer, err error) int {
	if kerrors.IsFatal(err) {
		logger.Error("fatal: %v", err)
	} else {
		logger.Warn("session ended: %v", err)
	}

	if ed != nil {
		ed.ClearScreen()
	} else {
		sess.Write([]byte(ansi.ClearScreen + ansi.CursorHome))
	}
	sess.Close()

	fmt.Fprintf(stderr, "kaze: %v\n", err)
	return 1
}
