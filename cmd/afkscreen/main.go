package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/five82/afkscreen/internal/app"
	"github.com/five82/afkscreen/internal/config"
	"github.com/five82/afkscreen/internal/prefs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var configPath, prefsPath, logOutput string

	flagSet := pflag.NewFlagSet("afkscreen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to twitch.config.toml (default "+config.DefaultPath()+")")
	flagSet.StringVar(&prefsPath, "prefs", "", "path to display preferences (default "+prefs.DefaultPath()+")")
	flagSet.StringVar(&logOutput, "log-output", "", "append log records to this file (optional)")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		fmt.Fprintf(stderr, "afkscreen: unexpected argument %q\n", rest[0])
		return 2
	}

	logger, closeLog, err := newLogger(logOutput)
	if err != nil {
		fmt.Fprintf(stderr, "afkscreen: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = app.Run(ctx, app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Logger:     logger,
	})
	if err != nil {
		if errors.Is(err, config.ErrIncomplete) {
			fmt.Fprintln(stderr, "Please fill in twitch.config.toml correctly!")
		}
		fmt.Fprintf(stderr, "afkscreen: %v\n", err)
		return 1
	}
	return 0
}

// newLogger writes text records to path, or discards them when path is
// empty. The terminal belongs to the TUI, so stderr is never used.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, err := tea.LogToFile(path, "afkscreen")
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, func() { _ = file.Close() }, nil
}
