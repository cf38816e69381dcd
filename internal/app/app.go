package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/afkscreen/internal/clock"
	"github.com/five82/afkscreen/internal/config"
	"github.com/five82/afkscreen/internal/prefs"
	"github.com/five82/afkscreen/internal/state"
	"github.com/five82/afkscreen/internal/twitch"
	"github.com/five82/afkscreen/internal/ui"
)

// Options configure the AFK screen.
type Options struct {
	ConfigPath string // empty uses ~/.config/afkscreen/twitch.config.toml
	PrefsPath  string // empty uses ~/.config/afkscreen/prefs.toml
	Logger     *slog.Logger

	// Fetcher replaces the Twitch client; used by tests.
	Fetcher twitch.StatusFetcher
	// Clock drives the refresh cadence; nil uses the wall clock.
	Clock clock.Clock

	// ProgramOptions are appended to the defaults; used by tests.
	ProgramOptions []tea.ProgramOption
}

// Run loads the config, starts the refresh loop and blocks on the TUI until
// the user closes it or ctx is cancelled. Config errors are returned before
// anything else is created.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load twitch config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	userPrefs := prefs.Load(opts.PrefsPath)

	fetcher := opts.Fetcher
	if fetcher == nil {
		client, err := twitch.NewClient(twitch.Credentials{
			ClientID:    cfg.ClientID,
			AccessToken: cfg.AccessToken,
		}, cfg.UserLogin)
		if err != nil {
			return fmt.Errorf("init twitch client: %w", err)
		}
		fetcher = client
	}

	publisher := state.NewSync(logger)
	scheduler := NewScheduler(fetcher, publisher, SchedulerOptions{Clock: opts.Clock, Logger: logger})

	model := ui.New(ui.Options{
		Updates:     publisher.Updates(),
		Refresher:   scheduler,
		Channel:     cfg.UserLogin,
		ThemeName:   userPrefs.Theme,
		Reason:      userPrefs.Reason,
		WindowTitle: userPrefs.Title,
	})
	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts.ProgramOptions...)
	program := tea.NewProgram(model, programOpts...)

	logger.Info("afk screen starting", "channel", cfg.UserLogin)
	loopCtx, cancelLoop := context.WithCancel(ctx)
	scheduler.Start(loopCtx)
	defer func() {
		// Nobody reads the display once the program has exited, so lookups
		// still in flight are abandoned rather than waited out.
		scheduler.Stop()
		cancelLoop()
		scheduler.Wait()
		logger.Info("afk screen closed")
	}()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
