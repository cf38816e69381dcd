package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/afkscreen/internal/clock"
	"github.com/five82/afkscreen/internal/config"
	"github.com/five82/afkscreen/internal/state"
)

// blockingFetcher holds every lookup until its context ends.
type blockingFetcher struct {
	started  chan struct{}
	finished chan struct{}
}

func (f *blockingFetcher) Fetch(ctx context.Context) state.StatusRecord {
	f.started <- struct{}{}
	<-ctx.Done()
	f.finished <- struct{}{}
	return state.StatusRecord{Err: ctx.Err().Error()}
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twitch.config.toml")
	body := "[Twitch]\nclient_id = \"abc\"\naccess_token = \"tok\"\nuser_login = \"me\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRun_MissingConfigKeyStopsBeforeFetching(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "twitch.config.toml")
	if err := os.WriteFile(path, []byte("[Twitch]\nclient_id = \"abc\"\nuser_login = \"me\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fetcher := &fakeFetcher{}
	err := Run(context.Background(), Options{ConfigPath: path, Fetcher: fetcher})
	if !errors.Is(err, config.ErrIncomplete) {
		t.Fatalf("Run error = %v, want config.ErrIncomplete", err)
	}
	if got := fetcher.Calls(); got != 0 {
		t.Fatalf("fetch calls = %d, want 0", got)
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	fetcher := &fakeFetcher{}
	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		Fetcher:    fetcher,
	})
	if !errors.Is(err, config.ErrIncomplete) {
		t.Fatalf("Run error = %v, want config.ErrIncomplete", err)
	}
	if got := fetcher.Calls(); got != 0 {
		t.Fatalf("fetch calls = %d, want 0", got)
	}
}

func TestRun_FetchesAndExitsOnCancel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t)
	fetcher := &fakeFetcher{started: make(chan int, 8)}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		var in bytes.Buffer
		done <- Run(ctx, Options{
			ConfigPath:     path,
			Fetcher:        fetcher,
			ProgramOptions: []tea.ProgramOption{tea.WithInput(&in), tea.WithOutput(io.Discard)},
		})
	}()

	select {
	case <-fetcher.started:
	case <-ctx.Done():
		t.Fatal("no fetch before timeout")
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_QuitJoinsRefreshLoop(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	clk := clock.Fake(time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC))
	fetcher := &blockingFetcher{
		started:  make(chan struct{}, 1),
		finished: make(chan struct{}, 1),
	}
	path := writeConfig(t)
	in, keys := io.Pipe()
	defer in.Close()

	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), Options{
			ConfigPath:     path,
			Fetcher:        fetcher,
			Clock:          clk,
			ProgramOptions: []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(io.Discard)},
		})
	}()

	select {
	case <-fetcher.started:
	case <-time.After(5 * time.Second):
		t.Fatal("no fetch before timeout")
	}
	go func() { _, _ = keys.Write([]byte("q")) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}

	// Run only returns once the loop has exited and its lookup has ended.
	select {
	case <-fetcher.finished:
	default:
		t.Fatal("in-flight lookup still running after Run returned")
	}
	if n := clk.Active(); n != 0 {
		t.Fatalf("active tickers = %d after Run returned, want 0", n)
	}
}
