package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the Twitch credentials and the channel to watch. It is built
// once at startup and never modified.
type Config struct {
	ClientID    string
	AccessToken string
	UserLogin   string
}

const defaultConfigPath = "~/.config/afkscreen/twitch.config.toml"

// Required keys, in the order they are reported.
var requiredKeys = []string{"client_id", "access_token", "user_login"}

// ErrIncomplete is matched by every MissingKeyError.
var ErrIncomplete = errors.New("twitch config is incomplete")

// MissingKeyError lists the required keys that were absent or blank.
type MissingKeyError struct {
	Path string
	Keys []string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: missing [Twitch] %s", e.Path, strings.Join(e.Keys, ", "))
}

// Is reports whether target is ErrIncomplete.
func (e *MissingKeyError) Is(target error) bool {
	return target == ErrIncomplete
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the Twitch config file. A missing file counts as every key
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, &MissingKeyError{Path: resolved, Keys: append([]string(nil), requiredKeys...)}
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Twitch struct {
			ClientID    string `toml:"client_id"`
			AccessToken string `toml:"access_token"`
			UserLogin   string `toml:"user_login"`
		} `toml:"Twitch"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		ClientID:    strings.TrimSpace(raw.Twitch.ClientID),
		AccessToken: strings.TrimSpace(raw.Twitch.AccessToken),
		UserLogin:   strings.TrimSpace(raw.Twitch.UserLogin),
	}

	var missing []string
	for _, kv := range []struct {
		key   string
		value string
	}{
		{"client_id", cfg.ClientID},
		{"access_token", cfg.AccessToken},
		{"user_login", cfg.UserLogin},
	} {
		if kv.value == "" {
			missing = append(missing, kv.key)
		}
	}
	if len(missing) > 0 {
		return Config{}, &MissingKeyError{Path: resolved, Keys: missing}
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
