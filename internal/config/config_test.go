package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gabe/togglebar/internal/logging"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.toml")
	configContent := `
[toggle]
values = ["Left", "Center", "Right", "Justify"]
duration = "450ms"
easing = "linear"

[theme]
highlight_background = "#5c9cf5"
highlight_text = ""
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(cfg.Toggle.Values) != 4 || cfg.Toggle.Values[3] != "Justify" {
		t.Errorf("unexpected values %v", cfg.Toggle.Values)
	}
	d, err := cfg.Toggle.AnimationDuration()
	if err != nil || d != 450*time.Millisecond {
		t.Errorf("expected duration 450ms, got %v (%v)", d, err)
	}
	if cfg.Toggle.Easing != "linear" {
		t.Errorf("expected easing 'linear', got '%s'", cfg.Toggle.Easing)
	}
	if cfg.Theme.HighlightBackground != "#5c9cf5" {
		t.Errorf("expected highlight_background '#5c9cf5', got '%s'", cfg.Theme.HighlightBackground)
	}
	if cfg.Theme.HighlightText != "" {
		t.Errorf("expected empty highlight_text, got '%s'", cfg.Theme.HighlightText)
	}
}

func TestLoadConfigWithDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Toggle.Duration != "300ms" {
		t.Errorf("expected default duration '300ms', got '%s'", cfg.Toggle.Duration)
	}
	if cfg.Toggle.Height != 3 {
		t.Errorf("expected default height 3, got %d", cfg.Toggle.Height)
	}
	if cfg.Theme.InactiveText != "#808080" {
		t.Errorf("expected default inactive_text '#808080', got '%s'", cfg.Theme.InactiveText)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"empty values", "[toggle]\nvalues = []\n", ErrNoValues},
		{"bad colour", "[theme]\ninactive_background = \"blue\"\n", ErrInvalidColor},
		{"bad duration", "[toggle]\nduration = \"soon\"\n", nil},
		{"bad easing", "[toggle]\neasing = \"bounce\"\n", nil},
		{"zero height", "[toggle]\nheight = 0\n", nil},
		{"not toml", "[toggle", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(configPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(configPath)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if len(cfg.Toggle.Values) != 3 {
		t.Errorf("expected default values, got %v", cfg.Toggle.Values)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Theme.HighlightBackground != cfg.Theme.HighlightBackground {
		t.Errorf("saved config differs: %q vs %q", reloaded.Theme.HighlightBackground, cfg.Theme.HighlightBackground)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(configPath, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configs, err := Watch(ctx, configPath)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	update := "[toggle]\nvalues = [\"On\", \"Off\"]\n"
	if err := os.WriteFile(configPath, []byte(update), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-configs:
			if cfg == nil {
				t.Fatal("watch channel closed")
			}
			if len(cfg.Toggle.Values) == 2 && cfg.Toggle.Values[0] == "On" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchLogsInvalidConfigToContextLogger(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(configPath, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	var logs syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logging.WithContext(ctx, zerolog.New(&logs).With().Str("component", "config").Logger())

	configs, err := Watch(ctx, configPath)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(configPath, []byte("[toggle\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for !strings.Contains(logs.String(), "ignoring invalid config") {
		select {
		case <-configs:
		case <-deadline:
			t.Fatalf("timed out waiting for warning, got %q", logs.String())
		case <-time.After(10 * time.Millisecond):
		}
	}
	if !strings.Contains(logs.String(), `"component":"config"`) {
		t.Fatalf("expected the context logger's fields, got %q", logs.String())
	}
}
