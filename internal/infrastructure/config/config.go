// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/hnreader/internal/application/settings"
	"gopkg.in/yaml.v3"
)

const appName = "hnreader"

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns ~/.config/hnreader/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.yaml"), nil
}

// Load loads the configuration from the specified path or the default location.
// A missing file is created with default values.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	var options []kong.Option
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	store := &Store{Settings: cfg, configPath: configPath}
	store.normalize()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.configPath
}

func (s *Store) normalize() {
	cfg := &s.Settings

	cfg.API.Source = strings.ToLower(strings.TrimSpace(cfg.API.Source))
	if cfg.API.Source != settings.SourceRSS {
		cfg.API.Source = settings.SourceJSON
	}
	cfg.API.FetchMode = strings.ToLower(strings.TrimSpace(cfg.API.FetchMode))
	if cfg.API.FetchMode != settings.FetchSync {
		cfg.API.FetchMode = settings.FetchAsync
	}
	if cfg.Reader.PageSize <= 0 {
		cfg.Reader.PageSize = 10
	}
	if cfg.Reader.CommentIndent < 0 {
		cfg.Reader.CommentIndent = 0
	}

	cfg.HistoryFile = strings.TrimSpace(cfg.HistoryFile)
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = filepath.Join(defaultDataHome(), appName, "history.db")
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(defaultDataHome(), appName, appName+".log")
	}
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return dataHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, name := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := lookup(values, name); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}

// lookup resolves a flat key first, then a dotted path through nested maps.
func lookup(values map[string]any, name string) (any, bool) {
	if v, ok := values[name]; ok {
		return v, true
	}
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for _, part := range parts[:len(parts)-1] {
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	v, ok := curr[parts[len(parts)-1]]
	return v, ok
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
