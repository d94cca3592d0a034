// Package config loads tocgen settings from defaults, an optional YAML file,
// TOCGEN_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/itsmostafa/tocgen/internal/toc"
)

// Config holds the settings used to extract and print a table of contents.
type Config struct {
	IndentSize     int           `mapstructure:"indent_size"`
	Format         string        `mapstructure:"format"`
	PlainTitles    bool          `mapstructure:"plain_titles"`
	SkipCodeBlocks bool          `mapstructure:"skip_code_blocks"`
	LogLevel       string        `mapstructure:"log_level"`
	WatchDebounce  time.Duration `mapstructure:"watch_debounce"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		IndentSize:     toc.DefaultIndent,
		Format:         string(toc.FormatText),
		PlainTitles:    false,
		SkipCodeBlocks: false,
		LogLevel:       "info",
		WatchDebounce:  200 * time.Millisecond,
	}
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"indent_size":      "indent",
	"format":           "format",
	"plain_titles":     "plain-titles",
	"skip_code_blocks": "skip-code-blocks",
	"watch_debounce":   "debounce",
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.IndentSize < 0 {
		return fmt.Errorf("indent_size must not be negative, got %d", c.IndentSize)
	}
	if _, err := toc.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce)
	}
	return nil
}

// SlogLevel returns the configured log level, or info if it is invalid.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return level, nil
}

// ScanOptions returns the scanner options selected by the config.
func (c *Config) ScanOptions() []toc.ScanOption {
	var opts []toc.ScanOption
	if c.PlainTitles {
		opts = append(opts, toc.PlainTitles())
	}
	if c.SkipCodeBlocks {
		opts = append(opts, toc.SkipCodeBlocks())
	}
	return opts
}

// BuildOptions returns the toc options selected by the config.
func (c *Config) BuildOptions(logger *slog.Logger) []toc.Option {
	return []toc.Option{
		toc.WithIndent(c.IndentSize),
		toc.WithScanOptions(c.ScanOptions()...),
		toc.WithLogger(logger),
	}
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	v         *viper.Viper
	logger    *slog.Logger
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager loads the configuration. cfgFile may be empty, in which case
// ./tocgen.yaml and $HOME/.tocgen/tocgen.yaml are tried. Flags in flags that
// were set on the command line override every other source; flags may be nil.
func NewManager(cfgFile string, flags *pflag.FlagSet) (*Manager, error) {
	m := &Manager{
		v:         viper.New(),
		logger:    slog.Default(),
		callbacks: make([]func(*Config), 0),
	}

	if err := m.initViper(cfgFile, flags); err != nil {
		return nil, err
	}

	cfg, err := m.load()
	if err != nil {
		return nil, err
	}
	m.config = cfg

	return m, nil
}

// SetLogger sets the logger used to report reload failures.
func (m *Manager) SetLogger(logger *slog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

func (m *Manager) initViper(cfgFile string, flags *pflag.FlagSet) error {
	v := m.v
	defaults := DefaultConfig()
	v.SetDefault("indent_size", defaults.IndentSize)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("plain_titles", defaults.PlainTitles)
	v.SetDefault("skip_code_blocks", defaults.SkipCodeBlocks)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("watch_debounce", defaults.WatchDebounce)

	v.SetEnvPrefix("TOCGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("tocgen")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tocgen"))
		}
	}

	// The config file is optional unless named explicitly.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a validated Config.
func (m *Manager) load() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// ConfigFileUsed returns the path of the loaded config file, or "".
func (m *Manager) ConfigFileUsed() string {
	return m.v.ConfigFileUsed()
}

// OnChange registers a callback for config changes.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// WatchConfig enables hot-reloading of the config file. It does nothing when
// no config file was loaded. Invalid edits are logged and the previous
// configuration stays in effect.
func (m *Manager) WatchConfig() {
	if m.ConfigFileUsed() == "" {
		return
	}

	m.v.OnConfigChange(func(e fsnotify.Event) {
		m.reload(e.Name)
	})
	m.v.WatchConfig()
}

func (m *Manager) reload(source string) {
	cfg, err := m.load()
	if err != nil {
		m.mu.RLock()
		logger := m.logger
		m.mu.RUnlock()
		logger.Warn("ignoring config change", "file", source, "error", err)
		return
	}

	m.mu.Lock()
	m.config = cfg
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(yaml.MapSlice{
		{Key: "indent_size", Value: cfg.IndentSize},
		{Key: "format", Value: cfg.Format},
		{Key: "plain_titles", Value: cfg.PlainTitles},
		{Key: "skip_code_blocks", Value: cfg.SkipCodeBlocks},
		{Key: "log_level", Value: cfg.LogLevel},
		{Key: "watch_debounce", Value: cfg.WatchDebounce.String()},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# tocgen configuration
# Every key can also be set with a TOCGEN_ environment variable,
# e.g. TOCGEN_INDENT_SIZE=4. Command-line flags take precedence.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
