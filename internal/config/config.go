package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/tabkit/core"
)

// Config holds settings for the tabkit binary.
type Config struct {
	UI     UIConfig
	Server ServerConfig
	Log    LogConfig
	// Keys maps a key action (core.ActionTabPrev, core.ActionTabNext) to
	// the keys that trigger it.
	Keys map[string][]string
}

// UIConfig holds widget settings shared by both bindings.
type UIConfig struct {
	Policy      string
	Width       int
	Height      int
	SharedStore string `mapstructure:"shared_store"`
}

// ServerConfig holds HTTP settings for `tabkit serve`.
type ServerConfig struct {
	Addr  string
	Title string
}

// LogConfig holds slog settings. An empty File means stderr.
type LogConfig struct {
	Level string
	File  string
}

func defaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "tabkit", "config.toml")
}

// Path resolves the config file location: explicit, then TABKIT_CONFIG,
// then $HOME/.config/tabkit/config.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("TABKIT_CONFIG"); env != "" {
		return env
	}
	return defaultPath()
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("ui.policy", "compat")
	v.SetDefault("ui.width", 80)
	v.SetDefault("ui.height", 20)
	v.SetDefault("ui.shared_store", "")
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.title", "tabkit")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	for action, keys := range defaultKeys() {
		v.SetDefault("keys."+action, keys)
	}

	v.SetConfigType("toml")
	v.SetEnvPrefix("TABKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func defaultKeys() map[string][]string {
	return core.DefaultKeybindingsByAction(core.DefaultKeyBindings())
}

// Load reads configuration from path, or from TABKIT_CONFIG or the default
// location when path is empty. Env var overrides use prefix TABKIT_.
func Load(path string) (Config, error) {
	v := newViper()

	cfgPath := path
	if cfgPath == "" {
		cfgPath = os.Getenv("TABKIT_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(defaultPath()))
		v.SetConfigName("config")
	}

	// a missing default file is fine; an explicit path must exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

// Defaults returns the configuration built from defaults and TABKIT_ env
// vars only, without reading any file.
func Defaults() (Config, error) {
	return decode(newViper())
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.UI.UnmatchedPolicy(); err != nil {
		return Config{}, err
	}
	keys, err := mergeKeys(c.Keys, defaultKeys())
	if err != nil {
		return Config{}, fmt.Errorf("keys: %w", err)
	}
	c.Keys = keys
	return c, nil
}

// mergeKeys validates configured key lists against the known actions and
// fills in defaults for actions left out.
func mergeKeys(configured, defaults map[string][]string) (map[string][]string, error) {
	merged := make(map[string][]string, len(defaults))
	for action, keys := range defaults {
		merged[action] = append([]string(nil), keys...)
	}
	for action, keys := range configured {
		a := strings.ToLower(strings.TrimSpace(action))
		if _, ok := defaults[a]; !ok {
			return nil, fmt.Errorf("unknown action %q", action)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("action %q: keys are required", a)
		}
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				return nil, fmt.Errorf("action %q: key cannot be empty", a)
			}
			out = append(out, k)
		}
		merged[a] = out
	}
	return merged, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.policy", cfg.UI.Policy)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("ui.height", cfg.UI.Height)
	v.Set("ui.shared_store", cfg.UI.SharedStore)
	v.Set("server.addr", cfg.Server.Addr)
	v.Set("server.title", cfg.Server.Title)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (u UIConfig) UnmatchedPolicy() (core.UnmatchedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(u.Policy)) {
	case "", "compat":
		return core.UnmatchedCompat, nil
	case "symmetric":
		return core.UnmatchedSymmetric, nil
	default:
		return 0, fmt.Errorf("ui.policy %q: want compat or symmetric", u.Policy)
	}
}

func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}
