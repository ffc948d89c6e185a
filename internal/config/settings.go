package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base-url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"api-url":   "api.base-url",
	"token":     "api.token",
	"timeout":   "api.timeout",
	"log-level": "log.level",
	"db":        "database.path",
	"theme":     "ui.theme",
}

// RegisterFlags adds the config override flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("api-url", "", "admin API base URL")
	fs.String("token", "", "admin API bearer token")
	fs.Duration("timeout", 0, "admin API request timeout")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("db", "", "mute cache database path")
	fs.String("theme", "", "UI theme (default, dracula)")
}

// Load reads configuration from the optional file at path (or config.yaml
// under configDir when path is empty), MUTEDESK_* environment variables and
// defaults rooted at dataDir. Flags registered with RegisterFlags win over
// all of them when set.
func Load(path, configDir, dataDir string, fs *pflag.FlagSet) (*viper.Viper, *Config, error) {
	v := viper.New()
	v.SetDefault("api.base-url", DefaultAPIURL)
	v.SetDefault("api.token", "")
	v.SetDefault("api.timeout", DefaultAPITimeout)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir, LogFileName))
	v.SetDefault("database.path", filepath.Join(dataDir, DBFileName))
	v.SetDefault("ui.theme", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if configDir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	return v, cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base-url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api base-url must use http or https, got %q", cfg.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api base-url must include a host")
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be > 0")
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	return nil
}

// Watch re-decodes the config file whenever it changes and hands valid
// results to onChange. Invalid edits are reported through onError and the
// previous config stays in effect.
func Watch(v *viper.Viper, onChange func(*Config), onError func(error)) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return true
}
