package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"shopadmin/internal/backend"
	"shopadmin/internal/panel"
)

// EnvPrefix prefixes environment overrides, e.g. SHOPADMIN_BACKEND.
const EnvPrefix = "SHOPADMIN"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string        `mapstructure:"home"`        // config directory, e.g. $HOME/.shopadmin
	Backend    string        `mapstructure:"backend"`     // backend origin, e.g. http://localhost:3000
	Timeout    time.Duration `mapstructure:"timeout"`     // per-request timeout; 0 waits forever
	LogLevel   string        `mapstructure:"log-level"`   // zerolog level name
	Passphrase string        `mapstructure:"passphrase"`  // seals the session file when set
	MessageTTL time.Duration `mapstructure:"message-ttl"` // status message lifetime
}

// AddFlags registers the persistent flags that map onto Config keys.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("home", "", "config dir (default ~/.shopadmin)")
	fs.String("backend", backend.DefaultBaseURL, "backend base URL")
	fs.Duration("timeout", 0, "per-request timeout (0 = none)")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringP("passphrase", "p", "", "passphrase to encrypt the saved session")
	fs.Duration("message-ttl", panel.DefaultMessageTTL, "how long status messages stay visible")
}

// LoadConfig resolves Config with precedence flags > environment > config
// file > defaults. The config file is <home>/config.yaml and is optional.
func LoadConfig(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	home := v.GetString("home")
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, ".shopadmin")
	}
	v.Set("home", home)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	u, err := url.Parse(c.Backend)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend: want an absolute http(s) URL, got %q", c.Backend)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.MessageTTL < 0 {
		return fmt.Errorf("message-ttl must not be negative")
	}
	return nil
}
