package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/app"
	"shopadmin/internal/backend"
	"shopadmin/internal/panel"
)

func load(t *testing.T, args ...string) (app.Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	app.AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return app.LoadConfig(viper.New(), fs)
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := load(t, "--home", home)
	require.NoError(t, err)

	require.Equal(t, home, cfg.Home)
	require.Equal(t, backend.DefaultBaseURL, cfg.Backend)
	require.Zero(t, cfg.Timeout)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, panel.DefaultMessageTTL, cfg.MessageTTL)
	require.Empty(t, cfg.Passphrase)
}

func TestLoadConfig_FileThenEnvThenFlags(t *testing.T) {
	home := t.TempDir()
	yaml := "backend: http://file.example:1\ntimeout: 3s\nlog-level: info\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := load(t, "--home", home)
	require.NoError(t, err)
	require.Equal(t, "http://file.example:1", cfg.Backend)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.Equal(t, "info", cfg.LogLevel)

	t.Setenv("SHOPADMIN_LOG_LEVEL", "debug")
	cfg, err = load(t, "--home", home)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)

	cfg, err = load(t, "--home", home, "--backend", "https://flag.example")
	require.NoError(t, err)
	require.Equal(t, "https://flag.example", cfg.Backend)
}

func TestLoadConfig_RejectsBadBackend(t *testing.T) {
	_, err := load(t, "--home", t.TempDir(), "--backend", "localhost:3000")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	_, err := app.NewLogger(os.Stderr, "chatty")
	require.Error(t, err)

	log, err := app.NewLogger(os.Stderr, "")
	require.NoError(t, err)
	require.Equal(t, "warn", log.GetLevel().String())
}

func TestNewWire_PicksStoreByPassphrase(t *testing.T) {
	home := t.TempDir()
	w, err := app.NewWire(app.Config{Home: home, Backend: backend.DefaultBaseURL}, os.Stderr)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Store.Set(panel.TokenKey, "tok"))
	require.FileExists(t, filepath.Join(home, "session.json"))

	sealedHome := t.TempDir()
	w2, err := app.NewWire(app.Config{Home: sealedHome, Backend: backend.DefaultBaseURL, Passphrase: "pw"}, os.Stderr)
	require.NoError(t, err)
	defer w2.Close()
	require.NoError(t, w2.Store.Set(panel.TokenKey, "tok"))
	require.FileExists(t, filepath.Join(sealedHome, "session.json.enc"))
}
