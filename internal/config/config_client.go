package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppDirName is the directory created under the user config dir to hold
	// the vault database.
	AppDirName = "go-server-vault"
	// DefaultDBFileName is the default vault database file name.
	DefaultDBFileName = "servers.db"
	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"
)

// ClientApp holds application settings used by the vault runtime.
type ClientApp struct {
	// Cipher is the AEAD name used for sealing secrets.
	Cipher string
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the log file path; empty means next to the executable.
	LogFile string
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the configuration view consumed by the vault runtime,
// assembled from [StructuredConfig] with defaults applied.
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Storage contains storage settings.
	Storage ClientStorage
	// Args holds the subcommand and its arguments left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates the vault configuration from the
// process environment and the given command-line arguments (without the
// program name).
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Cipher:   cfg.App.Cipher,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Args: rest,
	}

	if err = clientCfg.applyDefaults(); err != nil {
		return nil, err
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() error {
	if cfg.App.Cipher == "" {
		cfg.App.Cipher = CipherAESGCM
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Storage.DB.DSN == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("%w: resolve user config dir: %w", ErrInvalidStorageConfigs, err)
		}
		cfg.Storage.DB.DSN = filepath.Join(dir, AppDirName, DefaultDBFileName)
	}

	return nil
}
