package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the global vault flags from args. Parsing stops at the
// first non-flag argument; it and everything after it are returned as the
// command line for the subcommand.
//
// Flags:
//
//	-d database file path
//	-cipher secret cipher (aes-256-gcm, chacha20-poly1305)
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		databaseDSN    string
		cipherName     string
		logLevel       string
		logFile        string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "Database file path")
	fs.StringVar(&cipherName, "cipher", "", "Secret cipher (aes-256-gcm, chacha20-poly1305)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Cipher:   cipherName,
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
