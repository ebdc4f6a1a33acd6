package logger

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SetupLogger initializes the default logger from CLI-level settings.
func SetupLogger(logLevel string, logJSON bool) {
	cfg := DefaultConfig()
	cfg.Level = LogLevel(logLevel)
	cfg.JSON = logJSON
	Init(cfg)
}

// GetLoggerConfig reads the persistent logging flags off a command.
func GetLoggerConfig(cmd *cobra.Command) (string, bool, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return "", false, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return "", false, fmt.Errorf("failed to get log-json flag: %w", err)
	}
	return logLevel, logJSON, nil
}
