package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BASECONV_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("BASECONV_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("history-file", os.Getenv("BASECONV_HISTORY_FILE"), &cfg.HistoryFile)
	s.setBoolFromString("quiet", os.Getenv("BASECONV_QUIET"), &cfg.Quiet)

	return s.setIntsFromString("bases", os.Getenv("BASECONV_TABLE_BASES"), &cfg.TableBases)
}
