package config

const (
	defaultOutputDir    = "~/triage/output"
	defaultLogDir       = "~/.local/share/triage/logs"
	defaultDataDir      = "~/.local/share/triage"
	defaultExportFormat = "xlsx"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			DataDir:   defaultDataDir,
		},
		Export: Export{
			Format: defaultExportFormat,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
