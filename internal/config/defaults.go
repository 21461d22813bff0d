package config

const (
	defaultLogDir       = "~/.local/share/gradecheck/logs"
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
	defaultEncoding     = "auto"
	defaultOutputFormat = "table"
	defaultColorMode    = "auto"
	defaultExportDir    = "."
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Ingest: Ingest{
			Encoding: defaultEncoding,
		},
		Output: Output{
			Format:    defaultOutputFormat,
			Color:     defaultColorMode,
			ExportDir: defaultExportDir,
		},
	}
}
