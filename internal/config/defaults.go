package config

const (
	defaultDataDir         = "~/.local/share/tessera"
	defaultLogDir          = "~/.local/share/tessera/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultDefaultLanguage = "latin"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Tokenizer: Tokenizer{
			DefaultLanguage: defaultDefaultLanguage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
