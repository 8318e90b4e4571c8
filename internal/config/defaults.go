package config

const (
	defaultConfigPath      = "~/.config/p2mark/config.toml"
	projectConfigName      = "p2mark.toml"
	defaultStateDir        = "~/.local/share/p2mark"
	defaultJournalFile     = "journal.db"
	defaultClipSizeLimitMB = 2
	defaultSourceExt       = ".XML"
	defaultSidecarExt      = ".XMP"
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"
)

const (
	envStateDir = "P2MARK_STATE_DIR"
	envLogLevel = "P2MARK_LOG_LEVEL"
)

// Default returns a Config populated with built-in defaults. Paths are not
// expanded until Load normalizes them.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Scan: Scan{
			ClipSizeLimitMB: defaultClipSizeLimitMB,
			SourceExt:       defaultSourceExt,
			SidecarExt:      defaultSidecarExt,
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
