package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateJournal(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.ClipSizeLimitMB <= 0 {
		return fmt.Errorf("scan.clip_size_limit_mb must be positive, got %d", c.Scan.ClipSizeLimitMB)
	}
	for field, ext := range map[string]string{"scan.source_ext": c.Scan.SourceExt, "scan.sidecar_ext": c.Scan.SidecarExt} {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%s must look like .EXT, got %q", field, ext)
		}
		if strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("%s must not contain path separators, got %q", field, ext)
		}
	}
	if strings.EqualFold(c.Scan.SourceExt, c.Scan.SidecarExt) {
		return fmt.Errorf("scan.sidecar_ext must differ from scan.source_ext (%s)", c.Scan.SourceExt)
	}
	return nil
}

func (c *Config) validateJournal() error {
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return errors.New("journal.path must be set when the journal is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
