// Package configuration reads the settings of the file manager from
// configuration files and the process environment.
package configuration

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/desertwitch/fileman/internal/filesystem"
	"github.com/desertwitch/fileman/internal/replace"
)

const (
	KeyStrategy       = "FILEMAN_STRATEGY"
	KeyDirMode        = "FILEMAN_DIR_MODE"
	KeyTemplate       = "FILEMAN_TEMPLATE"
	KeyLogLevel       = "FILEMAN_LOG_LEVEL"
	KeySkipNamespaces = "FILEMAN_SKIP_XATTR_NAMESPACES"
	KeyVerifyCopies   = "FILEMAN_VERIFY_COPIES"
)

// DefaultDirMode is the mode of directories created without an explicit one.
const DefaultDirMode = 0o755

// Config is the principal structure holding the file manager settings.
type Config struct {
	Strategy     replace.Preference
	DirMode      uint32
	Template     string
	LogLevel     slog.Level
	VerifyCopies bool

	// SkipXattrNamespaces is nil when the defaults apply; an empty slice
	// disables the filtering.
	SkipXattrNamespaces []string
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Strategy: replace.PreferAuto,
		DirMode:  DefaultDirMode,
		Template: filesystem.DefaultTemplate,
		LogLevel: slog.LevelInfo,
	}
}

type genericConfigProvider interface {
	Read(filenames ...string) (map[string]string, error)
}

type envProvider interface {
	LookupEnv(key string) (string, bool)
}

// Handler is the principal implementation of the configuration loader.
type Handler struct {
	configReader genericConfigProvider
	envHandler   envProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configReader genericConfigProvider, envHandler envProvider) *Handler {
	return &Handler{
		configReader: configReader,
		envHandler:   envHandler,
	}
}

// Load reads the given configuration files, in order, and overlays the
// process environment on top. Without files only the environment is used.
func (c *Handler) Load(filenames ...string) (*Config, error) {
	values := make(map[string]string)

	if len(filenames) > 0 {
		data, err := c.configReader.Read(filenames...)
		if err != nil {
			return nil, fmt.Errorf("(config) failed to read configuration: %w", err)
		}
		values = data
	}

	for _, key := range []string{KeyStrategy, KeyDirMode, KeyTemplate, KeyLogLevel, KeySkipNamespaces, KeyVerifyCopies} {
		if v, ok := c.envHandler.LookupEnv(key); ok {
			values[key] = v
		}
	}

	return parse(values)
}

func parse(values map[string]string) (*Config, error) {
	cfg := Default()

	if v, ok := values[KeyStrategy]; ok {
		p, err := replace.ParsePreference(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyStrategy, err)
		}
		cfg.Strategy = p
	}

	if v, ok := values[KeyDirMode]; ok {
		mode, err := strconv.ParseUint(strings.TrimSpace(v), 8, 32)
		if err != nil || mode > 0o7777 {
			return nil, fmt.Errorf("%w: %s: %q is not an octal mode", ErrInvalidConfig, KeyDirMode, v)
		}
		cfg.DirMode = uint32(mode)
	}

	if v, ok := values[KeyTemplate]; ok {
		if !strings.Contains(v, "X") || strings.Contains(v, "/") {
			return nil, fmt.Errorf("%w: %s: %q needs placeholder X characters and no separators", ErrInvalidConfig, KeyTemplate, v)
		}
		cfg.Template = v
	}

	if v, ok := values[KeyLogLevel]; ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyLogLevel, err)
		}
	}

	if v, ok := values[KeySkipNamespaces]; ok {
		cfg.SkipXattrNamespaces = []string{}
		for _, ns := range strings.Split(v, ",") {
			if ns = strings.TrimSpace(ns); ns != "" {
				cfg.SkipXattrNamespaces = append(cfg.SkipXattrNamespaces, ns)
			}
		}
	}

	if v, ok := values[KeyVerifyCopies]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyVerifyCopies, err)
		}
		cfg.VerifyCopies = b
	}

	return cfg, nil
}
