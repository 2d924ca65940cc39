package config

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/vango-dev/htmlnode/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlnode.json"

	// DefaultLogLevel is the default minimum log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log handler format.
	DefaultLogFormat = "text"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "htmlnode"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the htmlnode.json configuration.
type Config struct {
	// Output is the file rendered HTML is written to. Empty means stdout.
	// Relative paths resolve against the config file's directory.
	Output string `json:"output,omitempty"`

	// TrailingNewline appends a newline after the rendered HTML.
	TrailingNewline bool `json:"trailingNewline,omitempty"`

	// Log configures the structured logger.
	Log LogConfig `json:"log,omitempty"`

	// Metrics configures the render metrics textfile.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	// File is where metrics are written after a run. Empty disables export.
	File string `json:"file,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultMetricsNamespace,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmlnode.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Run 'htmlnode init' to create one").
				Wrap(err)
		}
		return nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, parseError(path, data, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseError locates a JSON decoding error in the config file.
func parseError(path string, data []byte, err error) error {
	ne := errors.New(errors.CodeConfigRead).
		WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
		WithSuggestion("Check that " + ConfigFileName + " is valid JSON").
		Wrap(err)

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		offset    int64 = -1
	)
	switch {
	case stderrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stderrors.As(err, &typeErr):
		offset = typeErr.Offset
	}
	if offset >= 0 {
		line, column := errors.LineColumn(data, offset)
		ne.WithLocation(path, line, column).WithSource(data)
	}
	return ne
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in values a partial file left empty.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
}

var metricNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Unknown log level " + quote(c.Log.Level) + ".").
			WithSuggestion("Use one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Unknown log format " + quote(c.Log.Format) + ".").
			WithSuggestion("Use text or json")
	}
	if !metricNameRe.MatchString(c.Metrics.Namespace) {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Metrics namespace " + quote(c.Metrics.Namespace) + " is not a valid Prometheus name.").
			WithSuggestion("Use letters, digits and underscores, not starting with a digit")
	}
	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}

// OutputPath returns the absolute or config-relative output path, or "" for
// stdout.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

// MetricsPath returns the resolved metrics textfile path, or "" when
// export is disabled.
func (c *Config) MetricsPath() string {
	return c.resolve(c.Metrics.File)
}

func (c *Config) resolve(p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing htmlnode.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'htmlnode init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its nearest parent holding htmlnode.json. When none exists the
// defaults are returned.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}

func quote(s string) string {
	return `"` + s + `"`
}
