package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"route2file/internal/paths"
)

// CurrentVersion is the config schema version written by Save.
const CurrentVersion = 1

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ROUTE_TO_FILE"

// ProjectRootEnvVar supplies the default project root.
const ProjectRootEnvVar = "ROUTE_TO_FILE_PROJECT_ROOT"

// Supported file formats for Save and config discovery.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Config represents the complete route2file configuration
type Config struct {
	Version     int    `json:"version" toml:"version" yaml:"version" mapstructure:"version" validate:"eq=1"`
	ProjectRoot string `json:"projectRoot" toml:"projectRoot" yaml:"projectRoot" mapstructure:"projectRoot"`

	Logging LoggingConfig `json:"logging" toml:"logging" yaml:"logging" mapstructure:"logging"`
	Search  SearchConfig  `json:"search" toml:"search" yaml:"search" mapstructure:"search"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level" toml:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format string `json:"format" toml:"format" yaml:"format" mapstructure:"format" validate:"oneof=human json"`
	// File receives logs instead of stderr when set.
	File string `json:"file,omitempty" toml:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// SearchConfig tunes candidate reporting and the keyword fallback
type SearchConfig struct {
	PreviewLimit    int      `json:"previewLimit" toml:"previewLimit" yaml:"previewLimit" mapstructure:"previewLimit" validate:"gte=1,lte=1000"`
	Parallel        bool     `json:"parallel" toml:"parallel" yaml:"parallel" mapstructure:"parallel"`
	ExtraIgnoreDirs []string `json:"extraIgnoreDirs" toml:"extraIgnoreDirs" yaml:"extraIgnoreDirs" mapstructure:"extraIgnoreDirs" validate:"dive,required,excludesall=/\\"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "human",
		},
		Search: SearchConfig{
			PreviewLimit:    20,
			Parallel:        true,
			ExtraIgnoreDirs: []string{},
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("projectRoot", d.ProjectRoot)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("search.previewLimit", d.Search.PreviewLimit)
	v.SetDefault("search.parallel", d.Search.Parallel)
	v.SetDefault("search.extraIgnoreDirs", d.Search.ExtraIgnoreDirs)
}

// LoadConfig loads configuration from path, or from config.{json,toml,yaml}
// in the settings directory when path is empty. A missing file in the
// settings directory yields the defaults; a missing explicit path is an
// error. Environment variables override file values. A relative
// projectRoot is resolved against the working directory.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("projectRoot", ProjectRootEnvVar); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := paths.GetHome()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Search.ExtraIgnoreDirs == nil {
		cfg.Search.ExtraIgnoreDirs = []string{}
	}
	if cfg.ProjectRoot != "" {
		root, err := filepath.Abs(cfg.ProjectRoot)
		if err != nil {
			return nil, fmt.Errorf("resolve projectRoot: %w", err)
		}
		cfg.ProjectRoot = root
	}
	return &cfg, nil
}

// FormatFromPath infers a file format from path's extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DefaultPath returns the settings-directory config path for format.
func DefaultPath(format string) (string, error) {
	home, err := paths.GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config."+format), nil
}

// Marshal encodes the configuration in format.
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(c)
	default:
		return nil, &ConfigError{Field: "format", Message: fmt.Sprintf("unsupported format %q", format)}
	}
}

// Save writes the configuration to path in format, creating parent
// directories as needed.
func (c *Config) Save(path, format string) error {
	data, err := c.Marshal(format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var validate = validator.New()

// Validate checks if the configuration is valid. It reports the first
// offending field as a ConfigError.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ConfigError{
				Field:   fe.Namespace(),
				Message: fmt.Sprintf("failed %q check (value %v)", fe.Tag(), fe.Value()),
			}
		}
		return err
	}
	if c.ProjectRoot != "" && !filepath.IsAbs(c.ProjectRoot) {
		return &ConfigError{Field: "Config.ProjectRoot", Message: "must be an absolute path"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
