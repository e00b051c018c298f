package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/json2types/internal/errors"
	"github.com/mcncl/json2types/internal/lang"
	"github.com/mcncl/json2types/internal/naming"
	"github.com/mcncl/json2types/internal/parser"
)

// Config represents the complete configuration for json2types
type Config struct {
	Language   string           `yaml:"language" env:"JSON2TYPES_LANGUAGE"`
	Package    string           `yaml:"package" env:"JSON2TYPES_PACKAGE"`
	RootName   string           `yaml:"root_name" env:"JSON2TYPES_ROOT_NAME"`
	Formatting FormattingConfig `yaml:"formatting"`
	Parser     ParserConfig     `yaml:"parser"`
	Output     OutputConfig     `yaml:"output"`
	Dev        DevConfig        `yaml:"dev"`
}

// FormattingConfig controls the gofmt pass over Go output
type FormattingConfig struct {
	Enabled bool `yaml:"enabled" env:"JSON2TYPES_FORMAT"`
}

// ParserConfig bounds the accepted input
type ParserConfig struct {
	MaxDepth int `yaml:"max_depth" env:"JSON2TYPES_MAX_DEPTH"`
}

// OutputConfig controls how records are joined
type OutputConfig struct {
	Separator string `yaml:"separator"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug" env:"JSON2TYPES_DEBUG"`
}

// Overrides holds values given on the command line. Zero values mean the flag
// was not set.
type Overrides struct {
	Language string
	Package  string
	RootName string
	NoFormat bool
	MaxDepth int
	Debug    bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Language: lang.DefaultLanguage,
		RootName: naming.Placeholder,
		Formatting: FormattingConfig{
			Enabled: true,
		},
		Parser: ParserConfig{
			MaxDepth: parser.DefaultMaxDepth,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".json2types.yml", ".json2types.yaml", "json2types.yml", "json2types.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// ApplyEnv overlays JSON2TYPES_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return errors.NewConfigError("failed to read environment", err)
	}
	return nil
}

// MergeOverrides applies command line values that were set.
func (c *Config) MergeOverrides(o Overrides) {
	if strings.TrimSpace(o.Language) != "" {
		c.Language = o.Language
	}
	if o.Package != "" {
		c.Package = o.Package
	}
	if o.RootName != "" {
		c.RootName = o.RootName
	}
	if o.NoFormat {
		c.Formatting.Enabled = false
	}
	if o.MaxDepth != 0 {
		c.Parser.MaxDepth = o.MaxDepth
	}
	if o.Debug {
		c.Dev.Debug = true
	}
}

// Validate checks that the configured language exists and limits are sane.
func (c *Config) Validate() error {
	if _, err := lang.Lookup(c.Language); err != nil {
		return errors.NewLanguageError("invalid language in configuration", err)
	}
	if c.Parser.MaxDepth <= 0 {
		return errors.NewConfigError("invalid parser settings", errors.Newf("max depth must be positive, got %d", c.Parser.MaxDepth))
	}
	return nil
}

// Renderer returns the renderer for the configured language.
func (c *Config) Renderer() (lang.Renderer, error) {
	r, err := lang.Lookup(c.Language)
	if err != nil {
		return nil, errors.NewLanguageError("unsupported output language", err)
	}
	return r, nil
}

// LoadConfigWithCLI resolves configuration from defaults, the config file,
// the environment and the command line, in increasing precedence. An empty
// configPath triggers discovery with FindConfigFile.
func LoadConfigWithCLI(configPath string, cli Overrides) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.MergeOverrides(cli)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
