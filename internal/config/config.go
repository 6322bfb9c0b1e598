// Package config loads the stereodesc configuration from defaults, an
// optional stereodesc.yaml, STEREODESC_ environment variables (a .env file
// in the working directory is honored) and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rmera/stereodesc/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read.
const EnvPrefix = "STEREODESC"

// Engine names.
const (
	EngineExec       = "exec"
	EngineMinimalLib = "minimallib"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the stereodesc configuration
type Config struct {
	Engine  string    `mapstructure:"engine"`
	Python  string    `mapstructure:"python"`
	Format  string    `mapstructure:"format"`
	Summary bool      `mapstructure:"summary"`
	Plot    string    `mapstructure:"plot"`
	Cache   string    `mapstructure:"cache"`
	Color   bool      `mapstructure:"color"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// flag names that don't match their key.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load builds the configuration. If path is empty, stereodesc.yaml (or .yml) is
// looked for in the working directory and it is fine if none is there; otherwise
// path must exist. flags can be nil. Only flags that were set on the command line
// override the other sources.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	v := viper.New()

	v.SetDefault("engine", EngineExec)
	v.SetDefault("python", "python3")
	v.SetDefault("format", FormatText)
	v.SetDefault("summary", false)
	v.SetDefault("plot", "")
	v.SetDefault("cache", "")
	v.SetDefault("color", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("stereodesc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "config", "help":
			return
		case "no-color":
			if f.Changed {
				var off bool
				off, err = flags.GetBool("no-color")
				v.Set("color", !off)
			}
			return
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		err = v.BindPFlag(key, f)
	})
	if err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return nil
}

// Validate checks that the names in the configuration are known.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineExec, EngineMinimalLib:
	default:
		return fmt.Errorf("engine must be %q or %q, got: %q", EngineExec, EngineMinimalLib, c.Engine)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got: %q", FormatText, FormatJSON, c.Format)
	}
	if c.Engine == EngineExec && c.Python == "" {
		return fmt.Errorf("python must not be empty with the %q engine", EngineExec)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
