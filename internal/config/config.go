// Package config resolves the settings of a scoring run from flags,
// LANGBENCH_* environment variables and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "LANGBENCH"

// Config holds the settings of a four-task scoring run.
type Config struct {
	Submission    string `mapstructure:"submission" validate:"required,dir"`
	Reference     string `mapstructure:"reference" validate:"required,dir"`
	Output        string `mapstructure:"output" validate:"required"`
	ReportName    string `mapstructure:"report-name" validate:"required"`
	Summary       bool   `mapstructure:"summary"`
	SummaryName   string `mapstructure:"summary-name" validate:"required_if=Summary true"`
	PartialCredit bool   `mapstructure:"partial-credit"`
}

// ReportPath is the path of the flat text report.
func (c *Config) ReportPath() string {
	return filepath.Join(c.Output, c.ReportName)
}

// SummaryPath is the path of the YAML run summary.
func (c *Config) SummaryPath() string {
	return filepath.Join(c.Output, c.SummaryName)
}

func defaults(v *viper.Viper) {
	v.SetDefault("output", ".")
	v.SetDefault("report-name", "scores.txt")
	v.SetDefault("summary", false)
	v.SetDefault("summary-name", "scores.yaml")
	v.SetDefault("partial-credit", false)
}

// Load builds a Config. Precedence is flags, then environment, then the
// file named by the "config" flag, then defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report the flag name rather than the Go field name
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks a Config using its struct tags.
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, "--"+e.Field()+" "+formatValidationError(e))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if":
		return "is required"
	case "dir":
		return fmt.Sprintf("must be an existing directory (got %q)", e.Value())
	default:
		return "failed " + e.Tag() + " validation"
	}
}
