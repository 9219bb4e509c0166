// Package config loads the settings of the tradereport command.
//
// Settings come, by increasing priority, from the defaults, a YAML file, a
// .env file and the environment (variables prefixed with TRADEREPORT_).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/tradereport"
	"github.com/etnz/tradereport/date"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "TRADEREPORT"

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "tradereport.yaml"

// Config holds the settings of the command.
type Config struct {
	// CommissionField is the column holding the commission amounts.
	CommissionField string `yaml:"commission_field" envconfig:"COMMISSION_FIELD" validate:"required"`
	// Currency is the ISO code of the account currency.
	Currency string `yaml:"currency" envconfig:"CURRENCY" validate:"required,currency"`
	// Period is the default period of reports.
	Period string `yaml:"period" envconfig:"PERIOD" validate:"required,period"`
	// OutputDir is where exports without a directory are written.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"required,loglevel"`
	// CheckUpdates enables the lookup of the latest release by `version`.
	CheckUpdates bool `yaml:"check_updates" envconfig:"CHECK_UPDATES"`
	// Workers is the number of goroutines classifying rows, 0 or 1 for none.
	Workers int `yaml:"workers" envconfig:"WORKERS" validate:"gte=0"`
}

// Default returns the default settings.
func Default() Config {
	return Config{
		CommissionField: tradereport.CommissionRealizedPnL,
		Currency:        tradereport.DefaultCurrency,
		Period:          date.Monthly.String(),
		OutputDir:       ".",
		LogLevel:        "info",
		CheckUpdates:    true,
	}
}

// Load reads the configuration file at path, then the optional .env file and
// the environment.
//
// A missing DefaultFile is not an error, any other missing file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}
	if err := cfg.readFile(path); err != nil {
		if !(errors.Is(err, fs.ErrNotExist) && path == DefaultFile) {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}

// validate checks the settings against their validate tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return money.GetCurrency(fl.Field().String()) != nil
	})
	v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		_, err := date.ParsePeriod(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := zapcore.ParseLevel(fl.Field().String())
		return err == nil
	})
	// errors name the settings as in the file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	return v
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// message formats a validation failure.
func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s, got %v", field, fe.Param(), fe.Value())
	case "currency":
		return fmt.Sprintf("%s: unknown currency %q", field, fe.Value())
	case "period":
		return fmt.Sprintf("%s: unknown period %q", field, fe.Value())
	case "loglevel":
		return fmt.Sprintf("%s: unknown log level %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// ParsedPeriod returns the default period. Validate guarantees it parses.
func (c *Config) ParsedPeriod() date.Period {
	p, _ := date.ParsePeriod(c.Period)
	return p
}
