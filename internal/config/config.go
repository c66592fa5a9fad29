// Package config loads the settings of the syukujitsu command.
//
// Values are layered: defaults, then an optional YAML file, then the
// LOG_LEVEL environment variable, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rabitt1ove/syukujitsu"
	"github.com/rabitt1ove/syukujitsu/source"
)

// AppName prefixes every log line.
const AppName = "syukujitsu"

// Config is the command configuration.
type Config struct {
	CSVPath     string        `yaml:"csv_path,omitempty"`
	Encoding    string        `yaml:"encoding,omitempty" validate:"oneof=shift_jis utf-8"`
	CKANURL     string        `yaml:"ckan_url,omitempty" validate:"omitempty,url"`
	SourceURLs  []string      `yaml:"source_urls,omitempty" validate:"dive,url"`
	HTTPTimeout time.Duration `yaml:"http_timeout,omitempty" validate:"gt=0"`
	MaxRetries  int           `yaml:"max_retries,omitempty" validate:"gte=1,lte=10"`
	Listen      string        `yaml:"listen,omitempty" validate:"required"`
	CORSOrigins []string      `yaml:"cors_origins,omitempty"`
	LogLevel    string        `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	// Extra are company or local holidays added to the public list.
	Extra []ExtraHoliday `yaml:"extra,omitempty" validate:"dive"`
}

// ExtraHoliday is an additional holiday in the same "YYYY/M/D" form as the
// public list.
type ExtraHoliday struct {
	Date string `yaml:"date" validate:"required"`
	Name string `yaml:"name" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CSVPath:     "syukujitsu.csv",
		Encoding:    source.ShiftJIS,
		CKANURL:     source.CKANURL,
		SourceURLs:  []string{source.DefaultURL},
		HTTPTimeout: 30 * time.Second,
		MaxRetries:  3,
		Listen:      ":8080",
		LogLevel:    "info",
	}
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment variables onto c.
func (c *Config) ApplyEnv() {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		c.LogLevel = lvl
	}
}

// Parse builds a Config for a subcommand from args. A -config flag names a
// YAML file applied before the other flags.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()

	// The file has to be read before flags override it, so -config is
	// located in a first pass.
	pre := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	configPath := pre.String("config", "", "")
	_ = pre.Parse(filterConfigFlag(args))
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()

	fs.String("config", *configPath, "YAML configuration file")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "holiday list CSV path")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "CSV encoding (shift_jis or utf-8)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Listen, "listen", cfg.Listen, "listen address for serve")
	fs.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout for fetch")
	fs.IntVar(&cfg.MaxRetries, "retries", cfg.MaxRetries, "attempts per URL for fetch")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// filterConfigFlag keeps only -config/--config arguments so the first pass
// does not trip over flags it does not know.
func filterConfigFlag(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-config" || a == "--config":
			out = append(out, a)
			if i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
		case strings.HasPrefix(a, "-config=") || strings.HasPrefix(a, "--config="):
			out = append(out, a)
		}
	}
	return out
}

var validate = validator.New()

// Validate checks the field constraints and the extra holiday dates.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	var errs []error
	for _, e := range c.Extra {
		if _, _, _, err := syukujitsu.ParseDate(e.Date); err != nil {
			errs = append(errs, fmt.Errorf("extra holiday %q: %w", e.Name, err))
		}
	}
	return errors.Join(errs...)
}

// ExtraRows returns the extra holidays as rows for syukujitsu.New.
func (c Config) ExtraRows() []syukujitsu.Row {
	rows := make([]syukujitsu.Row, 0, len(c.Extra))
	for _, e := range c.Extra {
		rows = append(rows, syukujitsu.Row{Date: e.Date, Label: e.Name})
	}
	return rows
}
