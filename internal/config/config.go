package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/bitcalc/internal/sequence"
	"github.com/go-playground/validator/v10"
)

// Config is the bitcalc runtime configuration.
type Config struct {
	StrictLength bool         `toml:"strict_length"`
	LogLevel     string       `toml:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Server       ServerConfig `toml:"server"`
}

type ServerConfig struct {
	Addr        string   `toml:"addr" validate:"required,hostname_port"`
	CorsOrigins []string `toml:"cors_origins" validate:"dive,url"`
	Metrics     bool     `toml:"metrics"`
}

func Default() Config {
	return Config{
		StrictLength: false,
		LogLevel:     "info",
		Server: ServerConfig{
			Addr:        ":9000",
			CorsOrigins: []string{"http://localhost:3000"},
			Metrics:     true,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a TOML file and applies every key it defines on top of Default.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("strict_length") {
		cfg.StrictLength = raw.StrictLength
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "cors_origins") {
		cfg.Server.CorsOrigins = normalizeOrigins(raw.Server.CorsOrigins)
	}
	if meta.IsDefined("server", "metrics") {
		cfg.Server.Metrics = raw.Server.Metrics
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// SequenceOptions maps config onto sequence construction options.
func (c Config) SequenceOptions() []sequence.Option {
	if c.StrictLength {
		return []sequence.Option{sequence.WithStrictLength()}
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
