// Package options provides configuration structures and utilities for the zipeq benchmark command.
package options

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables and config files.
const (
	SizeKey           = "size"
	RoundsKey         = "rounds"
	TextKey           = "text"
	WorkloadsKey      = "workloads"
	TimeoutSecondsKey = "timeout-seconds"
	VerboseKey        = "verbose"

	envPrefix = "ZIPEQ"
)

// Options holds configuration values for the benchmark command.
type Options struct {
	Size           int      `mapstructure:"size" validate:"min=1"`
	Rounds         int      `mapstructure:"rounds" validate:"min=1"`
	Text           string   `mapstructure:"text" validate:"required"`
	Workloads      []string `mapstructure:"workloads" validate:"min=1,dive,oneof=slices-std slices-eager slices-lazy chars-std chars-unchecked chars-lazy"`
	TimeoutSeconds int      `mapstructure:"timeout-seconds" validate:"min=0"`
	Verbose        bool     `mapstructure:"verbose"`
}

var validate = validator.New()

// Default returns a new Options instance with default values.
func Default() *Options {
	return &Options{
		Size:   0x1000,
		Rounds: 100,
		Text: "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor " +
			"incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud",
		Workloads: []string{
			"slices-std", "slices-eager", "slices-lazy",
			"chars-std", "chars-unchecked", "chars-lazy",
		},
		TimeoutSeconds: 60,
	}
}

// Load reads Options from v, falling back to defaults and ZIPEQ_* environment variables.
// Flags bound to v before calling Load take precedence over both.
func Load(v *viper.Viper) (*Options, error) {
	d := Default()
	v.SetDefault(SizeKey, d.Size)
	v.SetDefault(RoundsKey, d.Rounds)
	v.SetDefault(TextKey, d.Text)
	v.SetDefault(WorkloadsKey, d.Workloads)
	v.SetDefault(TimeoutSecondsKey, d.TimeoutSeconds)
	v.SetDefault(VerboseKey, d.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	o := new(Options)
	if err := v.Unmarshal(o, viper.DecodeHook(splitWordsHook)); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// FromEnv populates Options from environment variables only.
func FromEnv() (*Options, error) {
	return Load(viper.New())
}

// Validate checks the option values.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// splitWordsHook turns "a,b c" into []string{"a", "b", "c"} so lists can be given as one
// environment variable.
var splitWordsHook mapstructure.DecodeHookFuncType = func(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string(nil)) {
		return data, nil
	}
	return strings.FieldsFunc(data.(string), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}), nil
}

// ContextWithTimeout creates a context with the timeout duration.
// A zero timeout means no limit.
func (o *Options) ContextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.TimeoutSeconds <= 0 {
		return context.WithCancel(ctx)
	}
	timeout := time.Duration(o.TimeoutSeconds) * time.Second
	return context.WithTimeoutCause(ctx, timeout, fmt.Errorf("benchmark stopped after %d seconds", o.TimeoutSeconds))
}
