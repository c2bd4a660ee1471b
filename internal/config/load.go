package config

import (
	"context"
	stderrors "errors"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/tickclock/internal/bcd"
	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/errors"
)

// newViperInstance creates a Viper instance with the TICKCLOCK_ env prefix,
// the key replacer and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr) || os.IsNotExist(err)
}

// Load reads configuration from all available sources with proper precedence.
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	return LoadFile(ctx, "")
}

// LoadFile is Load with an explicit config file taking the place of the
// project config. Unlike the project config, an explicit file must exist.
func LoadFile(ctx context.Context, path string) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	} else if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Int("clock.ticks_per_second", cfg.Clock.TicksPerSecond).
		Stringer("clock.time", cfg.Clock.Time).
		Stringer("clock.alarm", cfg.Clock.Alarm).
		Bool("clock.sync_host", cfg.Clock.SyncHost).
		Bool("metrics.enabled", cfg.Metrics.Enabled).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths, mainly for
// tests. Either path can be empty to skip that level; missing files are
// skipped as well.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// LoadWithOverrides loads configuration (see LoadFile) and applies CLI flag
// overrides on top. Only non-zero override values are applied; booleans
// can only be switched on this way.
func LoadWithOverrides(ctx context.Context, path string, overrides *Config) (*Config, error) {
	cfg, err := LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

func loadProjectConfig(v *viper.Viper) error {
	path := ProjectConfigPath()
	if !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// setDefaults registers every key with viper. Keys must match the
// mapstructure tags, and every key needs a default for env overrides to work.
func setDefaults(v *viper.Viper) {
	v.SetDefault("clock.ticks_per_second", constants.DefaultTicksPerSecond)
	v.SetDefault("clock.time", "")
	v.SetDefault("clock.alarm", "")
	v.SetDefault("clock.sync_host", false)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.address", constants.DefaultMetricsAddress)

	v.SetDefault("output.bell", true)
}

func applyOverrides(cfg, overrides *Config) {
	if overrides.Clock.TicksPerSecond != 0 {
		cfg.Clock.TicksPerSecond = overrides.Clock.TicksPerSecond
	}
	if len(overrides.Clock.Time) > 0 {
		cfg.Clock.Time = overrides.Clock.Time
		cfg.Clock.SyncHost = false
	}
	if overrides.Clock.SyncHost {
		cfg.Clock.SyncHost = true
		cfg.Clock.Time = nil
	}
	if len(overrides.Clock.Alarm) > 0 {
		cfg.Clock.Alarm = overrides.Clock.Alarm
	}
	if overrides.Metrics.Enabled {
		cfg.Metrics.Enabled = true
	}
	if overrides.Metrics.Address != "" {
		cfg.Metrics.Address = overrides.Metrics.Address
	}
}

// viperDecoderOption configures mapstructure to decode "HH:MM[:SS]" strings
// into Digits.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			stringToDigitsHookFunc(),
		),
	)
}

func stringToDigitsHookFunc() mapstructure.DecodeHookFuncType {
	digitsType := reflect.TypeOf(Digits(nil))
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != digitsType {
			return data, nil
		}
		s := strings.TrimSpace(data.(string))
		if s == "" {
			return Digits(nil), nil
		}
		digits, err := bcd.Parse(s)
		if err != nil {
			return nil, err
		}
		return Digits(digits), nil
	}
}
