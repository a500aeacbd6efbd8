package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int `mapstructure:"WEBSERVER_PORT" validate:"gte=0,lte=65535"`

	// Database Configuration. Only needed when the preset store is enabled.
	PresetsEnabled  bool   `mapstructure:"PRESETS_ENABLED"`
	DatabaseDSN     string `mapstructure:"DATABASE_DSN" validate:"required_if=PresetsEnabled true"`
	DatabaseRetries int    `mapstructure:"DATABASE_RETRIES" validate:"gte=1"`

	// ffmpeg Configuration
	FFmpeg FFmpegConfig

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"oneof=json text"`
}

type FFmpegConfig struct {
	Binary      string `mapstructure:"FFMPEG_PATH" validate:"required"`
	ProbeBinary string `mapstructure:"FFPROBE_PATH" validate:"required"`
}

// String hides the DSN, which usually carries a password.
func (c Config) String() string {
	dsn := ""
	if c.DatabaseDSN != "" {
		dsn = "<redacted>"
	}
	return fmt.Sprintf("{WebServerPort:%d PresetsEnabled:%t DatabaseDSN:%s DatabaseRetries:%d FFmpeg:%+v LogLevel:%s LogFormat:%s}",
		c.WebServerPort, c.PresetsEnabled, dsn, c.DatabaseRetries, c.FFmpeg, c.LogLevel, c.LogFormat)
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(v *viper.Viper, c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag != "" {
			_ = v.BindEnv(tag)
		}

		// Handle nested structs
		if field.Type.Kind() == reflect.Struct && tag == "" {
			nestedTyp := fieldVal.Type()
			for j := 0; j < fieldVal.NumField(); j++ {
				nestedField := nestedTyp.Field(j)
				nestedTag := nestedField.Tag.Get("mapstructure")
				if nestedTag != "" {
					_ = v.BindEnv(nestedTag)
				}
			}
		}
	}
}

// SetDefaults installs the default configuration values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("WEBSERVER_PORT", 8080)
	v.SetDefault("DATABASE_RETRIES", 10)
	v.SetDefault("FFMPEG_PATH", "ffmpeg")
	v.SetDefault("FFPROBE_PATH", "ffprobe")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// LoadConfig reads the configuration from the environment using the global viper instance.
func LoadConfig(ctx context.Context) (*Config, error) {
	return Load(ctx, viper.GetViper())
}

// Load reads the configuration from v. Flags bound to v by the CLI take
// precedence over the environment.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	bindEnv(v, Config{})
	v.AutomaticEnv()
	SetDefaults(v)

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Nested fields are flattened in the environment.
	cfg.FFmpeg.Binary = v.GetString("FFMPEG_PATH")
	cfg.FFmpeg.ProbeBinary = v.GetString("FFPROBE_PATH")

	slog.DebugContext(ctx, "Loaded configuration", "config", cfg.String())

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
