package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults applied before the config file is read.
const (
	DefaultPort           = "8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	DefaultDBPath         = ":memory:" // event log lives for the process lifetime only
	DefaultDBRetention    = 24 * time.Hour
	DefaultTick           = 50 * time.Millisecond
	DefaultWindow         = 81
	DefaultStreamInterval = 1 * time.Second
	MaxStreamInterval     = 10 * time.Second

	envPrefix = "VITALS"
)

// Config holds every runtime knob of the service.
type Config struct {
	Port     string
	Log      LogConfig
	DB       DBConfig
	Recorder RecorderConfig
	Stream   StreamConfig
}

type LogConfig struct {
	Level  string
	Format string // console | json
}

type DBConfig struct {
	Path      string
	Retention time.Duration // events older than this are pruned; 0 disables
}

type RecorderConfig struct {
	Tick      time.Duration
	Window    int
	AutoStart bool
	Seed      int64 // 0 picks a time-based seed
}

type StreamConfig struct {
	Interval time.Duration
}

// Load reads an optional .env, then the YAML config at path (configs/config.yml
// when empty), then VITALS_* environment overrides. A missing config file is
// not an error; defaults apply.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("db.path", DefaultDBPath)
	v.SetDefault("db.retention", DefaultDBRetention)
	v.SetDefault("recorder.tick", DefaultTick)
	v.SetDefault("recorder.window", DefaultWindow)
	v.SetDefault("recorder.autostart", true)
	v.SetDefault("recorder.seed", 0)
	v.SetDefault("stream.interval", DefaultStreamInterval)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port: v.GetString("port"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		DB: DBConfig{
			Path:      v.GetString("db.path"),
			Retention: v.GetDuration("db.retention"),
		},
		Recorder: RecorderConfig{
			Tick:      v.GetDuration("recorder.tick"),
			Window:    v.GetInt("recorder.window"),
			AutoStart: v.GetBool("recorder.autostart"),
			Seed:      v.GetInt64("recorder.seed"),
		},
		Stream: StreamConfig{Interval: v.GetDuration("stream.interval")},
	}
}

// Validate rejects settings the recorder or stream cannot run with.
func (c *Config) Validate() error {
	if c.Recorder.Tick <= 0 {
		return fmt.Errorf("recorder.tick must be > 0, got %v", c.Recorder.Tick)
	}
	if c.DB.Retention < 0 {
		return fmt.Errorf("db.retention must be >= 0, got %v", c.DB.Retention)
	}
	if c.Recorder.Window < 1 {
		return fmt.Errorf("recorder.window must be >= 1, got %d", c.Recorder.Window)
	}
	if c.Stream.Interval <= 0 || c.Stream.Interval > MaxStreamInterval {
		return fmt.Errorf("stream.interval must be in (0, %v], got %v", MaxStreamInterval, c.Stream.Interval)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
