package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath     = "~/.gratitude.db"
	DefaultLocale   = "en"
	DefaultReminder = "20:00"

	// ConfigPathEnv names a directory searched for .gratitude.yaml.
	ConfigPathEnv = "GRATITUDE_CONFIG_PATH"
)

type Config interface {
	BasePath() string
	Driver() string
	Locale() string
	Reminder() string
	LogLevel() string
	LogFormat() string
	SentryDSN() string
}

// LoadConfig reads .env, then .gratitude.yaml, then GRATITUDE_* variables.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("store: load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("store", DriverDiskv)
	v.SetDefault("locale", DefaultLocale)
	v.SetDefault("reminder", DefaultReminder)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("sentry.dsn", "")
	v.SetConfigName(".gratitude") // .yaml is implicit
	v.SetEnvPrefix("GRATITUDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:       path,
		Store:      v.GetString("store"),
		Lang:       v.GetString("locale"),
		RemindAt:   v.GetString("reminder"),
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		Sentry:     v.GetString("sentry.dsn"),
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	Store      string `json:"store"`
	Lang       string `json:"locale"`
	RemindAt   string `json:"reminder"`
	Level      string `json:"logLevel"`
	Format     string `json:"logFormat"`
	Sentry     string `json:"-"`
	ConfigFile string `json:"configFile,omitempty"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) Driver() string    { return f.Store }
func (f *fileConfig) Locale() string    { return f.Lang }
func (f *fileConfig) Reminder() string  { return f.RemindAt }
func (f *fileConfig) LogLevel() string  { return f.Level }
func (f *fileConfig) LogFormat() string { return f.Format }
func (f *fileConfig) SentryDSN() string { return f.Sentry }

// ConfigFile reports the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.ConfigFile
	}
	return ""
}

// StaticConfig is a Config with fixed values, zero fields fall back to defaults.
type StaticConfig struct {
	Path   string
	Store  string
	Lang   string
	Remind string
	Level  string
	Format string
	DSN    string
}

func (s StaticConfig) BasePath() string  { return s.Path }
func (s StaticConfig) Driver() string    { return or(s.Store, DriverDiskv) }
func (s StaticConfig) Locale() string    { return or(s.Lang, DefaultLocale) }
func (s StaticConfig) Reminder() string  { return or(s.Remind, DefaultReminder) }
func (s StaticConfig) LogLevel() string  { return or(s.Level, "warn") }
func (s StaticConfig) LogFormat() string { return or(s.Format, "text") }
func (s StaticConfig) SentryDSN() string { return s.DSN }

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
