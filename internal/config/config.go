package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "20:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon",...,"Sun"]
	Holidays []string `mapstructure:"holidays"` // ["2025-01-26"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Europe/Berlin" (optional)
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"` // file | sqlite | memory
	Slot    string `mapstructure:"slot"`
}

type EncryptionConfig struct {
	Passphrase string `mapstructure:"passphrase"`
}

type DisplayConfig struct {
	Locale string `mapstructure:"locale"` // en-US, en-GB, de-DE, ja-JP, iso
	Order  string `mapstructure:"order"`  // insertion | date
	Format string `mapstructure:"format"` // default list output format
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	Theme      string           `mapstructure:"theme"`
	DataDir    string           `mapstructure:"data_dir"`
	Store      StoreConfig      `mapstructure:"store"`
	Encryption EncryptionConfig `mapstructure:"encryption"`
	Display    DisplayConfig    `mapstructure:"display"`
	Log        LogConfig        `mapstructure:"log"`
	Reminder   ReminderConfig   `mapstructure:"reminder"`
}

func Default() Config {
	return Config{
		Theme:   "default",
		DataDir: defaultDataDir(),
		Store:   StoreConfig{Backend: "file", Slot: "wellnessEntries"},
		Display: DisplayConfig{Locale: "en-US", Order: "insertion", Format: "default"},
		Log:     LogConfig{Level: "info"},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "20:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Holidays: []string{},
			Timezone: "",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindtrack"
	}
	return filepath.Join(home, ".local", "share", "mindtrack")
}

// Path returns the config file location, ~/.config/mindtrack/config.yaml unless
// MINDTRACK_CONFIG points elsewhere.
func Path() (string, error) {
	if p := os.Getenv("MINDTRACK_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mindtrack", "config.yaml"), nil
}

// Load reads the config file (missing is fine), then .env, then MINDTRACK_* env vars.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	cfg := Default()
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("MINDTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("encryption.passphrase", "MINDTRACK_ENCRYPTION_PASSPHRASE", "MINDTRACK_PASSPHRASE")

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("store.backend", cfg.Store.Backend)
	v.SetDefault("store.slot", cfg.Store.Slot)
	v.SetDefault("encryption.passphrase", cfg.Encryption.Passphrase)
	v.SetDefault("display.locale", cfg.Display.Locale)
	v.SetDefault("display.order", cfg.Display.Order)
	v.SetDefault("display.format", cfg.Display.Format)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return cfg, fmt.Errorf("config read: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Reminder.Workdays = normalizeWorkdays(cfg.Reminder.Workdays)
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.DataDir, "mindtrack.log")
	}
	return cfg, nil
}

// normalizeWorkdays turns "monday", " TUE" into "Mon", "Tue" and drops blanks.
func normalizeWorkdays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		d = strings.ToLower(strings.TrimSpace(d))
		if len(d) < 3 {
			continue
		}
		out = append(out, strings.ToUpper(d[:1])+d[1:3])
	}
	return out
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
