// Package config loads the player's settings from a JSON file found through
// the XDG base directories, with a few env overrides on top.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	cfgFile = "minesweeper/config.json"
	logFile = "minesweeper/minesweeper.log"
)

type InvalidConfig struct {
	Field  string
	Reason string
}

// [InvalidConfig] implements [error]
func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
}

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		return err
	default:
		return errors.New("invalid duration")
	}
}

type LogConfig struct {
	// File defaults to minesweeper/minesweeper.log under the XDG state dir.
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSize    int    `json:"max_size"` // megabytes
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"` // days
}

// ConfigColors are tcell palette indices.
type ConfigColors struct {
	Covered  int   `json:"covered"`
	Revealed int   `json:"revealed"`
	Flag     int   `json:"flag"`
	Mine     int   `json:"mine"`
	Exploded int   `json:"exploded"`
	CursorBG int   `json:"cursor_bg"`
	Numbers  []int `json:"numbers"`
}

type ConfigSymbols struct {
	Covered rune `json:"covered"`
	Empty   rune `json:"empty"`
	Flag    rune `json:"flag"`
	Mine    rune `json:"mine"`
}

type Theme struct {
	Colors  ConfigColors  `json:"colors"`
	Symbols ConfigSymbols `json:"symbols"`
}

type Config struct {
	Mode       string    `json:"mode"`
	Difficulty string    `json:"difficulty"`
	ClockTick  Duration  `json:"clock_tick"`
	Log        LogConfig `json:"log"`
	Theme      Theme     `json:"theme"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"difficulty":      c.Difficulty,
		"clock_tick":      c.ClockTick.String(),
		"log_file":        c.Log.File,
		"log_level":       c.Log.Level,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}

func (c Config) Development() bool {
	return c.Mode == "development"
}

// LogLevel is the configured level, or debug in development mode.
func (c Config) LogLevel() logrus.Level {
	if c.Development() {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// LogFile resolves the log file path, creating its directory if needed.
func (c Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(logFile)
}

func (c Config) StartDifficulty() (mines.Difficulty, error) {
	return mines.ParseDifficulty(c.Difficulty)
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// Load starts from [DefaultConfig] and applies the file at path on top. An
// empty path searches the XDG config dirs and tolerates a missing file; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err == nil {
			path = found
		}
	}
	if path != "" {
		if err := ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyEnv() {
	if Development() {
		c.Mode = "development"
	}
	if difficulty, ok := os.LookupEnv("MINESWEEPER_DIFFICULTY"); ok {
		c.Difficulty = difficulty
	}
	if file, ok := os.LookupEnv("MINESWEEPER_LOG_FILE"); ok {
		c.Log.File = file
	}
}

func (c *Config) Validate() error {
	switch c.Mode {
	case "development", "production":
	default:
		return &InvalidConfig{"mode", fmt.Sprintf("unknown mode %q", c.Mode)}
	}
	if _, err := c.StartDifficulty(); err != nil {
		return &InvalidConfig{"difficulty", err.Error()}
	}
	if c.ClockTick.Duration <= 0 {
		return &InvalidConfig{"clock_tick", "must be positive"}
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{"log.level", err.Error()}
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return &InvalidConfig{"log", "rotation limits cannot be negative"}
	}
	s := c.Theme.Symbols
	for _, r := range []rune{s.Covered, s.Empty, s.Flag, s.Mine} {
		if !unicode.IsPrint(r) {
			return &InvalidConfig{"theme.symbols", fmt.Sprintf("%U is not printable", r)}
		}
	}
	if len(c.Theme.Colors.Numbers) != 8 {
		return &InvalidConfig{"theme.colors.numbers", "need one colour for each count 1 to 8"}
	}
	return nil
}

// Save writes the config to the user's XDG config dir and returns the path.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return path, saveCfgFile(path, c, 0o664)
}

func saveCfgFile(path string, a any, perm fs.FileMode) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}
