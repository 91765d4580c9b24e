package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/derekjohnsonva/minesweeper/internal/mines"
)

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode      string    `json:"mode"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	MineCount int       `json:"mine_count"`
	Glyphs    string    `json:"glyphs"`
	Color     bool      `json:"color"`
	Log       LogConfig `json:"log"`
}

func Default() Config {
	return Config{
		Mode:      "production",
		Width:     9,
		Height:    9,
		MineCount: 10,
		Glyphs:    "emoji",
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Read loads path over the defaults. A missing file is not an error, an
// unreadable or malformed one is. Environment overrides are applied last.
func Read(path string) (Config, error) {
	config := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &config); err != nil {
				return config, fmt.Errorf("unable to parse config %s: %w", path, err)
			}
		}
	}
	if err := config.applyEnv(); err != nil {
		return config, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		c.Mode = mode
	}
	if Development() {
		c.Mode = "development"
	}
	if level, ok := os.LookupEnv("MINES_LOG_LEVEL"); ok {
		c.Log.Level = level
	}
	if file, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.Log.File = file
	}
	if glyphs, ok := os.LookupEnv("MINES_GLYPHS"); ok {
		c.Glyphs = glyphs
	}
	if color, ok := os.LookupEnv("MINES_COLOR"); ok {
		v, err := strconv.ParseBool(color)
		if err != nil {
			return fmt.Errorf("unable to parse MINES_COLOR: %w", err)
		}
		c.Color = v
	}
	return nil
}

func (c Config) Params() mines.GameParams {
	return mines.GameParams{Width: c.Width, Height: c.Height, MineCount: c.MineCount}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":          c.Mode,
		"params":        c.Params().Seed(),
		"glyphs":        c.Glyphs,
		"color":         c.Color,
		"log_level":     c.Log.Level,
		"log_file":      c.Log.File,
		"log_max_size":  c.Log.MaxSizeMB,
		"log_max_files": c.Log.MaxBackups,
	}
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Development reports whether the DEVELOPMENT env variable asks for
// development mode.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
