package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Display modes accepted by CHIMG_DISPLAY.
const (
	DisplayAuto     = "auto"
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

type Config struct {
	Processing ProcessingConfig
	Display    DisplayConfig
	Console    ConsoleConfig
	Log        LogConfig

	// EnvFileLoaded reports whether a .env file was found and applied.
	EnvFileLoaded bool
}

type ProcessingConfig struct {
	Filter      string
	JPEGQuality int
}

type DisplayConfig struct {
	Mode           string
	ScreenFraction float64
}

type ConsoleConfig struct {
	Color bool
}

type LogConfig struct {
	Level    string
	Encoding string
}

func Load() (*Config, error) {
	loaded := godotenv.Load() == nil

	cfg := &Config{
		Processing: ProcessingConfig{
			Filter:      strings.ToLower(getEnv("CHIMG_FILTER", "lanczos")),
			JPEGQuality: getEnvAsInt("CHIMG_JPEG_QUALITY", 95),
		},
		Display: DisplayConfig{
			Mode:           strings.ToLower(getEnv("CHIMG_DISPLAY", DisplayAuto)),
			ScreenFraction: getEnvAsFloat("CHIMG_SCREEN_FRACTION", 0.9),
		},
		Console: ConsoleConfig{
			Color: getEnvAsBool("CHIMG_COLOR", true) && os.Getenv("NO_COLOR") == "",
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "warn"),
			Encoding: getEnv("LOG_ENCODING", "console"),
		},
		EnvFileLoaded: loaded,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if q := c.Processing.JPEGQuality; q < 1 || q > 100 {
		return fmt.Errorf("CHIMG_JPEG_QUALITY must be between 1 and 100, got %d", q)
	}

	switch c.Display.Mode {
	case DisplayAuto, DisplayWindow, DisplayTerminal:
	default:
		return fmt.Errorf("CHIMG_DISPLAY must be one of %s, %s, %s, got %q",
			DisplayAuto, DisplayWindow, DisplayTerminal, c.Display.Mode)
	}

	if f := c.Display.ScreenFraction; f <= 0 || f > 1 {
		return fmt.Errorf("CHIMG_SCREEN_FRACTION must be in (0, 1], got %v", f)
	}

	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_ENCODING must be console or json, got %q", c.Log.Encoding)
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}
