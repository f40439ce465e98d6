package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meghashyamc/hitnbreak/breakout"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := breakout.DefaultSettings()

	v.SetDefault("window.width", int(d.ArenaWidth))
	v.SetDefault("window.height", int(d.ArenaHeight))
	v.SetDefault("window.title", d.Title)
	v.SetDefault("window.fps", d.FPS)
	v.SetDefault("bricks.rows", d.BrickRows)
	v.SetDefault("bricks.columns", d.BrickColumns)
	v.SetDefault("field.rows", d.FieldRows)
	v.SetDefault("field.columns", d.FieldColumns)
	v.SetDefault("paddle.width", d.PaddleWidth)
	v.SetDefault("paddle.height", d.PaddleHeight)
	v.SetDefault("paddle.speed", d.PaddleSpeed)
	v.SetDefault("ball.radius", d.BallRadius)
	v.SetDefault("ball.damping", d.BallDamping)
	v.SetDefault("aim.spread", d.AimSpread)
	v.SetDefault("aim.length", d.AimLength)
	v.SetDefault("game.seed", d.Seed)
	v.SetDefault("game.showhelp", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("terminal.holdms", 120)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetFPS() int {
	return c.getInt("FPS", "window.fps")
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) GetShowHelp() bool {
	if c.config.IsSet("SHOW_HELP") {
		return c.config.GetBool("SHOW_HELP")
	}

	return c.config.GetBool("game.showhelp")
}

// GetTerminalHoldMs is how long a terminal key counts as held after its last
// key event.
func (c *Config) GetTerminalHoldMs() int {
	return c.getInt("TERMINAL_HOLD_MS", "terminal.holdms")
}

// Settings assembles the immutable game settings.
func (c *Config) Settings() breakout.Settings {
	return breakout.Settings{
		ArenaWidth:   float64(c.GetWindowWidth()),
		ArenaHeight:  float64(c.GetWindowHeight()),
		Title:        c.GetWindowTitle(),
		FPS:          c.GetFPS(),
		BrickRows:    c.getInt("BRICK_ROWS", "bricks.rows"),
		BrickColumns: c.getInt("BRICK_COLUMNS", "bricks.columns"),
		FieldRows:    c.getInt("FIELD_ROWS", "field.rows"),
		FieldColumns: c.getInt("FIELD_COLUMNS", "field.columns"),
		PaddleWidth:  c.getFloat("PADDLE_WIDTH", "paddle.width"),
		PaddleHeight: c.getFloat("PADDLE_HEIGHT", "paddle.height"),
		PaddleSpeed:  c.getFloat("PADDLE_SPEED", "paddle.speed"),
		BallRadius:   c.getFloat("BALL_RADIUS", "ball.radius"),
		BallDamping:  c.getFloat("BALL_DAMPING", "ball.damping"),
		AimSpread:    c.getInt("AIM_SPREAD", "aim.spread"),
		AimLength:    c.getFloat("AIM_LENGTH", "aim.length"),
		Seed:         c.GetSeed(),
	}
}

func (c *Config) GetSeed() uint64 {
	if c.config.IsSet("GAME_SEED") {
		return c.config.GetUint64("GAME_SEED")
	}

	return c.config.GetUint64("game.seed")
}

// getInt prefers the environment key whenever it is set, zero included, and
// falls back to the file key otherwise.
func (c *Config) getInt(envKey, fileKey string) int {
	if c.config.IsSet(envKey) {
		return c.config.GetInt(envKey)
	}

	return c.config.GetInt(fileKey)
}

func (c *Config) getFloat(envKey, fileKey string) float64 {
	if c.config.IsSet(envKey) {
		return c.config.GetFloat64(envKey)
	}

	return c.config.GetFloat64(fileKey)
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
