package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/faizmokh/worktimer/internal/files"
	"github.com/faizmokh/worktimer/internal/log"
)

// DefaultWeeklyGoalHours is used when config.env does not set a goal.
const DefaultWeeklyGoalHours = 100.0

const (
	keyWeeklyGoal = "WEEKLY_GOAL_HOURS"
	keyLogLevel   = "LOG_LEVEL"
)

// Config holds the user's settings. None of it is persisted by the timer.
type Config struct {
	WeeklyGoalHours float64
	LogLevel        slog.Level
}

// Default returns the settings used when no config.env exists.
func Default() Config {
	return Config{
		WeeklyGoalHours: DefaultWeeklyGoalHours,
		LogLevel:        slog.LevelInfo,
	}
}

// Load reads config.env from the manager's data directory. A missing file, or
// a data directory that cannot exist, yields Default(); a present file with
// bad values is an error.
func Load(manager *files.Manager) (Config, error) {
	cfg := Default()

	values, err := godotenv.Read(manager.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if raw, ok := values[keyWeeklyGoal]; ok {
		goal, err := ParseGoal(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", keyWeeklyGoal, err)
		}
		cfg.WeeklyGoalHours = goal
	}

	if raw, ok := values[keyLogLevel]; ok {
		level, err := log.ParseLevel(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", keyLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// ParseGoal validates a weekly goal expressed in hours.
func ParseGoal(raw string) (float64, error) {
	goal, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid goal %q: %w", raw, err)
	}
	if goal <= 0 || math.IsInf(goal, 0) || math.IsNaN(goal) {
		return 0, fmt.Errorf("invalid goal %q (must be a positive number of hours)", raw)
	}
	return goal, nil
}
