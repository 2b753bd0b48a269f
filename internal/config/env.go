package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every tunable's environment variable name.
const EnvPrefix = "MATHBIRD_"

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", f, err)
		}
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset or unparseable values.
func FromEnv() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg, os.Getenv)
	return cfg
}

// ApplyEnv overrides cfg with any values returned by getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	ints := []struct {
		name string
		dst  *int
	}{
		{"QUESTIONS_PER_SESSION", &cfg.Session.QuestionsPerSession},
		{"BASE_SCORE_MULTIPLIER", &cfg.Scoring.BaseMultiplier},
		{"TIME_BONUS_THRESHOLD", &cfg.Scoring.TimeBonusThreshold},
		{"TIME_BONUS_PER_SECOND", &cfg.Scoring.TimeBonusPerSecond},
		{"STREAK_BONUS_INTERVAL", &cfg.Scoring.StreakBonusInterval},
		{"STREAK_BONUS_AMOUNT", &cfg.Scoring.StreakBonusAmount},
		{"VARIETY_BONUS_PER_OPERATOR", &cfg.Scoring.VarietyBonusPerOperator},
		{"PERFECT_TIME", &cfg.Rewards.Perfect.Time},
		{"GREAT_TIME", &cfg.Rewards.Great.Time},
		{"EASY_MAX_NUMBER", &cfg.Difficulty.Easy.MaxNumber},
		{"MEDIUM_MAX_NUMBER", &cfg.Difficulty.Medium.MaxNumber},
		{"HARD_MAX_NUMBER", &cfg.Difficulty.Hard.MaxNumber},
		{"EXPERT_MAX_NUMBER", &cfg.Difficulty.Expert.MaxNumber},
		{"MAX_MULTIPLICATION_NUMBER", &cfg.Difficulty.Multiplication.MaxNumber},
		{"SUBTRACTION_MIN_LEVEL", &cfg.Operators.SubtractionMinLevel},
		{"MULTIPLICATION_MIN_LEVEL", &cfg.Operators.MultiplicationMinLevel},
		{"RECENT_OPERATOR_WINDOW", &cfg.Operators.RecentWindow},
		{"MAX_GENERATION_ATTEMPTS", &cfg.Generation.MaxAttempts},
	}
	for _, e := range ints {
		v := getenv(EnvPrefix + e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring %s%s=%q: not an integer\n", EnvPrefix, e.name, v)
			continue
		}
		*e.dst = n
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"MIN_ACCURACY_FOR_LEVEL_UP", &cfg.LevelUp.MinAccuracy},
		{"MIN_ACCURACY_FOR_DIFFICULTY_REDUCTION", &cfg.LevelUp.MinAccuracyForReduction},
		{"PERFECT_ACCURACY", &cfg.Rewards.Perfect.Accuracy},
		{"GREAT_ACCURACY", &cfg.Rewards.Great.Accuracy},
		{"GOOD_ACCURACY", &cfg.Rewards.Good.Accuracy},
	}
	for _, e := range floats {
		v := getenv(EnvPrefix + e.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring %s%s=%q: not a number\n", EnvPrefix, e.name, v)
			continue
		}
		*e.dst = f
	}
}
