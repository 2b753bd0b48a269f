package config

// Config holds every gameplay tunable. All values are provided at runtime;
// nothing downstream reads compiled-in constants.
type Config struct {
	Session    SessionConfig
	LevelUp    LevelUpConfig
	Scoring    ScoringConfig
	Rewards    RewardsConfig
	Difficulty DifficultyConfig
	Operators  OperatorsConfig
	Generation GenerationConfig
}

// SessionConfig controls session length.
type SessionConfig struct {
	QuestionsPerSession int
}

// LevelUpConfig holds the accuracy thresholds (percent, 0-100) evaluated at
// session completion.
type LevelUpConfig struct {
	MinAccuracy             float64
	MinAccuracyForReduction float64
}

// ScoringConfig holds the coefficients of the scoring function.
type ScoringConfig struct {
	BaseMultiplier          int
	TimeBonusThreshold      int // seconds
	TimeBonusPerSecond      int
	StreakBonusInterval     int
	StreakBonusAmount       int
	VarietyBonusPerOperator int
}

// RewardTier is an accuracy cutoff for a star tier. Time is kept for
// configuration compatibility; rewards are tiered on accuracy only.
type RewardTier struct {
	Accuracy float64
	Time     int
}

// RewardsConfig maps session accuracy to star tiers.
type RewardsConfig struct {
	Perfect RewardTier
	Great   RewardTier
	Good    RewardTier
}

// DifficultyTier bounds the operands drawn for a difficulty tier.
type DifficultyTier struct {
	MaxNumber int
}

// DifficultyConfig is the operand bound table.
type DifficultyConfig struct {
	Easy           DifficultyTier
	Medium         DifficultyTier
	Hard           DifficultyTier
	Expert         DifficultyTier
	Multiplication DifficultyTier
}

// OperatorsConfig gates operators by level.
type OperatorsConfig struct {
	SubtractionMinLevel    int
	MultiplicationMinLevel int

	// RecentWindow is how many of the most recent operators are avoided
	// when picking the next one.
	RecentWindow int
}

// GenerationConfig bounds the generator's rejection loops.
type GenerationConfig struct {
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard game tuning.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			QuestionsPerSession: 20,
		},
		LevelUp: LevelUpConfig{
			MinAccuracy:             60,
			MinAccuracyForReduction: 40,
		},
		Scoring: ScoringConfig{
			BaseMultiplier:          10,
			TimeBonusThreshold:      5,
			TimeBonusPerSecond:      2,
			StreakBonusInterval:     3,
			StreakBonusAmount:       5,
			VarietyBonusPerOperator: 5,
		},
		Rewards: RewardsConfig{
			Perfect: RewardTier{Accuracy: 90, Time: 5},
			Great:   RewardTier{Accuracy: 70, Time: 7},
			Good:    RewardTier{Accuracy: 0},
		},
		Difficulty: DifficultyConfig{
			Easy:           DifficultyTier{MaxNumber: 10},
			Medium:         DifficultyTier{MaxNumber: 20},
			Hard:           DifficultyTier{MaxNumber: 50},
			Expert:         DifficultyTier{MaxNumber: 100},
			Multiplication: DifficultyTier{MaxNumber: 12},
		},
		Operators: OperatorsConfig{
			SubtractionMinLevel:    3,
			MultiplicationMinLevel: 5,
			RecentWindow:           2,
		},
		Generation: GenerationConfig{
			MaxAttempts: 1000,
		},
	}
}
