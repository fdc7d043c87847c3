package config

// BotDifficulty sets how quickly a scripted fighter reacts and how it spaces
// itself.
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for a scripted fighter. Scripts read
// the ranges from their view; the driver applies the reaction delay.
type BotDifficultyConfig struct {
	ReactionDelay    int     // ticks a decision is held before the script runs again
	AttackRange      float64 // x distance to start attacking
	ChaseRange       float64 // distance to start chasing
	RetreatThreshold float64 // health fraction to start retreating
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Default      BotDifficulty
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

var botDifficultyNames = map[BotDifficulty]string{
	BotDifficultyEasy:   "easy",
	BotDifficultyNormal: "normal",
	BotDifficultyHard:   "hard",
}

func (d BotDifficulty) String() string {
	if name, ok := botDifficultyNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseBotDifficulty returns the difficulty with the given name.
func ParseBotDifficulty(name string) (BotDifficulty, bool) {
	for d, n := range botDifficultyNames {
		if n == name {
			return d, true
		}
	}
	return 0, false
}

// Tuning returns the values for d, falling back to the default difficulty.
func (b BotConfigData) Tuning(d BotDifficulty) BotDifficultyConfig {
	if t, ok := b.Difficulties[d]; ok {
		return t
	}
	return b.Difficulties[b.Default]
}

func init() {
	Bot = BotConfigData{
		Default: BotDifficultyNormal,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    20, // a third of a second
				AttackRange:      24.0,
				ChaseRange:       500.0,
				RetreatThreshold: 0.2,
			},
			BotDifficultyNormal: {
				ReactionDelay:    8,
				AttackRange:      28.0,
				ChaseRange:       600.0,
				RetreatThreshold: 0.3,
			},
			BotDifficultyHard: {
				ReactionDelay:    2,
				AttackRange:      32.0,
				ChaseRange:       1200.0,
				RetreatThreshold: 0.15,
			},
		},
	}
}
