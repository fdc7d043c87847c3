package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBotDifficulty(t *testing.T) {
	for _, d := range []BotDifficulty{BotDifficultyEasy, BotDifficultyNormal, BotDifficultyHard} {
		parsed, ok := ParseBotDifficulty(d.String())
		assert.True(t, ok, d.String())
		assert.Equal(t, d, parsed)
	}
	_, ok := ParseBotDifficulty("nightmare")
	assert.False(t, ok)
}

func TestBotTuningFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Bot.Difficulties[Bot.Default], Bot.Tuning(BotDifficulty(42)))
	assert.Less(t, Bot.Tuning(BotDifficultyHard).ReactionDelay, Bot.Tuning(BotDifficultyEasy).ReactionDelay)
}
