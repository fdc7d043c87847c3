package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRoundKeepsNewest(t *testing.T) {
	var h SavedRounds
	for i := 1; i <= 5; i++ {
		h = appendRound(h, RoundRecord{Round: i}, 3)
	}
	require.Len(t, h.Rounds, 3)
	assert.Equal(t, 3, h.Rounds[0].Round)
	assert.Equal(t, 5, h.Rounds[2].Round)

	h = appendRound(h, RoundRecord{Round: 6}, 0)
	assert.Len(t, h.Rounds, 4)
}

func TestDecodeRounds(t *testing.T) {
	h, err := decodeRounds(nil)
	require.NoError(t, err)
	assert.Empty(t, h.Rounds)

	h, err = decodeRounds([]byte(`{"rounds":[{"round":2,"level":"dojo","winningTeam":-1}]}`))
	require.NoError(t, err)
	assert.Equal(t, []RoundRecord{{Round: 2, Level: "dojo", WinningTeam: -1}}, h.Rounds)

	_, err = decodeRounds([]byte(`{`))
	assert.Error(t, err)
}

func TestMergeRoundKeepsUnreadableHistory(t *testing.T) {
	data, err := mergeRound(nil, RoundRecord{Round: 1, WinningTeam: 0}, 3)
	require.NoError(t, err)
	data, err = mergeRound(data, RoundRecord{Round: 2, WinningTeam: 1}, 3)
	require.NoError(t, err)
	h, err := decodeRounds(data)
	require.NoError(t, err)
	assert.Equal(t, []RoundRecord{{Round: 1}, {Round: 2, WinningTeam: 1}}, h.Rounds)

	data, err = mergeRound([]byte(`{"rounds":[`), RoundRecord{Round: 3}, 3)
	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestPersistenceDisabledIsQuiet(t *testing.T) {
	require.False(t, gdataInitialized)
	assert.NoError(t, SaveRoundRecord(RoundRecord{Round: 1}))
	h, err := LoadRoundHistory()
	require.NoError(t, err)
	assert.Empty(t, h.Rounds)
}
