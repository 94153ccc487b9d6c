package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"myplanetplan-api/internal/domain"
)

func TestTierPoints(t *testing.T) {
	for v, want := range map[string]int64{
		"Easy": 200, "medium": 300, "HARD": 500, "Extreme": 1000, " easy ": 200,
	} {
		got, ok := TierPoints(v)
		require.True(t, ok, v)
		require.Equal(t, want, got, v)
	}
	_, ok := TierPoints("Trivial")
	require.False(t, ok)
}

func TestPointsForDifficultiesSumsEveryTriple(t *testing.T) {
	names := []string{"Easy", "Medium", "Hard", "Extreme"}
	values := map[string]int64{"Easy": 200, "Medium": 300, "Hard": 500, "Extreme": 1000}
	for _, a := range names {
		for _, b := range names {
			for _, c := range names {
				got, err := PointsForDifficulties(a, b, c)
				require.NoError(t, err)
				require.Equal(t, values[a]+values[b]+values[c], got)
			}
		}
	}
}

func TestPointsForDifficultiesUnknown(t *testing.T) {
	_, err := PointsForDifficulties("Hard", "Daily", "Easy")
	require.ErrorIs(t, err, domain.ErrUnknownDifficulty)
}
