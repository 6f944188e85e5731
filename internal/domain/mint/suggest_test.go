package mint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"subname-minter/internal/domain/entity"
)

const parent = "kalidecoder.eth"

func names(suggestions []entity.Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Name)
	}
	return out
}

func TestSuggest_Available(t *testing.T) {
	base, err := entity.NewNameCandidate("alice", parent)
	require.NoError(t, err)

	got := Annotate(Suggest(base), entity.AvailabilityAvailable)

	require.Equal(t, []string{
		"alice.kalidecoder.eth",
		"alice123.kalidecoder.eth",
		"myalice.kalidecoder.eth",
		"thealice.kalidecoder.eth",
	}, names(got))
	for _, s := range got {
		require.False(t, s.Taken, s.Name)
		require.True(t, s.Mintable, s.Name)
	}
}

func TestSuggest_Taken(t *testing.T) {
	base, err := entity.NewNameCandidate("alice", parent)
	require.NoError(t, err)

	got := Annotate(Suggest(base), entity.AvailabilityTaken)

	require.Len(t, got, 4)
	require.Equal(t, "alice.kalidecoder.eth", got[0].Name)
	for _, s := range got {
		require.True(t, s.Taken, s.Name)
		require.False(t, s.Mintable, s.Name)
	}
}

// The alternates inherit the primary's availability without their own lookup;
// Checked makes that visible to callers.
func TestSuggest_AlternatesAreNotIndependentlyChecked(t *testing.T) {
	base, err := entity.NewNameCandidate("alice", parent)
	require.NoError(t, err)

	got := Annotate(Suggest(base), entity.AvailabilityAvailable)

	require.True(t, got[0].Checked)
	for _, s := range got[1:] {
		require.False(t, s.Checked, s.Name)
	}
}
