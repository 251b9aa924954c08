package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestConfigMerge(t *testing.T) {
	off := false
	window := int64(5000)
	negative := int64(-1)

	t.Run("empty_overrides_keep_config", func(t *testing.T) {
		require.True(t, game.Overrides{}.Empty())
		require.Equal(t, game.DefaultConfig(), game.DefaultConfig().Merge(game.Overrides{}))
	})

	t.Run("set_fields_replace_values", func(t *testing.T) {
		merged := game.DefaultConfig().Merge(game.Overrides{DrawThenPlayAllowed: &off, UnoWindowMs: &window})
		require.False(t, merged.DrawThenPlayAllowed)
		require.Equal(t, int64(5000), merged.UnoWindowMs)
		require.True(t, merged.EnforceWildDrawFourLegality)
		require.Equal(t, int64(30000), merged.TurnDurationMs)
	})

	t.Run("negative_durations_are_ignored", func(t *testing.T) {
		merged := game.DefaultConfig().Merge(game.Overrides{TurnDurationMs: &negative})
		require.Equal(t, int64(30000), merged.TurnDurationMs)
	})
}
