package cli

import (
	"context"
	"sort"
	"time"

	"github.com/ratel-online/uno/store"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/spf13/cobra"
)

const (
	flagDrawThenPlay = "draw-then-play"
	flagUnoWindow    = "uno-window"
	flagEnforceW4    = "enforce-w4"
	flagTurnDuration = "turn-duration"
	flagSeed         = "seed"
)

func addTableFlags(cmd *cobra.Command) {
	defaults := game.DefaultConfig()
	cmd.Flags().Bool(flagDrawThenPlay, defaults.DrawThenPlayAllowed, "Allow playing a legal card right after drawing it")
	cmd.Flags().Int64(flagUnoWindow, defaults.UnoWindowMs, "Milliseconds to call UNO before the penalty")
	cmd.Flags().Bool(flagEnforceW4, defaults.EnforceWildDrawFourLegality, "Forbid wild +4 while holding the active color")
	cmd.Flags().Int64(flagTurnDuration, defaults.TurnDurationMs, "Milliseconds before a turn times out")
	cmd.Flags().Int64(flagSeed, 0, "Random seed for shuffles, 0 picks one from the clock")
}

// TableConfig returns the default config with every table flag the user
// set applied on top.
func TableConfig(cmd *cobra.Command) (game.Config, error) {
	flags := cmd.Flags()
	overrides := game.Overrides{}

	if flags.Changed(flagDrawThenPlay) {
		value, err := flags.GetBool(flagDrawThenPlay)
		if err != nil {
			return game.Config{}, err
		}
		overrides.DrawThenPlayAllowed = &value
	}
	if flags.Changed(flagUnoWindow) {
		value, err := flags.GetInt64(flagUnoWindow)
		if err != nil {
			return game.Config{}, err
		}
		overrides.UnoWindowMs = &value
	}
	if flags.Changed(flagEnforceW4) {
		value, err := flags.GetBool(flagEnforceW4)
		if err != nil {
			return game.Config{}, err
		}
		overrides.EnforceWildDrawFourLegality = &value
	}
	if flags.Changed(flagTurnDuration) {
		value, err := flags.GetInt64(flagTurnDuration)
		if err != nil {
			return game.Config{}, err
		}
		overrides.TurnDurationMs = &value
	}

	return game.DefaultConfig().Merge(overrides), nil
}

func newTable(cmd *cobra.Command) (*store.Store, game.Random, error) {
	config, err := TableConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	seed, err := cmd.Flags().GetInt64(flagSeed)
	if err != nil {
		return nil, nil, err
	}

	random := game.NewRandom()
	if seed != 0 {
		random = game.NewSeededRandom(seed)
	}
	return store.New(store.WithEngine(game.NewEngine(random)), store.WithConfig(config)), random, nil
}

// driveBots lets every bot seat act, at most one action per interval.
func driveBots(ctx context.Context, st *store.Store, bots map[int]player.Strategy, interval time.Duration) {
	seats := make([]int, 0, len(bots))
	for seat := range bots {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := st.State()
			for _, seat := range seats {
				if action, ok := bots[seat].Decide(s, seat); ok {
					st.Submit(action)
					break
				}
			}
		}
	}
}
