package player_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func numberCard(id string, cardColor color.Color, value int) card.Card {
	return card.Must(card.NewNumberCard(id, cardColor, value))
}

func table(top card.Card, hands ...[]card.Card) game.State {
	s := game.InitialState()
	s.Phase = game.PhaseInProgress
	for i, hand := range hands {
		s.Players = append(s.Players, game.Player{ID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("Player %d", i+1), Hand: hand})
	}
	s.DiscardPile = []card.Card{top}
	s.ActiveColor = top.Color()
	return s
}

func TestStrategies(t *testing.T) {
	strategies := map[string]player.Strategy{
		"naive": player.NewNaiveStrategy(rand.New(rand.NewSource(1))),
		"good":  player.NewGoodStrategy(),
	}
	red5 := numberCard("r5", color.Red, 5)

	scenarios := []struct {
		description string
		state       func() game.State
		seat        int
		expected    game.Action
		idle        bool
	}{
		{
			description: "waits_for_its_turn",
			state: func() game.State {
				return table(red5, []card.Card{numberCard("r1", color.Red, 1)}, []card.Card{numberCard("r2", color.Red, 2)})
			},
			seat: 1,
			idle: true,
		},
		{
			description: "draws_when_nothing_is_playable",
			state: func() game.State {
				return table(red5, []card.Card{numberCard("b1", color.Blue, 1)}, nil)
			},
			seat:     0,
			expected: game.DrawCard{PlayerIndex: 0},
		},
		{
			description: "plays_the_only_legal_card",
			state: func() game.State {
				return table(red5, []card.Card{numberCard("b1", color.Blue, 1), numberCard("r9", color.Red, 9)}, nil)
			},
			seat:     0,
			expected: game.PlayCard{PlayerIndex: 0, CardID: "r9"},
		},
		{
			description: "calls_uno_in_its_own_window",
			state: func() game.State {
				s := table(red5, []card.Card{numberCard("b1", color.Blue, 1)}, nil)
				s.TurnIndex = 1
				s.UnoWindow = &game.UnoWindow{PlayerIndex: 0, DeadlineAt: 100}
				return s
			},
			seat:     0,
			expected: game.CallUno{PlayerIndex: 0},
		},
		{
			description: "plays_a_pending_drawn_card",
			state: func() game.State {
				s := table(red5, []card.Card{numberCard("b1", color.Blue, 1), numberCard("r7", color.Red, 7)}, nil)
				s.DrawnCardID = "r7"
				return s
			},
			seat:     0,
			expected: game.PlayCard{PlayerIndex: 0, CardID: "r7"},
		},
		{
			description: "passes_when_the_drawn_card_is_no_longer_playable",
			state: func() game.State {
				s := table(red5, []card.Card{numberCard("b1", color.Blue, 1)}, nil)
				s.DrawnCardID = "b1"
				return s
			},
			seat:     0,
			expected: game.PassAfterDraw{PlayerIndex: 0},
		},
		{
			description: "does_nothing_after_the_round",
			state: func() game.State {
				s := table(red5, []card.Card{numberCard("r1", color.Red, 1)}, nil)
				s.Phase = game.PhaseGameOver
				return s
			},
			seat: 0,
			idle: true,
		},
	}

	for name, strategy := range strategies {
		for _, scenario := range scenarios {
			t.Run(name+"_"+scenario.description, func(t *testing.T) {
				action, ok := strategy.Decide(scenario.state(), scenario.seat)
				if scenario.idle {
					require.False(t, ok)
					return
				}
				require.True(t, ok)
				require.Equal(t, scenario.expected, action)
			})
		}
	}
}

func TestWildColors(t *testing.T) {
	red5 := numberCard("r5", color.Red, 5)

	t.Run("good_strategy_picks_the_most_held_color", func(t *testing.T) {
		s := table(red5, []card.Card{card.NewWildCard("w"), numberCard("g1", color.Green, 1), numberCard("g2", color.Green, 2), numberCard("b3", color.Blue, 3)})
		s.ActiveColor = color.Yellow

		action, ok := player.NewGoodStrategy().Decide(s, 0)

		require.True(t, ok)
		require.Equal(t, game.PlayCard{PlayerIndex: 0, CardID: "w", ChosenColor: color.Green}, action)
	})

	t.Run("resolves_a_pending_color_choice", func(t *testing.T) {
		s := table(card.NewWildCard("w"), []card.Card{numberCard("y1", color.Yellow, 1)})
		s.Phase = game.PhaseChoosingColor
		s.AwaitingWildChoice = &game.WildChoice{Card: card.NewWildCard("w"), PlayerIndex: 0}

		action, ok := player.NewGoodStrategy().Decide(s, 0)

		require.True(t, ok)
		require.Equal(t, game.ChooseWildColor{PlayerIndex: 0, Color: color.Yellow}, action)
	})

	t.Run("naive_strategy_always_picks_a_suit", func(t *testing.T) {
		strategy := player.NewNaiveStrategy(rand.New(rand.NewSource(5)))
		s := table(red5, []card.Card{card.NewWildCard("w"), numberCard("g1", color.Green, 1)})

		for i := 0; i < 20; i++ {
			action, ok := strategy.Decide(s, 0)
			require.True(t, ok)
			require.True(t, action.(game.PlayCard).ChosenColor.IsSuit())
		}
	})
}

func TestGoodStrategyKeepsFollowUps(t *testing.T) {
	// r9 leaves r1 and b9 playable, b5 and r1 leave one card each.
	s := table(numberCard("r5", color.Red, 5),
		[]card.Card{numberCard("b5", color.Blue, 5), numberCard("r9", color.Red, 9), numberCard("r1", color.Red, 1), numberCard("b9", color.Blue, 9)},
	)

	action, ok := player.NewGoodStrategy().Decide(s, 0)

	require.True(t, ok)
	require.Equal(t, "r9", action.(game.PlayCard).CardID)
}

func TestCreateBots(t *testing.T) {
	bots := player.CreateBots(4, []int{0}, rand.New(rand.NewSource(1)))

	require.Len(t, bots, 3)
	require.NotContains(t, bots, 0)
	for seat := 1; seat < 4; seat++ {
		require.Contains(t, bots, seat)
	}
}
