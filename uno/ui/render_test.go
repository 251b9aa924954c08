package ui_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("shows_the_hand_of_the_seat_on_turn", func(t *testing.T) {
		s := handState()
		s.Announcement = "Player 2 played red 5."
		var out bytes.Buffer

		require.NoError(t, ui.Render(&out, s, 0))

		text := out.String()
		require.Contains(t, text, "Your hand, Player 1:")
		require.Contains(t, text, "*A")
		require.Contains(t, text, "*B")
		require.Contains(t, text, " C")
		require.Contains(t, text, "Your turn")
		require.Contains(t, text, "Player 2 played red 5.")
	})

	t.Run("spectators_see_no_hand", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, ui.Render(&out, handState(), -1))

		require.NotContains(t, out.String(), "Your hand")
	})

	t.Run("shows_rejections_and_scores", func(t *testing.T) {
		s := handState()
		s.LastInvalidMove = &game.InvalidMove{PlayerIndex: 0, CardID: "bs", Reason: "Invalid move"}
		s.ScoreBoard = map[string]int{"p2": 12, "p1": 3}
		var out bytes.Buffer

		require.NoError(t, ui.Render(&out, s, 0))

		require.Contains(t, out.String(), "Rejected: Invalid move")
		require.Contains(t, out.String(), "Scores: p1 3, p2 12")
	})

	t.Run("long_hands_continue_with_positions", func(t *testing.T) {
		s := handState()
		hand := make([]card.Card, 0, 28)
		for i := 0; i < 28; i++ {
			hand = append(hand, card.Must(card.NewNumberCard(fmt.Sprintf("g%d", i), color.Green, 8)))
		}
		s.Players[0].Hand = hand
		var out bytes.Buffer

		require.NoError(t, ui.Render(&out, s, 0))

		text := out.String()
		require.Contains(t, text, " Z ")
		require.Contains(t, text, " 27 ")
		require.Contains(t, text, " 28 ")
		require.NotContains(t, text, "[ ")

		action, err := ui.ParseCommand("play 28", s, 0)
		require.NoError(t, err)
		require.Equal(t, game.PlayCard{PlayerIndex: 0, CardID: "g27"}, action)
	})
}
