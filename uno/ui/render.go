package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

// Render writes the table as seen from seat. A seat outside the table sees
// only the public part.
func Render(w io.Writer, s game.State, seat int) error {
	lines := []string{s.String()}

	if s.UnoWindow != nil {
		lines = append(lines, fmt.Sprintf("UNO window open for %s until %d", playerName(s, s.UnoWindow.PlayerIndex), s.UnoWindow.DeadlineAt))
	}
	if s.LastInvalidMove != nil && s.LastInvalidMove.PlayerIndex == seat {
		lines = append(lines, fmt.Sprintf("Rejected: %s", s.LastInvalidMove.Reason))
	}

	if seat >= 0 && seat < len(s.Players) {
		lines = append(lines, handLines(s, seat)...)
	}
	if len(s.ScoreBoard) > 0 {
		lines = append(lines, scoreLine(s))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func handLines(s game.State, seat int) []string {
	hand := s.Players[seat].Hand
	playable := map[string]bool{}
	if s.Phase == game.PhaseInProgress && s.TurnIndex == seat {
		for _, c := range game.PlayableCards(hand, s.TopCard(), s.ActiveColor, s.Config.EnforceWildDrawFourLegality) {
			if s.DrawnCardID == "" || c.ID() == s.DrawnCardID {
				playable[c.ID()] = true
			}
		}
	}

	options := make([]string, 0, len(hand))
	for index, c := range hand {
		marker := " "
		if playable[c.ID()] {
			marker = "*"
		}
		options = append(options, fmt.Sprintf("%s%s %s", marker, cardLabel(index), c))
	}

	lines := []string{fmt.Sprintf("Your hand, %s:", s.Players[seat].Name), strings.Join(options, "  ")}
	switch {
	case s.Phase == game.PhaseChoosingColor && s.AwaitingWildChoice != nil && s.AwaitingWildChoice.PlayerIndex == seat:
		lines = append(lines, "Pick a color: color <red|yellow|green|blue>")
	case s.Phase == game.PhaseInProgress && s.TurnIndex == seat && s.DrawnCardID != "":
		lines = append(lines, "Play the drawn card or pass.")
	case s.Phase == game.PhaseInProgress && s.TurnIndex == seat:
		lines = append(lines, "Your turn: play <card> [color], draw, uno")
	}
	return lines
}

func scoreLine(s game.State) string {
	ids := make([]string, 0, len(s.ScoreBoard))
	for id := range s.ScoreBoard {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	scores := make([]string, 0, len(ids))
	for _, id := range ids {
		scores = append(scores, fmt.Sprintf("%s %d", id, s.ScoreBoard[id]))
	}
	return "Scores: " + strings.Join(scores, ", ")
}

func playerName(s game.State, index int) string {
	if index < 0 || index >= len(s.Players) {
		return "?"
	}
	return s.Players[index].Name
}

// cardAt resolves a hand label ("A", "b") or a 1-based position ("3").
func cardAt(hand []card.Card, label string) (card.Card, bool) {
	index, ok := labelIndex(label)
	if n, err := parsePosition(label); err == nil {
		index, ok = n-1, true
	}
	if !ok || index < 0 || index >= len(hand) {
		return card.Card{}, false
	}
	return hand[index], true
}
