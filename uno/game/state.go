package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseInProgress    Phase = "inProgress"
	PhaseChoosingColor Phase = "choosingColor"
	PhaseGameOver      Phase = "gameOver"
)

type Player struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Hand []card.Card `json:"hand"`
}

// UnoWindow is open while a player holding one card has yet to call UNO.
type UnoWindow struct {
	PlayerIndex int   `json:"playerIndex"`
	DeadlineAt  int64 `json:"deadlineAt"`
	Called      bool  `json:"called"`
}

// WildChoice records a wild card waiting for its color.
type WildChoice struct {
	Card        card.Card `json:"card"`
	PlayerIndex int       `json:"playerIndex"`
}

type InvalidMove struct {
	PlayerIndex int    `json:"playerIndex"`
	CardID      string `json:"cardId"`
	Reason      string `json:"reason"`
}

// State is one snapshot of a table. Reductions return a new State and never
// write through the slices or the score board of the one they received.
type State struct {
	Phase              Phase          `json:"phase"`
	Config             Config         `json:"config"`
	Players            []Player       `json:"players"`
	DrawPile           []card.Card    `json:"drawPile"`
	DiscardPile        []card.Card    `json:"discardPile"`
	TurnIndex          int            `json:"turnIndex"`
	TurnStartedAt      int64          `json:"turnStartedAt"`
	ClockMs            int64          `json:"clockMs"`
	Direction          int            `json:"direction"`
	ActiveColor        color.Color    `json:"currentColor"`
	WinnerIndex        *int           `json:"winnerIndex"`
	UnoWindow          *UnoWindow     `json:"unoWindow"`
	AwaitingWildChoice *WildChoice    `json:"awaitingWildChoice"`
	DrawnCardID        string         `json:"drawnCardId,omitempty"`
	LastInvalidMove    *InvalidMove   `json:"lastInvalidMove"`
	Announcement       string         `json:"announcement"`
	ScoreBoard         map[string]int `json:"scoreBoard"`
}

// TopCard returns the active discard, or the zero card before a round.
func (s State) TopCard() card.Card {
	top, _ := topOf(s.DiscardPile)
	return top
}

func (s State) playerName(index int) string {
	if index < 0 || index >= len(s.Players) {
		return fmt.Sprintf("Player %d", index+1)
	}
	return s.Players[index].Name
}

// CardCount sums the draw pile, the discard pile and every hand.
func (s State) CardCount() int {
	total := len(s.DrawPile) + len(s.DiscardPile)
	for _, player := range s.Players {
		total += len(player.Hand)
	}
	return total
}

func (s State) withHand(index int, hand []card.Card) State {
	players := make([]Player, len(s.Players))
	copy(players, s.Players)
	players[index] = Player{ID: players[index].ID, Name: players[index].Name, Hand: hand}
	s.Players = players
	return s
}

// giveCards adds drawn cards to a hand. A pending UNO window of that player
// closes once the hand no longer holds exactly one card.
func (s State) giveCards(index int, cards []card.Card) State {
	if len(cards) == 0 {
		return s
	}
	s = s.withHand(index, pushCards(s.Players[index].Hand, cards...))
	if s.UnoWindow != nil && s.UnoWindow.PlayerIndex == index && len(s.Players[index].Hand) != 1 {
		s.UnoWindow = nil
	}
	return s
}

func (s State) withScore(playerID string, points int) State {
	board := make(map[string]int, len(s.ScoreBoard)+1)
	for id, score := range s.ScoreBoard {
		board[id] = score
	}
	board[playerID] += points
	s.ScoreBoard = board
	return s
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Phase: %s", s.Phase))
	if len(s.DiscardPile) > 0 {
		lines = append(lines, fmt.Sprintf("Last played card: %s (active color %s)", s.TopCard(), s.ActiveColor))
	}

	var playerStatuses []string
	for index, player := range s.Players {
		marker := ""
		if index == s.TurnIndex && s.Phase != PhaseGameOver {
			marker = "*"
		}
		playerStatuses = append(playerStatuses, fmt.Sprintf("%s%s (%d card(s))", marker, player.Name, len(player.Hand)))
	}
	if len(playerStatuses) > 0 {
		arrow := "->"
		if s.Direction == Left {
			arrow = "<-"
		}
		lines = append(lines, fmt.Sprintf("Turn order %s %s", arrow, strings.Join(playerStatuses, ", ")))
		lines = append(lines, fmt.Sprintf("Draw pile: %d card(s)", len(s.DrawPile)))
	}
	if s.Announcement != "" {
		lines = append(lines, s.Announcement)
	}
	return strings.Join(lines, "\n")
}
