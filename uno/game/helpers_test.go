package game_test

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

func numberCard(id string, cardColor color.Color, value int) card.Card {
	return card.Must(card.NewNumberCard(id, cardColor, value))
}

func skipCard(id string, cardColor color.Color) card.Card {
	return card.Must(card.NewSkipCard(id, cardColor))
}

func reverseCard(id string, cardColor color.Color) card.Card {
	return card.Must(card.NewReverseCard(id, cardColor))
}

func drawTwoCard(id string, cardColor color.Color) card.Card {
	return card.Must(card.NewDrawTwoCard(id, cardColor))
}

func newEngine() *game.Engine {
	return game.NewEngine(rand.New(rand.NewSource(7)))
}

// fillerPile returns count green 8s, none of which match a red table.
func fillerPile(count int) []card.Card {
	pile := make([]card.Card, 0, count)
	for i := 0; i < count; i++ {
		pile = append(pile, numberCard(fmt.Sprintf("filler_%d", i), color.Green, 8))
	}
	return pile
}

// tableState builds a round in progress with player 0 on turn.
func tableState(top card.Card, activeColor color.Color, hands ...[]card.Card) game.State {
	s := game.InitialState()
	s.Phase = game.PhaseInProgress
	for i, hand := range hands {
		s.Players = append(s.Players, game.Player{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: fmt.Sprintf("Player %d", i+1),
			Hand: hand,
		})
	}
	s.DrawPile = fillerPile(10)
	s.DiscardPile = []card.Card{top}
	s.ActiveColor = activeColor
	return s
}

func handIDs(hand []card.Card) []string {
	ids := make([]string, 0, len(hand))
	for _, c := range hand {
		ids = append(ids, c.ID())
	}
	return ids
}

// scriptedRandom answers Intn(n) with picks[n] when set and n-1 otherwise,
// so Shuffle keeps the input order apart from the scripted swaps.
type scriptedRandom struct {
	picks map[int]int
}

func (r scriptedRandom) Intn(n int) int {
	if pick, ok := r.picks[n]; ok {
		return pick
	}
	return n - 1
}

// openWith deals a table of playerCount from NewDeck order with the deck
// card at index moved into the opener slot.
func openWith(index, playerCount int) scriptedRandom {
	slot := game.DeckSize - 1 - game.HandSize*playerCount
	low, high := index, slot
	if low > high {
		low, high = high, low
	}
	return scriptedRandom{picks: map[int]int{high + 1: low}}
}

func firstOfKind(deck []card.Card, kind card.Kind) int {
	for i, c := range deck {
		if c.Kind() == kind {
			return i
		}
	}
	return -1
}
