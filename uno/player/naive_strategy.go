package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naiveChooser struct {
	random game.Random
}

// NewNaiveStrategy plays the first legal card and picks colors at random.
func NewNaiveStrategy(random game.Random) Strategy {
	if random == nil {
		random = game.NewRandom()
	}
	return basicStrategy{chooser: naiveChooser{random: random}}
}

func (c naiveChooser) pickCard(playableCards []card.Card, s game.State, seat int) card.Card {
	return playableCards[0]
}

func (c naiveChooser) pickColor(hand []card.Card) color.Color {
	return color.Suits[c.random.Intn(len(color.Suits))]
}
