package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type goodChooser struct{}

// NewGoodStrategy plays the card that leaves the most follow-up plays and
// picks the color it holds most of.
func NewGoodStrategy() Strategy {
	return basicStrategy{chooser: goodChooser{}}
}

func (c goodChooser) pickColor(hand []card.Card) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Color().IsSuit() {
			colorCounts[handCard.Color()]++
		}
	}

	mostFrequentColor := color.Blue
	mostFrequentColorAmount := 0
	for _, suit := range color.Suits {
		if colorCounts[suit] > mostFrequentColorAmount {
			mostFrequentColorAmount = colorCounts[suit]
			mostFrequentColor = suit
		}
	}
	return mostFrequentColor
}

func (c goodChooser) pickCard(playableCards []card.Card, s game.State, seat int) card.Card {
	hand := s.Players[seat].Hand
	mostDiscardableCardIndex := 0
	maxSpareCards := -1

	for cardIndex, playableCard := range playableCards {
		rest := without(hand, playableCard)
		nextColor := playableCard.Color()
		if playableCard.IsWild() {
			nextColor = c.pickColor(rest)
		}

		spareCards := 0
		for _, handCard := range rest {
			if game.Playable(handCard, playableCard, nextColor, rest, s.Config.EnforceWildDrawFourLegality) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex]
}
