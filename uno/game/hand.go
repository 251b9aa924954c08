package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

func findCard(hand []card.Card, cardID string) (card.Card, bool) {
	for _, candidate := range hand {
		if candidate.ID() == cardID {
			return candidate, true
		}
	}
	return card.Card{}, false
}

func removeCard(hand []card.Card, cardID string) []card.Card {
	remaining := make([]card.Card, 0, len(hand))
	for _, candidate := range hand {
		if candidate.ID() != cardID {
			remaining = append(remaining, candidate)
		}
	}
	return remaining
}

// PlayableCards returns the cards of hand that may be played on top.
func PlayableCards(hand []card.Card, top card.Card, activeColor color.Color, enforceWildDrawFourLegality bool) []card.Card {
	var playableCards []card.Card
	for _, candidate := range hand {
		if Playable(candidate, top, activeColor, hand, enforceWildDrawFourLegality) {
			playableCards = append(playableCards, candidate)
		}
	}
	return playableCards
}
