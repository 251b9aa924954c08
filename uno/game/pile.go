package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Piles are slices with the top card last. The helpers below never write
// into a slice they were given: published states share their backing arrays.

func topOf(pile []card.Card) (card.Card, bool) {
	if len(pile) == 0 {
		return card.Card{}, false
	}
	return pile[len(pile)-1], true
}

func pushCards(pile []card.Card, cards ...card.Card) []card.Card {
	grown := make([]card.Card, 0, len(pile)+len(cards))
	grown = append(grown, pile...)
	return append(grown, cards...)
}

// popCard removes the top card. The returned pile aliases the input, which
// is fine because nothing appends to it in place.
func popCard(pile []card.Card) (card.Card, []card.Card) {
	top := pile[len(pile)-1]
	return top, pile[:len(pile)-1:len(pile)-1]
}
