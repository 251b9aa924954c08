package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

const DeckSize = 108

type idSequence struct {
	next int
}

func (s *idSequence) id() string {
	id := fmt.Sprintf("c_%d", s.next)
	s.next++
	return id
}

// NewDeck builds the standard 108 card deck in composition order. Ids are
// unique within the deck.
func NewDeck() []card.Card {
	ids := &idSequence{}
	cards := make([]card.Card, 0, DeckSize)
	for _, suit := range color.Suits {
		cards = append(cards, createColorCards(suit, ids)...)
	}
	cards = append(cards, createBlackCards(ids)...)
	return cards
}

func createColorCards(cardColor color.Color, ids *idSequence) []card.Card {
	cards := []card.Card{card.Must(card.NewNumberCard(ids.id(), cardColor, 0))}

	for number := 1; number <= 9; number++ {
		cards = append(cards,
			card.Must(card.NewNumberCard(ids.id(), cardColor, number)),
			card.Must(card.NewNumberCard(ids.id(), cardColor, number)),
		)
	}

	for i := 0; i < 2; i++ {
		cards = append(cards,
			card.Must(card.NewSkipCard(ids.id(), cardColor)),
			card.Must(card.NewReverseCard(ids.id(), cardColor)),
			card.Must(card.NewDrawTwoCard(ids.id(), cardColor)),
		)
	}

	return cards
}

func createBlackCards(ids *idSequence) []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(ids.id()), card.NewWildDrawFourCard(ids.id()))
	}
	return cards
}

// Shuffle returns a uniformly shuffled copy of cards (Fisher-Yates). The
// input is left untouched.
func Shuffle(random Random, cards []card.Card) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
