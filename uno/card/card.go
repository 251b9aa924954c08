package card

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ratel-online/uno/uno/card/color"
)

type Kind string

const (
	KindNumber       Kind = "number"
	KindSkip         Kind = "skip"
	KindReverse      Kind = "reverse"
	KindDrawTwo      Kind = "drawTwo"
	KindWild         Kind = "wild"
	KindWildDrawFour Kind = "wildDrawFour"
)

// Card is an immutable UNO card. Number, skip, reverse and draw-two cards
// always carry a suit color; wild and wild-draw-four cards always carry
// color.Wild. Build cards with the New* constructors only.
type Card struct {
	id    string
	color color.Color
	kind  Kind
	value int
}

func NewNumberCard(id string, cardColor color.Color, number int) (Card, error) {
	if number < 0 || number > 9 {
		return Card{}, fmt.Errorf("number card value %d out of range 0-9", number)
	}
	return newColoredCard(id, cardColor, KindNumber, number)
}

func NewSkipCard(id string, cardColor color.Color) (Card, error) {
	return newColoredCard(id, cardColor, KindSkip, 0)
}

func NewReverseCard(id string, cardColor color.Color) (Card, error) {
	return newColoredCard(id, cardColor, KindReverse, 0)
}

func NewDrawTwoCard(id string, cardColor color.Color) (Card, error) {
	return newColoredCard(id, cardColor, KindDrawTwo, 0)
}

func NewWildCard(id string) Card {
	return Card{id: id, color: color.Wild, kind: KindWild}
}

func NewWildDrawFourCard(id string) Card {
	return Card{id: id, color: color.Wild, kind: KindWildDrawFour}
}

// Must unwraps a constructor result and panics on error. Use it for card
// compositions known to be valid, such as the standard deck.
func Must(c Card, err error) Card {
	if err != nil {
		panic(err)
	}
	return c
}

func newColoredCard(id string, cardColor color.Color, kind Kind, value int) (Card, error) {
	if id == "" {
		return Card{}, fmt.Errorf("%s card needs an id", kind)
	}
	if !cardColor.IsSuit() {
		return Card{}, fmt.Errorf("%s card must carry a suit color, got %s", kind, cardColor.Name())
	}
	return Card{id: id, color: cardColor, kind: kind, value: value}, nil
}

func (c Card) ID() string {
	return c.id
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Kind() Kind {
	return c.kind
}

// Value is the face value of a number card and 0 for every other kind.
func (c Card) Value() int {
	return c.value
}

func (c Card) IsNumber() bool {
	return c.kind == KindNumber
}

func (c Card) IsWild() bool {
	return c.kind == KindWild || c.kind == KindWildDrawFour
}

// IsColoredAction reports skip, reverse and draw-two cards.
func (c Card) IsColoredAction() bool {
	return c.kind == KindSkip || c.kind == KindReverse || c.kind == KindDrawTwo
}

func (c Card) String() string {
	return c.color.Paintf("[%s]", Label(c))
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    string      `json:"id"`
		Color color.Color `json:"color"`
		Kind  Kind        `json:"kind"`
		Value *int        `json:"value,omitempty"`
	}{
		ID:    c.id,
		Color: c.color,
		Kind:  c.kind,
		Value: c.numberValue(),
	})
}

func (c Card) numberValue() *int {
	if c.kind != KindNumber {
		return nil
	}
	value := c.value
	return &value
}

func Label(c Card) string {
	switch c.kind {
	case KindNumber:
		return strconv.Itoa(c.value)
	case KindDrawTwo:
		return "+2"
	case KindWildDrawFour:
		return "+4"
	case KindReverse:
		return "REV"
	case KindSkip:
		return "SKIP"
	default:
		return "WILD"
	}
}

// Score is the number of points a card left in hand is worth when a round
// ends.
func Score(c Card) int {
	switch c.kind {
	case KindNumber:
		return c.value
	case KindWild, KindWildDrawFour:
		return 50
	default:
		return 20
	}
}
