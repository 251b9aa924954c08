package event

// Bus groups one emitter per cue. Listeners are registered before the bus
// is handed to a store and are called synchronously, in registration order.
type Bus struct {
	CardPlayed  *cardPlayedEmitter
	CardsDrawn  *cardsDrawnEmitter
	InvalidMove *invalidMoveEmitter
	UnoDeclared *unoDeclaredEmitter
	RoundWon    *roundWonEmitter
	TurnChanged *turnChangedEmitter
	ColorPicked *colorPickedEmitter
}

func NewBus() *Bus {
	return &Bus{
		CardPlayed:  &cardPlayedEmitter{},
		CardsDrawn:  &cardsDrawnEmitter{},
		InvalidMove: &invalidMoveEmitter{},
		UnoDeclared: &unoDeclaredEmitter{},
		RoundWon:    &roundWonEmitter{},
		TurnChanged: &turnChangedEmitter{},
		ColorPicked: &colorPickedEmitter{},
	}
}

// AddListener registers listener with every emitter whose listener
// interface it implements and reports whether it matched any.
func (b *Bus) AddListener(listener interface{}) bool {
	matched := false
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
		matched = true
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
		matched = true
	}
	if l, ok := listener.(InvalidMoveListener); ok {
		b.InvalidMove.AddListener(l)
		matched = true
	}
	if l, ok := listener.(UnoDeclaredListener); ok {
		b.UnoDeclared.AddListener(l)
		matched = true
	}
	if l, ok := listener.(RoundWonListener); ok {
		b.RoundWon.AddListener(l)
		matched = true
	}
	if l, ok := listener.(TurnChangedListener); ok {
		b.TurnChanged.AddListener(l)
		matched = true
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
		matched = true
	}
	return matched
}
