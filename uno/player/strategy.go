package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Strategy picks the next action for a seat. Decide reports false when the
// seat has nothing to do. Returned actions carry no timestamp.
type Strategy interface {
	Decide(s game.State, seat int) (game.Action, bool)
}

type chooser interface {
	pickCard(playableCards []card.Card, s game.State, seat int) card.Card
	pickColor(hand []card.Card) color.Color
}

type basicStrategy struct {
	chooser chooser
}

func (b basicStrategy) Decide(s game.State, seat int) (game.Action, bool) {
	if seat < 0 || seat >= len(s.Players) {
		return nil, false
	}
	hand := s.Players[seat].Hand

	if s.UnoWindow != nil && s.UnoWindow.PlayerIndex == seat && !s.UnoWindow.Called {
		return game.CallUno{PlayerIndex: seat}, true
	}
	if s.Phase == game.PhaseChoosingColor && s.AwaitingWildChoice != nil && s.AwaitingWildChoice.PlayerIndex == seat {
		return game.ChooseWildColor{PlayerIndex: seat, Color: b.chooser.pickColor(hand)}, true
	}
	if s.Phase != game.PhaseInProgress || s.TurnIndex != seat {
		return nil, false
	}

	enforce := s.Config.EnforceWildDrawFourLegality
	if s.DrawnCardID != "" {
		for _, drawn := range hand {
			if drawn.ID() == s.DrawnCardID && game.Playable(drawn, s.TopCard(), s.ActiveColor, hand, enforce) {
				return b.play(drawn, hand, seat), true
			}
		}
		return game.PassAfterDraw{PlayerIndex: seat}, true
	}

	playableCards := game.PlayableCards(hand, s.TopCard(), s.ActiveColor, enforce)
	if len(playableCards) == 0 {
		return game.DrawCard{PlayerIndex: seat}, true
	}
	return b.play(b.chooser.pickCard(playableCards, s, seat), hand, seat), true
}

func (b basicStrategy) play(c card.Card, hand []card.Card, seat int) game.Action {
	action := game.PlayCard{PlayerIndex: seat, CardID: c.ID()}
	if c.IsWild() {
		action.ChosenColor = b.chooser.pickColor(without(hand, c))
	}
	return action
}

func without(hand []card.Card, c card.Card) []card.Card {
	rest := make([]card.Card, 0, len(hand))
	for _, handCard := range hand {
		if handCard.ID() != c.ID() {
			rest = append(rest, handCard)
		}
	}
	return rest
}
