package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidate may be played on top. hand is the
// player's full hand, used for the wild draw four restriction.
func Playable(candidate card.Card, top card.Card, activeColor color.Color, hand []card.Card, enforceWildDrawFourLegality bool) bool {
	switch candidate.Kind() {
	case card.KindWild:
		return true
	case card.KindWildDrawFour:
		if !enforceWildDrawFourLegality {
			return true
		}
		for _, handCard := range hand {
			if handCard.Color() == activeColor {
				return false
			}
		}
		return true
	}

	if candidate.Color() == activeColor {
		return true
	}

	switch {
	case top.IsNumber() && candidate.IsNumber():
		return top.Value() == candidate.Value()
	case top.IsColoredAction() && candidate.IsColoredAction():
		return top.Kind() == candidate.Kind()
	default:
		return false
	}
}

// CanPlayAny reports whether the player holds at least one legal card.
func CanPlayAny(s State, playerIndex int) bool {
	if playerIndex < 0 || playerIndex >= len(s.Players) {
		return false
	}
	top, ok := topOf(s.DiscardPile)
	if !ok {
		return false
	}
	hand := s.Players[playerIndex].Hand
	for _, candidate := range hand {
		if Playable(candidate, top, s.ActiveColor, hand, s.Config.EnforceWildDrawFourLegality) {
			return true
		}
	}
	return false
}

// RoundScore sums the cards left in every hand but the winner's.
func RoundScore(players []Player, winnerIndex int) int {
	score := 0
	for index, player := range players {
		if index == winnerIndex {
			continue
		}
		for _, handCard := range player.Hand {
			score += card.Score(handCard)
		}
	}
	return score
}

// RefillFromDiscard turns everything below the active discard into a new,
// shuffled draw pile once the draw pile is empty.
func RefillFromDiscard(s State, random Random) State {
	if len(s.DrawPile) > 0 || len(s.DiscardPile) <= 1 {
		return s
	}
	keepTop, recycle := popCard(s.DiscardPile)
	s.DrawPile = Shuffle(random, recycle)
	s.DiscardPile = []card.Card{keepTop}
	return s
}

// DrawN takes up to amount cards off the draw pile, refilling from the
// discard pile as needed. It returns fewer cards when none are left.
func DrawN(s State, amount int, random Random) (State, []card.Card) {
	var drawn []card.Card
	for i := 0; i < amount; i++ {
		s = RefillFromDiscard(s, random)
		if len(s.DrawPile) == 0 {
			break
		}
		var next card.Card
		next, s.DrawPile = popCard(s.DrawPile)
		drawn = append(drawn, next)
	}
	return s, drawn
}
