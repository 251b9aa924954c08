package msg

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter builds the plain-text announcements shown to every seat.
// Nothing here is painted, announcements travel over the wire as is.
type MessageWriter struct{}

// Describe names a card in words, e.g. "red 7" or "wild +4".
func (m MessageWriter) Describe(c card.Card) string {
	return fmt.Sprintf("%s %s", c.Color().Name(), card.Label(c))
}

func (m MessageWriter) NewRound() string {
	return "Start a new UNO round."
}

func (m MessageWriter) InvalidPlayerCount(count int) string {
	return fmt.Sprintf("A round needs 2 to 4 players, not %d.", count)
}

func (m MessageWriter) FirstCardPlayed(c card.Card, activeColor color.Color) string {
	return fmt.Sprintf("Round started! First card is %s, active color %s.", m.Describe(c), activeColor.Name())
}

func (m MessageWriter) RoundNotInProgress() string {
	return "No round is in progress."
}

func (m MessageWriter) ColorChoicePending() string {
	return "A color must be chosen for the wild card first."
}

func (m MessageWriter) NotYourTurn() string {
	return "It's not your turn."
}

func (m MessageWriter) CardNotInHand() string {
	return "That card is not in your hand."
}

func (m MessageWriter) OnlyDrawnCardPlayable() string {
	return "You can only play the card you just drew."
}

func (m MessageWriter) IllegalMove(activeColor color.Color, top card.Card) string {
	return fmt.Sprintf("Invalid move: match %s or %s.", activeColor.Name(), card.Label(top))
}

func (m MessageWriter) PickColor(playerName string) string {
	return fmt.Sprintf("%s, choose a color for the wild card.", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s.", playerName, m.Describe(c))
}

func (m MessageWriter) PlayerTurnSkipped(playerName string, skippedName string) string {
	return fmt.Sprintf("%s played skip, %s's turn skipped!", playerName, skippedName)
}

func (m MessageWriter) ReverseActsAsSkip(playerName string) string {
	return fmt.Sprintf("%s played reverse, it counts as a skip with two players!", playerName)
}

func (m MessageWriter) TurnOrderReversed(playerName string) string {
	return fmt.Sprintf("%s reversed the turn order!", playerName)
}

func (m MessageWriter) PlayerDrewTwo(playerName string, targetName string) string {
	return fmt.Sprintf("%s played +2, %s draws two!", playerName, targetName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, picked color.Color) string {
	return fmt.Sprintf("%s changed the color to %s.", playerName, picked.Name())
}

func (m MessageWriter) PlayerDrewFour(playerName string, picked color.Color, targetName string) string {
	return fmt.Sprintf("%s played wild +4 (%s), %s draws four!", playerName, picked.Name(), targetName)
}

func (m MessageWriter) ResolveDrawnCardFirst() string {
	return "Play the drawn card or pass first."
}

func (m MessageWriter) DrawOnlyWithoutMoves() string {
	return "You may only draw when you have no valid move."
}

func (m MessageWriter) NoCardsToDraw() string {
	return "There are no cards left to draw."
}

func (m MessageWriter) DrewPlayableCard(playerName string) string {
	return fmt.Sprintf("%s drew a card and may play it now or pass.", playerName)
}

func (m MessageWriter) DrewAndTurnEnded(playerName string) string {
	return fmt.Sprintf("%s drew a card, turn over.", playerName)
}

func (m MessageWriter) NoDrawnCardPending() string {
	return "You can only pass after drawing a playable card."
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s passed!", playerName)
}

func (m MessageWriter) NotYourColorChoice() string {
	return "Only the player of the wild card picks its color."
}

func (m MessageWriter) InvalidColorChoice(chosen color.Color) string {
	return fmt.Sprintf("'%s' is not a color you can pick.", chosen.Name())
}

func (m MessageWriter) NoUnoPending() string {
	return "Nobody needs to call UNO right now."
}

func (m MessageWriter) UnoNotYours() string {
	return "Only the player holding one card can call UNO."
}

func (m MessageWriter) UnoDeclared(playerName string) string {
	return fmt.Sprintf("%s called UNO!", playerName)
}

func (m MessageWriter) UnoPenalty(playerName string) string {
	return fmt.Sprintf("%s forgot to call UNO and draws two.", playerName)
}

func (m MessageWriter) TurnTimedOut(playerName string) string {
	return fmt.Sprintf("%s ran out of time, turn passed.", playerName)
}

func (m MessageWriter) WinnerFound(playerName string, points int) string {
	return fmt.Sprintf("%s wins the round (+%d points)!", playerName, points)
}
