package store

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
)

// emitCues derives the cue events of one reduction from what changed.
func emitCues(bus *event.Bus, prev game.State, next game.State, action game.Action) {
	if _, reset := action.(game.Reset); reset {
		return
	}
	_, started := action.(game.StartGame)
	actor := actorOf(action, prev)

	if invalid := next.LastInvalidMove; invalid != nil {
		bus.InvalidMove.Emit(event.InvalidMovePayload{
			PlayerIndex: invalid.PlayerIndex,
			CardID:      invalid.CardID,
			Reason:      invalid.Reason,
		})
	}

	topChanged := next.TopCard().ID() != prev.TopCard().ID()
	if !started && topChanged && len(next.DiscardPile) > 0 {
		bus.CardPlayed.Emit(event.CardPlayedPayload{
			PlayerIndex: actor,
			PlayerName:  nameOf(next, actor),
			Card:        next.TopCard(),
		})
	}

	if !started && next.Phase == game.PhaseInProgress && next.TopCard().IsWild() &&
		(topChanged || prev.Phase == game.PhaseChoosingColor) {
		bus.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerIndex: actor,
			PlayerName:  nameOf(next, actor),
			Color:       next.ActiveColor,
		})
	}

	if !started {
		for index := 0; index < len(prev.Players) && index < len(next.Players); index++ {
			grown := len(next.Players[index].Hand) - len(prev.Players[index].Hand)
			if grown > 0 {
				bus.CardsDrawn.Emit(event.CardsDrawnPayload{
					PlayerIndex: index,
					PlayerName:  nameOf(next, index),
					Count:       grown,
				})
			}
		}
	}

	if call, ok := action.(game.CallUno); ok && prev.UnoWindow != nil && prev.UnoWindow.PlayerIndex == call.PlayerIndex &&
		next.UnoWindow == nil && handSize(prev, call.PlayerIndex) == handSize(next, call.PlayerIndex) {
		bus.UnoDeclared.Emit(event.UnoDeclaredPayload{
			PlayerIndex: call.PlayerIndex,
			PlayerName:  nameOf(next, call.PlayerIndex),
		})
	}

	if prev.Phase != game.PhaseGameOver && next.Phase == game.PhaseGameOver && next.WinnerIndex != nil {
		winner := *next.WinnerIndex
		id := next.Players[winner].ID
		bus.RoundWon.Emit(event.RoundWonPayload{
			PlayerIndex: winner,
			PlayerName:  nameOf(next, winner),
			Points:      next.ScoreBoard[id] - prev.ScoreBoard[id],
		})
	}

	if next.Phase == game.PhaseInProgress &&
		(started || next.TurnIndex != prev.TurnIndex || next.TurnStartedAt != prev.TurnStartedAt) {
		bus.TurnChanged.Emit(event.TurnChangedPayload{
			PlayerIndex: next.TurnIndex,
			PlayerName:  nameOf(next, next.TurnIndex),
		})
	}
}

func actorOf(action game.Action, prev game.State) int {
	switch a := action.(type) {
	case game.PlayCard:
		return a.PlayerIndex
	case game.ChooseWildColor:
		return a.PlayerIndex
	case game.DrawCard:
		return a.PlayerIndex
	case game.PassAfterDraw:
		return a.PlayerIndex
	case game.CallUno:
		return a.PlayerIndex
	default:
		return prev.TurnIndex
	}
}

func nameOf(s game.State, index int) string {
	if index < 0 || index >= len(s.Players) {
		return ""
	}
	return s.Players[index].Name
}

func handSize(s game.State, index int) int {
	if index < 0 || index >= len(s.Players) {
		return 0
	}
	return len(s.Players[index].Hand)
}
