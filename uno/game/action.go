package game

import (
	"github.com/ratel-online/uno/uno/card/color"
)

type ActionType string

const (
	ActionStartGame       ActionType = "START_GAME"
	ActionPlayCard        ActionType = "PLAY_CARD"
	ActionDrawCard        ActionType = "DRAW_CARD"
	ActionPassAfterDraw   ActionType = "PASS_AFTER_DRAW"
	ActionCallUno         ActionType = "CALL_UNO"
	ActionChooseWildColor ActionType = "CHOOSE_WILD_COLOR"
	ActionTick            ActionType = "TICK"
	ActionReset           ActionType = "RESET"
)

// Action is the input of a reduction. Now is a caller supplied timestamp in
// milliseconds; the reducer never reads a clock.
type Action interface {
	Type() ActionType
}

type StartGame struct {
	PlayerCount int
	Now         int64
}

type PlayCard struct {
	PlayerIndex int
	CardID      string
	// ChosenColor resolves a wild at once; color.None leaves it open.
	ChosenColor color.Color
	Now         int64
}

type DrawCard struct {
	PlayerIndex int
	Now         int64
}

type PassAfterDraw struct {
	PlayerIndex int
	Now         int64
}

type CallUno struct {
	PlayerIndex int
	Now         int64
}

type ChooseWildColor struct {
	PlayerIndex int
	Color       color.Color
	Now         int64
}

type Tick struct {
	Now int64
}

type Reset struct{}

func (StartGame) Type() ActionType       { return ActionStartGame }
func (PlayCard) Type() ActionType        { return ActionPlayCard }
func (DrawCard) Type() ActionType        { return ActionDrawCard }
func (PassAfterDraw) Type() ActionType   { return ActionPassAfterDraw }
func (CallUno) Type() ActionType         { return ActionCallUno }
func (ChooseWildColor) Type() ActionType { return ActionChooseWildColor }
func (Tick) Type() ActionType            { return ActionTick }
func (Reset) Type() ActionType           { return ActionReset }

// Stamp returns action with its timestamp set to now.
func Stamp(action Action, now int64) Action {
	switch a := action.(type) {
	case StartGame:
		a.Now = now
		return a
	case PlayCard:
		a.Now = now
		return a
	case DrawCard:
		a.Now = now
		return a
	case PassAfterDraw:
		a.Now = now
		return a
	case CallUno:
		a.Now = now
		return a
	case ChooseWildColor:
		a.Now = now
		return a
	case Tick:
		a.Now = now
		return a
	default:
		return action
	}
}

func timestampOf(action Action) int64 {
	switch a := action.(type) {
	case StartGame:
		return a.Now
	case PlayCard:
		return a.Now
	case DrawCard:
		return a.Now
	case PassAfterDraw:
		return a.Now
	case CallUno:
		return a.Now
	case ChooseWildColor:
		return a.Now
	case Tick:
		return a.Now
	default:
		return 0
	}
}
