package network

import (
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// RequestUpdateConfig merges Config into the live table config.
const RequestUpdateConfig = "UPDATE_CONFIG"

// Hello is the first packet of a connection and binds it to a seat.
type Hello struct {
	Seat int `json:"seat"`
}

// Request is one input packet from a remote seat.
type Request struct {
	Type        string          `json:"type"`
	PlayerCount int             `json:"playerCount,omitempty"`
	CardID      string          `json:"cardId,omitempty"`
	ChosenColor color.Color     `json:"chosenColor,omitempty"`
	Color       color.Color     `json:"color,omitempty"`
	Config      *game.Overrides `json:"config,omitempty"`
}

func ParseHello(packet *protocol.Packet) (Hello, error) {
	hello := Hello{}
	if err := packet.Unmarshal(&hello); err != nil {
		return Hello{}, err
	}
	if hello.Seat < 0 || hello.Seat >= game.MaxPlayers {
		return Hello{}, consts.ErrorsSeatInvalid
	}
	return hello, nil
}

func ParseRequest(packet *protocol.Packet) (Request, error) {
	req := Request{}
	if err := packet.Unmarshal(&req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Action converts the request into an action for seat. The timestamp is
// left for the store to fill in.
func (r Request) Action(seat int) (game.Action, error) {
	switch game.ActionType(r.Type) {
	case game.ActionStartGame:
		return game.StartGame{PlayerCount: r.PlayerCount}, nil
	case game.ActionPlayCard:
		if r.CardID == "" {
			return nil, consts.ErrorsInputInvalid
		}
		return game.PlayCard{PlayerIndex: seat, CardID: r.CardID, ChosenColor: r.ChosenColor}, nil
	case game.ActionDrawCard:
		return game.DrawCard{PlayerIndex: seat}, nil
	case game.ActionPassAfterDraw:
		return game.PassAfterDraw{PlayerIndex: seat}, nil
	case game.ActionCallUno:
		return game.CallUno{PlayerIndex: seat}, nil
	case game.ActionChooseWildColor:
		return game.ChooseWildColor{PlayerIndex: seat, Color: r.Color}, nil
	case game.ActionTick:
		return game.Tick{}, nil
	case game.ActionReset:
		return game.Reset{}, nil
	default:
		return nil, consts.ErrorsRequestInvalid
	}
}
