package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// ParseCommand turns a typed line into an action for seat. Cards are named
// by their hand label or 1-based position in s.
func ParseCommand(line string, s game.State, seat int) (game.Action, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "play", "p":
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("usage: play <card> [color]")
		}
		if seat < 0 || seat >= len(s.Players) {
			return nil, fmt.Errorf("seat %d is not at the table", seat)
		}
		selected, ok := cardAt(s.Players[seat].Hand, fields[1])
		if !ok {
			return nil, fmt.Errorf("no card assigned to '%s'", fields[1])
		}
		action := game.PlayCard{PlayerIndex: seat, CardID: selected.ID()}
		if len(fields) == 3 {
			chosen, err := suitByName(fields[2])
			if err != nil {
				return nil, err
			}
			action.ChosenColor = chosen
		}
		return action, nil
	case "draw", "d":
		return game.DrawCard{PlayerIndex: seat}, nil
	case "pass":
		return game.PassAfterDraw{PlayerIndex: seat}, nil
	case "uno", "u":
		return game.CallUno{PlayerIndex: seat}, nil
	case "color", "c":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: color <name>")
		}
		chosen, err := suitByName(fields[1])
		if err != nil {
			return nil, err
		}
		return game.ChooseWildColor{PlayerIndex: seat, Color: chosen}, nil
	case "start":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: start <players>")
		}
		count, err := parsePosition(fields[1])
		if err != nil {
			return nil, err
		}
		return game.StartGame{PlayerCount: count}, nil
	case "reset":
		return game.Reset{}, nil
	default:
		return nil, fmt.Errorf("unknown command '%s'", fields[0])
	}
}

func suitByName(name string) (color.Color, error) {
	chosen, err := color.ByName(name)
	if err != nil {
		return color.None, err
	}
	if !chosen.IsSuit() {
		return color.None, fmt.Errorf("'%s' is not a color you can pick", name)
	}
	return chosen, nil
}

func parsePosition(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", text)
	}
	return n, nil
}
