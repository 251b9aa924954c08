package ui

import (
	"fmt"
	"io"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

const bell = "\a"

// CuePlayer is the terminal stand-in for sound effects: one short line per
// cue. Bell rings only when Bell is set.
type CuePlayer struct {
	w    io.Writer
	Bell bool
}

func NewCuePlayer(w io.Writer) *CuePlayer {
	return &CuePlayer{w: w}
}

func (p *CuePlayer) cue(line string) {
	if p.Bell {
		line = bell + line
	}
	fmt.Fprintln(p.w, line)
}

func (p *CuePlayer) OnCardPlayed(payload event.CardPlayedPayload) {
	p.cue(fmt.Sprintf("~ %s plays %s", payload.PlayerName, payload.Card))
}

func (p *CuePlayer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Count == 1 {
		p.cue(fmt.Sprintf("~ %s drew a card", payload.PlayerName))
		return
	}
	p.cue(fmt.Sprintf("~ %s drew %d cards", payload.PlayerName, payload.Count))
}

func (p *CuePlayer) OnInvalidMove(payload event.InvalidMovePayload) {
	p.cue(fmt.Sprintf("~ buzz: %s", payload.Reason))
}

func (p *CuePlayer) OnUnoDeclared(payload event.UnoDeclaredPayload) {
	p.cue(fmt.Sprintf("~ %s shouts %s%s%s!", payload.PlayerName, color.Red.Paint("U"), color.Yellow.Paint("N"), color.Blue.Paint("O")))
}

func (p *CuePlayer) OnRoundWon(payload event.RoundWonPayload) {
	p.cue(fmt.Sprintf("~ fanfare for %s (+%d)", payload.PlayerName, payload.Points))
}

func (p *CuePlayer) OnTurnChanged(payload event.TurnChangedPayload) {
	p.cue(fmt.Sprintf("~ %s's turn", payload.PlayerName))
}

func (p *CuePlayer) OnColorPicked(payload event.ColorPickedPayload) {
	p.cue(fmt.Sprintf("~ color is now %s", payload.Color))
}
