package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
	HandSize   = 7
)

// Engine reduces actions into states. Its only dependency is the random
// source used for shuffles and random colors.
type Engine struct {
	random Random
}

func NewEngine(random Random) *Engine {
	if random == nil {
		random = NewRandom()
	}
	return &Engine{random: random}
}

var defaultEngine = NewEngine(nil)

// Reduce applies action to s with the package default engine.
func Reduce(s State, action Action) State {
	return defaultEngine.Reduce(s, action)
}

// InitialState is the idle table before the first round.
func InitialState() State {
	return State{
		Phase:        PhaseIdle,
		Config:       DefaultConfig(),
		Direction:    Right,
		ActiveColor:  color.Red,
		Announcement: msg.Message.NewRound(),
		ScoreBoard:   map[string]int{},
	}
}

// Reduce returns the state that follows prev once action is applied.
// Invalid actions are never errors: they come back as prev with an
// announcement, and for bad plays a LastInvalidMove.
func (e *Engine) Reduce(prev State, action Action) State {
	switch a := action.(type) {
	case Reset:
		return InitialState()
	case StartGame:
		return e.startGame(prev, a)
	}

	now := timestampOf(action)
	s := prev
	s.LastInvalidMove = nil
	// Expired UNO windows are settled before anything else, whoever acts.
	s = e.applyUnoPenalty(s, now)
	s.ClockMs = now

	switch a := action.(type) {
	case PlayCard:
		return e.playCard(s, a)
	case DrawCard:
		return e.drawCard(s, a)
	case PassAfterDraw:
		return e.passAfterDraw(s, a)
	case ChooseWildColor:
		return e.chooseWildColor(s, a)
	case CallUno:
		return e.callUno(s, a)
	case Tick:
		return e.tick(s, a)
	default:
		return s
	}
}

func (e *Engine) startGame(prev State, a StartGame) State {
	if a.PlayerCount < MinPlayers || a.PlayerCount > MaxPlayers {
		return withAnnouncement(prev, msg.Message.InvalidPlayerCount(a.PlayerCount))
	}

	players := make([]Player, a.PlayerCount)
	for i := range players {
		players[i] = Player{ID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("Player %d", i+1)}
	}

	deck := Shuffle(e.random, NewDeck())
	cursor := len(deck)
	for round := 0; round < HandSize; round++ {
		for i := range players {
			cursor--
			players[i].Hand = append(players[i].Hand, deck[cursor])
		}
	}

	top, drawPile := popCard(deck[:cursor:cursor])
	for top.Kind() == card.KindWildDrawFour {
		top, drawPile = popCard(Shuffle(e.random, pushCards([]card.Card{top}, drawPile...)))
	}

	activeColor := top.Color()
	if top.IsWild() {
		activeColor = randomSuit(e.random)
	}

	s := InitialState()
	s.Config = prev.Config
	if prev.ScoreBoard != nil {
		s.ScoreBoard = prev.ScoreBoard
	}
	s.Phase = PhaseInProgress
	s.Players = players
	s.DrawPile = drawPile
	s.DiscardPile = []card.Card{top}
	s.TurnIndex = 0
	s.TurnStartedAt = a.Now
	s.ClockMs = a.Now
	s.Direction = Right
	s.ActiveColor = activeColor

	if !top.IsNumber() {
		// The opener acts as if played by the seat before player 0.
		s = e.applyCardEffect(s, top, len(players)-1, activeColor, a.Now)
	}
	s.Announcement = msg.Message.FirstCardPlayed(top, s.ActiveColor)
	return s
}

func (e *Engine) playCard(s State, a PlayCard) State {
	switch s.Phase {
	case PhaseIdle, PhaseGameOver:
		return withAnnouncement(s, msg.Message.RoundNotInProgress())
	case PhaseChoosingColor:
		return withAnnouncement(s, msg.Message.ColorChoicePending())
	}
	if a.PlayerIndex != s.TurnIndex {
		return withAnnouncement(s, msg.Message.NotYourTurn())
	}

	hand := s.Players[a.PlayerIndex].Hand
	played, found := findCard(hand, a.CardID)
	if !found {
		return withAnnouncement(s, msg.Message.CardNotInHand())
	}
	if s.DrawnCardID != "" && a.CardID != s.DrawnCardID {
		return markInvalid(s, a.PlayerIndex, a.CardID, msg.Message.OnlyDrawnCardPlayable())
	}

	top := s.TopCard()
	if !Playable(played, top, s.ActiveColor, hand, s.Config.EnforceWildDrawFourLegality) {
		return markInvalid(s, a.PlayerIndex, a.CardID, msg.Message.IllegalMove(s.ActiveColor, top))
	}

	s = s.withHand(a.PlayerIndex, removeCard(hand, a.CardID))
	s.DiscardPile = pushCards(s.DiscardPile, played)
	s.DrawnCardID = ""
	s = openUnoWindow(s, a.PlayerIndex, a.Now)

	if len(s.Players[a.PlayerIndex].Hand) == 0 {
		return finalizeWinner(s, a.PlayerIndex)
	}

	if played.IsWild() && !a.ChosenColor.IsSuit() {
		s.Phase = PhaseChoosingColor
		s.AwaitingWildChoice = &WildChoice{Card: played, PlayerIndex: a.PlayerIndex}
		s.Announcement = msg.Message.PickColor(s.playerName(a.PlayerIndex))
		return s
	}

	return e.applyCardEffect(s, played, a.PlayerIndex, a.ChosenColor, a.Now)
}

func (e *Engine) drawCard(s State, a DrawCard) State {
	if s.Phase != PhaseInProgress {
		return withAnnouncement(s, msg.Message.RoundNotInProgress())
	}
	if a.PlayerIndex != s.TurnIndex {
		return withAnnouncement(s, msg.Message.NotYourTurn())
	}
	if s.DrawnCardID != "" {
		return withAnnouncement(s, msg.Message.ResolveDrawnCardFirst())
	}
	if CanPlayAny(s, a.PlayerIndex) {
		return withAnnouncement(s, msg.Message.DrawOnlyWithoutMoves())
	}

	s, drawn := DrawN(s, 1, e.random)
	if len(drawn) == 0 {
		return withAnnouncement(s, msg.Message.NoCardsToDraw())
	}
	s = s.giveCards(a.PlayerIndex, drawn)

	name := s.playerName(a.PlayerIndex)
	if s.Config.DrawThenPlayAllowed &&
		Playable(drawn[0], s.TopCard(), s.ActiveColor, s.Players[a.PlayerIndex].Hand, s.Config.EnforceWildDrawFourLegality) {
		s.DrawnCardID = drawn[0].ID()
		s.Announcement = msg.Message.DrewPlayableCard(name)
		return s
	}

	s.TurnIndex = Next(a.PlayerIndex, s.Direction, len(s.Players))
	s.TurnStartedAt = a.Now
	s.Announcement = msg.Message.DrewAndTurnEnded(name)
	return s
}

func (e *Engine) passAfterDraw(s State, a PassAfterDraw) State {
	if s.Phase != PhaseInProgress {
		return withAnnouncement(s, msg.Message.RoundNotInProgress())
	}
	if a.PlayerIndex != s.TurnIndex {
		return withAnnouncement(s, msg.Message.NotYourTurn())
	}
	if s.DrawnCardID == "" {
		return withAnnouncement(s, msg.Message.NoDrawnCardPending())
	}

	s.DrawnCardID = ""
	s.TurnIndex = Next(a.PlayerIndex, s.Direction, len(s.Players))
	s.TurnStartedAt = a.Now
	s.Announcement = msg.Message.PlayerPassed(s.playerName(a.PlayerIndex))
	return s
}

func (e *Engine) chooseWildColor(s State, a ChooseWildColor) State {
	if s.Phase != PhaseChoosingColor || s.AwaitingWildChoice == nil {
		return withAnnouncement(s, msg.Message.RoundNotInProgress())
	}
	if s.AwaitingWildChoice.PlayerIndex != a.PlayerIndex {
		return withAnnouncement(s, msg.Message.NotYourColorChoice())
	}
	if !a.Color.IsSuit() {
		return withAnnouncement(s, msg.Message.InvalidColorChoice(a.Color))
	}

	wild := s.AwaitingWildChoice.Card
	s.Phase = PhaseInProgress
	s.AwaitingWildChoice = nil
	return e.applyCardEffect(s, wild, a.PlayerIndex, a.Color, a.Now)
}

func (e *Engine) callUno(s State, a CallUno) State {
	if s.UnoWindow == nil {
		return withAnnouncement(s, msg.Message.NoUnoPending())
	}
	if s.UnoWindow.PlayerIndex != a.PlayerIndex {
		return withAnnouncement(s, msg.Message.UnoNotYours())
	}
	if a.Now > s.UnoWindow.DeadlineAt {
		return e.applyUnoPenalty(s, a.Now)
	}

	s.UnoWindow = nil
	s.Announcement = msg.Message.UnoDeclared(s.playerName(a.PlayerIndex))
	return s
}

func (e *Engine) tick(s State, a Tick) State {
	if s.Phase == PhaseInProgress && a.Now-s.TurnStartedAt >= s.Config.TurnDurationMs {
		timedOut := s.playerName(s.TurnIndex)
		s.DrawnCardID = ""
		s.TurnIndex = Next(s.TurnIndex, s.Direction, len(s.Players))
		s.TurnStartedAt = a.Now
		s.Announcement = msg.Message.TurnTimedOut(timedOut)
		return s
	}
	return e.applyUnoPenalty(s, a.Now)
}

// applyCardEffect moves the turn on after playerIndex played c. chosen is
// only read for wild cards; a non-suit value picks a random color.
func (e *Engine) applyCardEffect(s State, c card.Card, playerIndex int, chosen color.Color, now int64) State {
	name := s.playerName(playerIndex)
	playerCount := len(s.Players)

	switch c.Kind() {
	case card.KindWild, card.KindWildDrawFour:
		picked := chosen
		if !picked.IsSuit() {
			picked = randomSuit(e.random)
		}
		s.ActiveColor = picked
		if c.Kind() == card.KindWild {
			s.TurnIndex = Next(playerIndex, s.Direction, playerCount)
			s.Announcement = msg.Message.PlayerPickedColor(name, picked)
			break
		}
		target := Next(playerIndex, s.Direction, playerCount)
		var drawn []card.Card
		s, drawn = DrawN(s, 4, e.random)
		s = s.giveCards(target, drawn)
		s.TurnIndex = Next(target, s.Direction, playerCount)
		s.Announcement = msg.Message.PlayerDrewFour(name, picked, s.playerName(target))

	case card.KindNumber:
		s.ActiveColor = c.Color()
		s.TurnIndex = Next(playerIndex, s.Direction, playerCount)
		s.Announcement = msg.Message.PlayerPlayedCard(name, c)

	case card.KindReverse:
		s.ActiveColor = c.Color()
		if playerCount == 2 {
			s.TurnIndex = playerIndex
			s.Announcement = msg.Message.ReverseActsAsSkip(name)
			break
		}
		s.Direction = Reverse(s.Direction)
		s.TurnIndex = Next(playerIndex, s.Direction, playerCount)
		s.Announcement = msg.Message.TurnOrderReversed(name)

	case card.KindSkip:
		s.ActiveColor = c.Color()
		skipped := Next(playerIndex, s.Direction, playerCount)
		s.TurnIndex = Step(playerIndex, s.Direction, 2, playerCount)
		s.Announcement = msg.Message.PlayerTurnSkipped(name, s.playerName(skipped))

	case card.KindDrawTwo:
		target := Next(playerIndex, s.Direction, playerCount)
		var drawn []card.Card
		s, drawn = DrawN(s, 2, e.random)
		s = s.giveCards(target, drawn)
		s.ActiveColor = c.Color()
		s.TurnIndex = Next(target, s.Direction, playerCount)
		s.Announcement = msg.Message.PlayerDrewTwo(name, s.playerName(target))
	}

	s.TurnStartedAt = now
	return s
}

func (e *Engine) applyUnoPenalty(s State, now int64) State {
	window := s.UnoWindow
	if window == nil {
		return s
	}
	if window.Called {
		s.UnoWindow = nil
		return s
	}
	if now <= window.DeadlineAt {
		return s
	}

	s.UnoWindow = nil
	s, penalty := DrawN(s, 2, e.random)
	s = s.giveCards(window.PlayerIndex, penalty)
	s.Announcement = msg.Message.UnoPenalty(s.playerName(window.PlayerIndex))
	return s
}

// openUnoWindow recomputes the acting player's window after a play. Other
// players' windows are left alone.
func openUnoWindow(s State, playerIndex int, now int64) State {
	if len(s.Players[playerIndex].Hand) == 1 {
		s.UnoWindow = &UnoWindow{PlayerIndex: playerIndex, DeadlineAt: now + s.Config.UnoWindowMs}
		return s
	}
	if s.UnoWindow != nil && s.UnoWindow.PlayerIndex == playerIndex {
		s.UnoWindow = nil
	}
	return s
}

func finalizeWinner(s State, winnerIndex int) State {
	winner := s.Players[winnerIndex]
	points := RoundScore(s.Players, winnerIndex)

	s.Phase = PhaseGameOver
	s.WinnerIndex = &winnerIndex
	s.AwaitingWildChoice = nil
	s.UnoWindow = nil
	s.DrawnCardID = ""
	s.Announcement = msg.Message.WinnerFound(winner.Name, points)
	return s.withScore(winner.ID, points)
}

func withAnnouncement(s State, announcement string) State {
	s.Announcement = announcement
	return s
}

func markInvalid(s State, playerIndex int, cardID string, reason string) State {
	s.LastInvalidMove = &InvalidMove{PlayerIndex: playerIndex, CardID: cardID, Reason: reason}
	s.Announcement = reason
	return s
}
