package store

import (
	"context"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
)

// Clock returns the current time in milliseconds.
type Clock func() int64

func SystemClock() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

type Option func(*Store)

func WithEngine(engine *game.Engine) Option {
	return func(s *Store) {
		s.engine = engine
	}
}

func WithClock(clock Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func WithConfig(config game.Config) Option {
	return func(s *Store) {
		s.state.Config = config
	}
}

// WithState starts the store from an existing snapshot.
func WithState(state game.State) Option {
	return func(s *Store) {
		s.state = state
	}
}

func WithBus(bus *event.Bus) Option {
	return func(s *Store) {
		s.bus = bus
	}
}

// Store owns the single authoritative state of a table. Every change goes
// through the reducer; subscribers and cue listeners observe the results in
// dispatch order. They must not dispatch synchronously from a callback.
type Store struct {
	sync.Mutex
	publishing  sync.Mutex
	engine      *game.Engine
	clock       Clock
	state       game.State
	bus         *event.Bus
	subscribers []func(game.State)
}

func New(options ...Option) *Store {
	s := &Store{
		engine: game.NewEngine(nil),
		clock:  SystemClock,
		state:  game.InitialState(),
		bus:    event.NewBus(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Store) State() game.State {
	s.Lock()
	defer s.Unlock()
	return s.state
}

func (s *Store) Events() *event.Bus {
	return s.bus
}

// Subscribe registers fn to be called with every published snapshot.
func (s *Store) Subscribe(fn func(game.State)) {
	s.Lock()
	defer s.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch reduces action as is and publishes the result.
func (s *Store) Dispatch(action game.Action) game.State {
	s.publishing.Lock()
	defer s.publishing.Unlock()

	s.Lock()
	prev := s.state
	next := s.engine.Reduce(prev, action)
	s.state = next
	subscribers := append([]func(game.State){}, s.subscribers...)
	s.Unlock()

	emitCues(s.bus, prev, next, action)
	for _, subscriber := range subscribers {
		subscriber(next)
	}
	return next
}

// Submit stamps action with the store clock and dispatches it.
func (s *Store) Submit(action game.Action) game.State {
	return s.Dispatch(game.Stamp(action, s.clock()))
}

func (s *Store) StartGame(playerCount int) game.State {
	return s.Submit(game.StartGame{PlayerCount: playerCount})
}

func (s *Store) PlayCard(seat int, cardID string, chosenColor color.Color) game.State {
	return s.Submit(game.PlayCard{PlayerIndex: seat, CardID: cardID, ChosenColor: chosenColor})
}

func (s *Store) DrawCard(seat int) game.State {
	return s.Submit(game.DrawCard{PlayerIndex: seat})
}

func (s *Store) PassAfterDraw(seat int) game.State {
	return s.Submit(game.PassAfterDraw{PlayerIndex: seat})
}

func (s *Store) CallUno(seat int) game.State {
	return s.Submit(game.CallUno{PlayerIndex: seat})
}

func (s *Store) ChooseWildColor(seat int, chosen color.Color) game.State {
	return s.Submit(game.ChooseWildColor{PlayerIndex: seat, Color: chosen})
}

func (s *Store) Tick() game.State {
	return s.Submit(game.Tick{})
}

func (s *Store) Reset() game.State {
	return s.Dispatch(game.Reset{})
}

// UpdateConfig merges overrides into the live config. The change applies
// to the running round and to the ones after it.
func (s *Store) UpdateConfig(overrides game.Overrides) game.State {
	s.publishing.Lock()
	defer s.publishing.Unlock()

	s.Lock()
	next := s.state
	next.Config = next.Config.Merge(overrides)
	s.state = next
	subscribers := append([]func(game.State){}, s.subscribers...)
	s.Unlock()

	log.Infof("table config updated: %+v\n", next.Config)
	for _, subscriber := range subscribers {
		subscriber(next)
	}
	return next
}

// Run ticks the table every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}
