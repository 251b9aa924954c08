package event

type TurnChangedPayload struct {
	PlayerIndex int
	PlayerName  string
}

type TurnChangedListener interface {
	OnTurnChanged(TurnChangedPayload)
}

type turnChangedEmitter struct {
	listeners []TurnChangedListener
}

func (e *turnChangedEmitter) AddListener(listener TurnChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnChangedEmitter) Emit(payload TurnChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnChanged(payload)
	}
}
