package event

type InvalidMovePayload struct {
	PlayerIndex int
	CardID      string
	Reason      string
}

type InvalidMoveListener interface {
	OnInvalidMove(InvalidMovePayload)
}

type invalidMoveEmitter struct {
	listeners []InvalidMoveListener
}

func (e *invalidMoveEmitter) AddListener(listener InvalidMoveListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *invalidMoveEmitter) Emit(payload InvalidMovePayload) {
	for _, listener := range e.listeners {
		listener.OnInvalidMove(payload)
	}
}
