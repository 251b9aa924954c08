package event

type RoundWonPayload struct {
	PlayerIndex int
	PlayerName  string
	Points      int
}

type RoundWonListener interface {
	OnRoundWon(RoundWonPayload)
}

type roundWonEmitter struct {
	listeners []RoundWonListener
}

func (e *roundWonEmitter) AddListener(listener RoundWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundWonEmitter) Emit(payload RoundWonPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundWon(payload)
	}
}
