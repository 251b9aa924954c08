package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.CardPlayed.AddListener(listenerOne)
	bus.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerIndex: 0,
			PlayerName:  "Someone",
			Card:        card.NewWildCard("w"),
		},
		{
			PlayerIndex: 1,
			PlayerName:  "Somebody",
			Card:        card.Must(card.NewDrawTwoCard("g+2", color.Green)),
		},
	}

	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
