package player

import (
	"github.com/ratel-online/uno/uno/game"
)

// CreateBots returns a strategy for every seat of a table except the human
// ones. Bots alternate between the good and the naive strategy.
func CreateBots(playerCount int, humanSeats []int, random game.Random) map[int]Strategy {
	human := make(map[int]bool, len(humanSeats))
	for _, seat := range humanSeats {
		human[seat] = true
	}

	bots := make(map[int]Strategy, playerCount)
	for seat := 0; seat < playerCount; seat++ {
		if human[seat] {
			continue
		}
		if len(bots)%2 == 0 {
			bots[seat] = NewGoodStrategy()
		} else {
			bots[seat] = NewNaiveStrategy(random)
		}
	}
	return bots
}
