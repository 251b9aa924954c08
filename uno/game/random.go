package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/uno/uno/card/color"
)

// Random is the source of every shuffle and random color in a round.
// *rand.Rand satisfies it.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

type lockedRandom struct {
	sync.Mutex
	source *rand.Rand
}

// NewRandom returns a time-seeded source that is safe for concurrent use.
func NewRandom() Random {
	return NewSeededRandom(time.Now().UnixNano())
}

// NewSeededRandom returns a reproducible source that is safe for concurrent
// use. Two sources with the same seed yield the same sequence.
func NewSeededRandom(seed int64) Random {
	return &lockedRandom{source: rand.New(rand.NewSource(seed))}
}

func (r *lockedRandom) Intn(n int) int {
	r.Lock()
	defer r.Unlock()
	return r.source.Intn(n)
}

func randomSuit(random Random) color.Color {
	return color.Suits[random.Intn(len(color.Suits))]
}
