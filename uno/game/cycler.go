package game

const (
	Left  = -1
	Right = 1
)

// Next returns the seat after current when moving in direction.
func Next(current int, direction int, playerCount int) int {
	return (current + direction + playerCount) % playerCount
}

// Step moves steps seats from current in direction.
func Step(current int, direction int, steps int, playerCount int) int {
	for i := 0; i < steps; i++ {
		current = Next(current, direction, playerCount)
	}
	return current
}

func Reverse(direction int) int {
	switch direction {
	case Right:
		return Left
	default:
		return Right
	}
}
