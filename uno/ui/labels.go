package ui

import (
	"strconv"
	"strings"
)

const (
	firstLabel = 'A'
	letters    = 26
)

// cardLabel names the card at index of a hand: A to Z, then the 1-based
// position for long hands.
func cardLabel(index int) string {
	if index < letters {
		return string(firstLabel + rune(index))
	}
	return strconv.Itoa(index + 1)
}

// labelIndex is the inverse of cardLabel for letters, case-insensitive.
func labelIndex(label string) (int, bool) {
	if len(label) != 1 {
		return 0, false
	}
	index := int(rune(strings.ToUpper(label)[0]) - firstLabel)
	if index < 0 || index >= letters {
		return 0, false
	}
	return index, true
}
