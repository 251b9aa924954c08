package ui

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Stdin is where prompts read from.
var Stdin = bufio.NewReader(os.Stdin)

// PromptLine prints message and returns the next trimmed input line.
// io.EOF is returned once the input is closed.
func PromptLine(message string) (string, error) {
	if message != "" {
		Println(message)
	}
	line, err := Stdin.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := PromptLine(message)
		if err != nil {
			return 0, err
		}
		number, err := parsePosition(input)
		if err != nil {
			Println("Invalid number input")
			continue
		}
		if number < minimum || number > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return number, nil
	}
}
