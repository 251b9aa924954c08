package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is a card color. The zero value None means no color was chosen.
type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
	Wild
)

// Suits lists the four suit colors in deck order.
var Suits = []Color{Red, Yellow, Green, Blue}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Wild:   {name: "wild", colorFunction: color.New(color.FgHiMagenta).SprintfFunc()},
}

var Stdout io.Writer = color.Output

// IsSuit reports whether c is one of the four suit colors.
func (c Color) IsSuit() bool {
	return c >= Red && c <= Blue
}

func (c Color) Name() string {
	if entry, ok := palette[c]; ok {
		return entry.name
	}
	return "none"
}

func (c Color) Paint(text string) string {
	entry, ok := palette[c]
	if !ok {
		return text
	}
	return entry.colorFunction("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = None
		return nil
	}
	parsed, err := ByName(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ByName parses a color name, case-insensitively. "none" is accepted.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" {
		return None, nil
	}
	for c, entry := range palette {
		if entry.name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
