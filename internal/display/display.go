// Package display resolves the page decoration shared by every rendered view.
package display

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// ErrUnsupportedColor is returned when an override names a color outside the palette.
var ErrUnsupportedColor = errors.New("unsupported color")

// Color names an entry of the accent palette.
type Color string

const (
	Red      Color = "red"
	Green    Color = "green"
	Blue     Color = "blue"
	Blue2    Color = "blue2"
	Pink     Color = "pink"
	DarkBlue Color = "darkblue"
	Lime     Color = "lime"
)

var palette = map[Color]string{
	Red:      "#e74c3c",
	Green:    "#16a085",
	Blue:     "#89CFF0",
	Blue2:    "#30336b",
	Pink:     "#f4c2c2",
	DarkBlue: "#130f40",
	Lime:     "#C1FF9C",
}

// Colors returns the palette names in a stable order.
func Colors() []Color {
	out := make([]Color, 0, len(palette))
	for c := range palette {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Hex returns the CSS value of c, or "" when c is not in the palette.
func (c Color) Hex() string {
	return palette[c]
}

// Valid reports whether c is a palette entry.
func (c Color) Valid() bool {
	_, ok := palette[c]
	return ok
}

// ResolveColor picks the accent color once at startup.
// The flag value wins over the environment value; when both are empty a
// palette entry is drawn from rnd. Any other override, including one with
// surrounding whitespace, is an error.
func ResolveColor(flagValue, envValue string, rnd *rand.Rand) (Color, error) {
	override := flagValue
	if override == "" {
		override = envValue
	}
	if override != "" {
		c := Color(override)
		if !c.Valid() {
			return "", fmt.Errorf("%w %q: supported colors are %s", ErrUnsupportedColor, override, supportedList())
		}
		return c, nil
	}

	colors := Colors()
	if rnd == nil {
		return colors[rand.IntN(len(colors))], nil
	}
	return colors[rnd.IntN(len(colors))], nil
}

func supportedList() string {
	names := make([]string, 0, len(palette))
	for _, c := range Colors() {
		names = append(names, string(c))
	}
	return strings.Join(names, ",")
}

// Config is the immutable bundle handed to every page.
// BackgroundURL is empty when no background image was provisioned.
type Config struct {
	Color         Color
	BackgroundURL string
	Group         string
	Slogan        string
}

// ColorHex returns the CSS value of the accent color.
func (c Config) ColorHex() string {
	return c.Color.Hex()
}

// HasBackground reports whether a background image is available.
func (c Config) HasBackground() bool {
	return c.BackgroundURL != ""
}
