package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// typePalette maps type tags to hex colors used when drawing a Pokemon.
var typePalette = map[string]string{
	"Normal":   "#A8A878",
	"Fire":     "#F08030",
	"Water":    "#6890F0",
	"Electric": "#F8D030",
	"Grass":    "#78C850",
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF)), nil
}

// TypeColor returns the display color for a type tag, white if unknown.
func TypeColor(typ string) tcell.Color {
	hex, ok := typePalette[typ]
	if !ok {
		return tcell.ColorWhite
	}
	c, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return c
}
