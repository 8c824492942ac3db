package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" into a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	var rgb [3]int32
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid %s component in %q: %w", name, hex, err)
		}
		rgb[i] = int32(v)
	}

	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}
