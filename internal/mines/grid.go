package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Visual is the player-facing state of a cell.
type Visual int8

const (
	VisualCovered Visual = -2
	VisualFlagged Visual = -1
	/*
	 * 0 to 8 mean the cell is open and shows its mined neighbour count.
	 */
	VisualMine Visual = 9
)

func VisualCount(n int) Visual {
	return Visual(n)
}

// Count reports the neighbour count of a revealed numbered cell.
func (v Visual) Count() (int, bool) {
	if 0 <= v && v <= 8 {
		return int(v), true
	}
	return 0, false
}

func (v Visual) String() string {
	switch {
	case v == VisualCovered:
		return "-"
	case v == VisualFlagged:
		return "F"
	case v == VisualMine:
		return "*"
	case v == 0:
		return "."
	case 0 < v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

type Grid []Visual

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
