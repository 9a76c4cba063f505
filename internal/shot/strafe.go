package shot

import "github.com/vovakirdan/gravoids/internal/terrain"

// Strafe tables, indexed [row][5 + type*updown]. Row 0 is an approach
// from above (from the right for vertical walls), row 1 from below
// (from the left). Bouncing walls answer on both sides; plain walls
// draw no spark on a left-side vertical hit.
var (
	bounceDirTable = [2][11]int{
		{0, 15, 14, 13, 4, -1, 4, 3, 2, 1, 0},
		{8, 7, 6, 5, 12, -1, 12, 11, 10, 9, 8},
	}
	strafeDirTable = [2][11]int{
		{0, 15, 14, 13, 4, -1, 4, 3, 2, 1, 0},
		{8, 7, 6, 5, -1, -1, -1, 11, 10, 9, 8},
	}
)

// StrafeDirection picks the compass sixteenth for the spark drawn when
// a shot strikes the wall at pixel (x, y). For bouncing walls the same
// value is the reflection normal. Returns -1 when the strike draws
// nothing.
func StrafeDirection(w terrain.Wall, x, y int) int {
	col := 5 + int(w.Type)*w.UpDown
	if col < 0 || col > 10 {
		return -1
	}
	row := 0
	if w.Type == terrain.LineN {
		if x <= w.StartX {
			row = 1
		}
	} else if y > w.YAt(x) {
		row = 1
	}
	if w.Kind == terrain.KindBounce {
		return bounceDirTable[row][col]
	}
	return strafeDirTable[row][col]
}
