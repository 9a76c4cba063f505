package terrain

// FarDist is the sentinel squared distance returned for points well away
// from a wall, so callers can cheaply skip them.
const FarDist = 10000

// boxSlack is how far outside a wall's bounding box a point may sit
// before the distance query short-circuits to FarDist.
const boxSlack = 50

// PtToPt returns the squared distance between two points.
func PtToPt(x1, y1, x2, y2 int) int {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PtToLine returns the squared distance from a point to a wall segment.
// Points more than boxSlack outside the wall's bounding box get FarDist.
// A point past either endpoint gets the squared distance to that endpoint
// plus a small bias, so on-segment hits always compare closer than
// overshoots at equal range.
func PtToLine(x, y int, w Wall) int {
	top := min(w.StartY, w.EndY)
	bot := max(w.StartY, w.EndY)
	if x < w.StartX-boxSlack || x > w.EndX+boxSlack || y < top-boxSlack || y > bot+boxSlack {
		return FarDist
	}

	if w.Degenerate() {
		return PtToPt(x, y, w.StartX, w.StartY)
	}

	if w.Type == LineN {
		if y < w.StartY {
			return PtToPt(x, y, w.StartX, w.StartY) + 10
		}
		if y > w.EndY {
			return PtToPt(x, y, w.EndX, w.EndY) + 10
		}
		d := x - w.StartX
		return d * d
	}

	if x < w.StartX {
		return PtToPt(x, y, w.StartX, w.StartY) + 10
	}
	if x > w.EndX {
		return PtToPt(x, y, w.EndX, w.EndY) + 10
	}

	// Vertical offset from the line, then its perpendicular components.
	// For horizontal walls this reduces to dy squared.
	n := slopes2[w.Type&7]
	dy := y - w.YAt(x)
	den := 4 + n*n
	dxp := -2 * n * w.UpDown * dy / den
	dyp := 4 * dy / den
	return dxp*dxp + dyp*dyp
}
