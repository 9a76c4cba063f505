// Package terrain models planet wall geometry: the five direction types of
// the compact level encoding, behavior kinds, endpoint derivation, and the
// integer distance queries the ballistics code runs every tick. It contains
// no external dependencies so the math stays pure and testable.
package terrain

// LineType is the direction class of a wall in the level encoding.
// Vertical and horizontal walls are exact; the three diagonal classes
// carry slopes of 2, 1 and 1/2.
type LineType int

const (
	LineNone LineType = iota // unused record
	LineN                    // vertical
	LineNNE                  // slope 2
	LineNE                   // slope 1
	LineENE                  // slope 1/2
	LineE                    // horizontal
)

// LineKind is the behavior class of a wall.
type LineKind int

const (
	KindNormal LineKind = iota // solid, kills shots
	KindBounce                 // reflects shots
	KindGhost                  // ignored by shots
	KindExplode                // destroyed by shots
	NumKinds
)

// String returns the compass name of the direction class.
func (t LineType) String() string {
	switch t {
	case LineN:
		return "N"
	case LineNNE:
		return "NNE"
	case LineNE:
		return "NE"
	case LineENE:
		return "ENE"
	case LineE:
		return "E"
	}
	return "none"
}

// String returns the behavior name of the kind.
func (k LineKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBounce:
		return "bounce"
	case KindGhost:
		return "ghost"
	case KindExplode:
		return "explode"
	}
	return "unknown"
}

// Orientation values for Wall.UpDown. The encoding stores each diagonal
// wall either descending (DOWN) or ascending (UP) left to right; vertical
// walls are always stored DOWN, horizontal walls read the same either way.
const (
	DirUp   = -1
	DirDown = 1
)

// Orientation-resolved directions (Wall.NewType). Values run clockwise
// from south back up to north-north-east; the compass sixteenth a wall
// points toward is 9 minus this value.
const (
	NewS = 1 + iota
	NewSSE
	NewSE
	NewESE
	NewE
	NewENE
	NewNE
	NewNNE
)

// Per-type span tables, indexed by LineType. A wall of length L runs
// xlength*L/2 pixels horizontally and ylength*L/2 vertically. Entries 6
// and 7 are never produced by the editor; they keep corrupt records
// harmless.
var (
	xlength = [8]int{0, 0, 1, 2, 2, 2, 0, 0}
	ylength = [8]int{0, 2, 2, 2, 1, 0, 0, 0}

	// Slope numerators over a fixed denominator of 2: NNE walls drop 2
	// pixels per x step, NE walls 1, ENE walls 1/2.
	slopes2 = [8]int{0, 0, 4, 2, 1, 0, 0, 0}
)

// Wall is one decoded wall segment. Start is the left endpoint for
// diagonal and horizontal walls and the top endpoint for vertical ones.
// NextID and NextWhiteID are successor references filled by BuildIndex
// (-1 when there is no successor); the physics never reads them.
type Wall struct {
	ID      int
	StartX  int
	StartY  int
	Length  int
	UpDown  int // DirUp or DirDown
	Type    LineType
	Kind    LineKind
	NewType int
	EndX    int
	EndY    int

	NextID      int
	NextWhiteID int
}

// UnpackWall builds a Wall from the four words of a wall record. The
// packed word carries the orientation in its high byte (as a signed
// 8-bit value), the kind in bits 3-4 and the type in the low 3 bits.
// NNE and ENE lengths are forced odd so the half-pixel spans divide
// evenly.
func UnpackWall(id, startX, startY, length, packed int) Wall {
	w := Wall{
		ID:          id,
		StartX:      startX,
		StartY:      startY,
		Length:      length,
		UpDown:      int(int8(packed >> 8)),
		Type:        LineType(packed & 7),
		Kind:        LineKind((packed >> 3) & 3),
		NextID:      -1,
		NextWhiteID: -1,
	}
	if w.Type == LineNNE || w.Type == LineENE {
		w.Length |= 1
	}
	if w.UpDown == DirUp {
		w.NewType = 10 - int(w.Type)
	} else {
		w.NewType = int(w.Type)
	}
	w.EndX = w.StartX + (xlength[w.Type]*w.Length)>>1
	w.EndY = w.StartY + w.UpDown*((ylength[w.Type]*w.Length)>>1)
	return w
}

// Dir returns the compass sixteenth the wall points toward
// (0 = north, clockwise).
func (w Wall) Dir() int {
	return 9 - w.NewType
}

// Slope2 returns the wall's slope numerator over a denominator of 2.
func (w Wall) Slope2() int {
	return slopes2[w.Type&7]
}

// YAt returns the wall's y at the given x by the truncating slope
// projection. Only meaningful for non-vertical walls.
func (w Wall) YAt(x int) int {
	return w.StartY + w.UpDown*(slopes2[w.Type&7]*(x-w.StartX)/2)
}

// Degenerate reports whether both endpoints coincide, as happens for
// zero-length records and for the unused type values corrupt data can
// produce.
func (w Wall) Degenerate() bool {
	return w.StartX == w.EndX && w.StartY == w.EndY
}

// WallByID finds a wall by id in a decoded slice. Ids normally equal
// slice positions, but callers may pass filtered slices.
func WallByID(walls []Wall, id int) (Wall, bool) {
	if id >= 0 && id < len(walls) && walls[id].ID == id {
		return walls[id], true
	}
	for i := range walls {
		if walls[i].ID == id {
			return walls[i], true
		}
	}
	return Wall{}, false
}
