// Package planet decodes the binary galaxy format into immutable world
// snapshots. A galaxy file is a sequence of fixed-size slots, each one
// planet: a 30-word header followed by wall, bunker, fuel and crater
// sections. All multi-byte values are big-endian signed 16-bit words.
//
// Decoding never fails on slot content. Corrupt records truncate their
// section and the valid prefix is kept; the only error is asking for a
// planet the galaxy index does not have.
package planet

import "github.com/vovakirdan/gravoids/internal/terrain"

// BunkerKind is the behavior class of a bunker.
type BunkerKind int

const (
	BunkerWall      BunkerKind = iota // sits on a wall, aimed by the terrain
	BunkerDiff                        // fixed emplacement, distinct art per rotation
	BunkerGround                      // ground emplacement
	BunkerFollow                      // tracks the ship
	BunkerGenerator                   // spawns hostiles while alive
)

// Range is an inclusive low/high pair bounding a bunker firing window.
type Range struct {
	Low  int
	High int
}

// Bunker is one decoded bunker. Rot is a compass sixteenth (0 = north,
// clockwise); wall-kind bunkers keep the encoded -1 and take their
// facing from the terrain underneath.
type Bunker struct {
	X      int
	Y      int
	Rot    int
	Kind   BunkerKind
	Ranges [2]Range
	Alive  bool
}

// FuelListEnd is the x coordinate of the terminator cell closing every
// decoded fuel slice.
const FuelListEnd = 20000

// Fuel is one fuel cell. CurrentFig and FigCount are animation counters
// owned by the running game; they decode as zero.
type Fuel struct {
	X          int
	Y          int
	Alive      bool
	CurrentFig int
	FigCount   int
}

// Crater is a permanent mark left where something died.
type Crater struct {
	X int
	Y int
}

// Planet is one fully decoded world snapshot. The running game mutates
// its own copy (bunkers die, fuel is drained, craters accumulate); the
// decoder's output is never written to.
type Planet struct {
	Width  int
	Height int
	Wrap   bool // world wraps horizontally

	ShootChance int // percent chance an eligible bunker fires
	XStart      int
	YStart      int
	Bonus       int
	GravX       int // ambient gravity, applied by the shot mover
	GravY       int

	Walls []terrain.Wall
	Index terrain.Index

	Bunkers []Bunker
	Fuels   []Fuel
	Craters []Crater

	// CraterCount is how many leading entries of Craters exist at
	// start; the rest are slots for craters added during play.
	CraterCount int
}
