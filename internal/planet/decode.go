package planet

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gravoids/internal/terrain"
)

// SlotSize is the byte size of one planet slot in a galaxy file.
const SlotSize = 1540

const (
	headerWords = 30
	maxWalls    = 125
	maxBunkers  = 25
	maxFuels    = 15
	maxCraters  = 25

	// coordLimit flags garbage records: no real coordinate reaches it.
	coordLimit = 4000
)

// ErrPlanetNotFound is returned when a planet number has no slot in the
// galaxy index.
var ErrPlanetNotFound = errors.New("planet not in galaxy index")

// Slots returns how many whole planet slots the data holds.
func Slots(data []byte) int {
	return len(data) / SlotSize
}

// IdentityIndexes builds the index table that maps each planet number
// to the slot of the same ordinal.
func IdentityIndexes(slots int) []int {
	indexes := make([]int, slots)
	for i := range indexes {
		indexes[i] = i
	}
	return indexes
}

// Decode extracts planet num (1-based) from raw galaxy data. indexes
// maps planet number to slot ordinal; an entry below zero marks an
// absent planet. Slot content itself never fails to decode: corrupt
// records close their section and the valid prefix survives.
func Decode(data []byte, indexes []int, num int) (*Planet, error) {
	if num < 1 || num > len(indexes) || indexes[num-1] < 0 {
		return nil, fmt.Errorf("planet %d: %w", num, ErrPlanetNotFound)
	}
	r := &wordReader{data: data, pos: indexes[num-1] * SlotSize}

	p := &Planet{}
	p.Width = r.word()
	p.Height = r.word()
	p.Wrap = r.word() != 0
	p.ShootChance = r.word()
	p.XStart = r.word()
	p.YStart = r.word()
	p.Bonus = r.word()
	p.GravX = r.word()
	p.GravY = r.word()
	p.CraterCount = r.word()
	r.skip(headerWords - 10)

	// Every record of every section is read even after a section goes
	// bad, so the following sections start at their fixed offsets.
	garbage := false
	for i := 0; i < maxWalls; i++ {
		startx := r.word()
		starty := r.word()
		length := r.word()
		packed := r.word()
		if garbage {
			continue
		}
		w := terrain.UnpackWall(len(p.Walls), startx, starty, length, packed)
		if w.Type == terrain.LineNone || w.EndX > coordLimit || w.StartY > coordLimit {
			garbage = true
			continue
		}
		p.Walls = append(p.Walls, w)
	}

	garbage = false
	for i := 0; i < maxBunkers; i++ {
		x := r.word()
		y := r.word()
		rot := r.word()
		b := Bunker{X: x, Y: y, Rot: rot, Alive: true}
		b.Ranges[0].Low = r.word()
		b.Ranges[0].High = r.word()
		b.Ranges[1].Low = r.word()
		b.Ranges[1].High = r.word()
		if garbage || x > coordLimit || y > coordLimit {
			garbage = true
			continue
		}
		if rot != -1 {
			b.Kind = BunkerKind(rot >> 8)
			b.Rot = rot & 255
		}
		p.Bunkers = append(p.Bunkers, b)
	}

	garbage = false
	for i := 0; i < maxFuels; i++ {
		x := r.word()
		y := r.word()
		if garbage || x > coordLimit || y > coordLimit {
			garbage = true
			continue
		}
		p.Fuels = append(p.Fuels, Fuel{X: x, Y: y, Alive: true})
	}
	if len(p.Fuels) == maxFuels {
		p.Fuels = p.Fuels[:maxFuels-1]
	}
	p.Fuels = append(p.Fuels, Fuel{X: FuelListEnd})

	for i := 0; i < maxCraters; i++ {
		x := r.word()
		y := r.word()
		p.Craters = append(p.Craters, Crater{X: x, Y: y})
	}

	p.Index = terrain.BuildIndex(p.Walls)
	return p, nil
}
