package export

import "github.com/vovakirdan/gravoids/internal/planet"

// Snapshot flattens a decoded planet for serialization. Geometry stays
// numeric; type and kind fields use their compass and behavior names so
// dumps read without a decoder ring.
type Snapshot struct {
	Width       int  `yaml:"width" json:"width" msgpack:"width"`
	Height      int  `yaml:"height" json:"height" msgpack:"height"`
	Wrap        bool `yaml:"wrap" json:"wrap" msgpack:"wrap"`
	ShootChance int  `yaml:"shoot_chance" json:"shoot_chance" msgpack:"shoot_chance"`
	XStart      int  `yaml:"xstart" json:"xstart" msgpack:"xstart"`
	YStart      int  `yaml:"ystart" json:"ystart" msgpack:"ystart"`
	Bonus       int  `yaml:"bonus" json:"bonus" msgpack:"bonus"`
	GravX       int  `yaml:"gravx" json:"gravx" msgpack:"gravx"`
	GravY       int  `yaml:"gravy" json:"gravy" msgpack:"gravy"`
	CraterCount int  `yaml:"crater_count" json:"crater_count" msgpack:"crater_count"`

	Walls     []WallRec     `yaml:"walls" json:"walls" msgpack:"walls"`
	Bunkers   []BunkerRec   `yaml:"bunkers" json:"bunkers" msgpack:"bunkers"`
	Fuels     []FuelRec     `yaml:"fuels" json:"fuels" msgpack:"fuels"`
	Craters   []CraterRec   `yaml:"craters" json:"craters" msgpack:"craters"`
	Junctions []JunctionRec `yaml:"junctions" json:"junctions" msgpack:"junctions"`
}

// WallRec is one wall in a snapshot.
type WallRec struct {
	ID     int    `yaml:"id" json:"id" msgpack:"id"`
	Type   string `yaml:"type" json:"type" msgpack:"type"`
	Kind   string `yaml:"kind" json:"kind" msgpack:"kind"`
	StartX int    `yaml:"x1" json:"x1" msgpack:"x1"`
	StartY int    `yaml:"y1" json:"y1" msgpack:"y1"`
	EndX   int    `yaml:"x2" json:"x2" msgpack:"x2"`
	EndY   int    `yaml:"y2" json:"y2" msgpack:"y2"`
	Length int    `yaml:"length" json:"length" msgpack:"length"`
	UpDown int    `yaml:"updown" json:"updown" msgpack:"updown"`
}

// BunkerRec is one bunker in a snapshot.
type BunkerRec struct {
	Kind   string      `yaml:"kind" json:"kind" msgpack:"kind"`
	X      int         `yaml:"x" json:"x" msgpack:"x"`
	Y      int         `yaml:"y" json:"y" msgpack:"y"`
	Rot    int         `yaml:"rot" json:"rot" msgpack:"rot"`
	Ranges [2]RangeRec `yaml:"ranges" json:"ranges" msgpack:"ranges"`
}

// RangeRec is one firing window bound pair.
type RangeRec struct {
	Low  int `yaml:"low" json:"low" msgpack:"low"`
	High int `yaml:"high" json:"high" msgpack:"high"`
}

// FuelRec is one fuel cell in a snapshot.
type FuelRec struct {
	X     int  `yaml:"x" json:"x" msgpack:"x"`
	Y     int  `yaml:"y" json:"y" msgpack:"y"`
	Alive bool `yaml:"alive" json:"alive" msgpack:"alive"`
}

// CraterRec is one crater in a snapshot.
type CraterRec struct {
	X int `yaml:"x" json:"x" msgpack:"x"`
	Y int `yaml:"y" json:"y" msgpack:"y"`
}

// JunctionRec is one wall junction in a snapshot.
type JunctionRec struct {
	X int `yaml:"x" json:"x" msgpack:"x"`
	Y int `yaml:"y" json:"y" msgpack:"y"`
}

// bunkerKindNames indexes planet.BunkerKind; out-of-range kinds from
// corrupt data come out as "unknown".
var bunkerKindNames = map[planet.BunkerKind]string{
	planet.BunkerWall:      "wall",
	planet.BunkerDiff:      "diff",
	planet.BunkerGround:    "ground",
	planet.BunkerFollow:    "follow",
	planet.BunkerGenerator: "generator",
}

// NewSnapshot flattens a decoded planet.
func NewSnapshot(p *planet.Planet) *Snapshot {
	s := &Snapshot{
		Width:       p.Width,
		Height:      p.Height,
		Wrap:        p.Wrap,
		ShootChance: p.ShootChance,
		XStart:      p.XStart,
		YStart:      p.YStart,
		Bonus:       p.Bonus,
		GravX:       p.GravX,
		GravY:       p.GravY,
		CraterCount: p.CraterCount,
	}

	for _, w := range p.Walls {
		s.Walls = append(s.Walls, WallRec{
			ID:     w.ID,
			Type:   w.Type.String(),
			Kind:   w.Kind.String(),
			StartX: w.StartX,
			StartY: w.StartY,
			EndX:   w.EndX,
			EndY:   w.EndY,
			Length: w.Length,
			UpDown: w.UpDown,
		})
	}
	for _, b := range p.Bunkers {
		name, ok := bunkerKindNames[b.Kind]
		if !ok {
			name = "unknown"
		}
		s.Bunkers = append(s.Bunkers, BunkerRec{
			Kind: name,
			X:    b.X,
			Y:    b.Y,
			Rot:  b.Rot,
			Ranges: [2]RangeRec{
				{Low: b.Ranges[0].Low, High: b.Ranges[0].High},
				{Low: b.Ranges[1].Low, High: b.Ranges[1].High},
			},
		})
	}
	for _, f := range p.Fuels {
		s.Fuels = append(s.Fuels, FuelRec{X: f.X, Y: f.Y, Alive: f.Alive})
	}
	for _, c := range p.Craters {
		s.Craters = append(s.Craters, CraterRec{X: c.X, Y: c.Y})
	}
	for _, j := range p.Index.Junctions {
		s.Junctions = append(s.Junctions, JunctionRec{X: j.X, Y: j.Y})
	}
	return s
}
