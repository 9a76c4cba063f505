package shot

import "github.com/vovakirdan/gravoids/internal/terrain"

// ResolveImpact finds the earliest wall the shot's straight track
// strikes within its remaining life. On a hit it returns the shot with
// Life cut to the impact frame, HitLine set to the winning wall and
// StrafeDir chosen for the impact side; on a miss Life is untouched and
// HitLine and StrafeDir are cleared to -1.
//
// The wall with id ignore is skipped (pass the wall just bounced off,
// or -1), as are ghost walls. Ties on the impact frame go to the
// earliest wall in decode order.
func ResolveImpact(s Shot, walls []terrain.Wall, ignore int) Shot {
	best := -1
	bestT := 0
	var bestWall terrain.Wall
	for i := range walls {
		w := &walls[i]
		if w.ID == ignore || w.Kind == terrain.KindGhost {
			continue
		}
		t, ok := crossFrame(s, w)
		if !ok || t < 0 || t > s.Life {
			continue
		}
		if best < 0 || t < bestT {
			best = w.ID
			bestT = t
			bestWall = *w
		}
	}
	if best < 0 {
		s.HitLine = -1
		s.StrafeDir = -1
		return s
	}
	s.Life = bestT
	s.HitLine = best
	s.StrafeDir = StrafeDirection(bestWall, s.X8>>3, s.Y8>>3)
	return s
}

// crossFrame returns the frame at which the shot's track crosses the
// wall segment, truncated toward zero, and whether it crosses at all.
// A track parallel to the wall never crosses.
func crossFrame(s Shot, w *terrain.Wall) (int, bool) {
	switch w.Type {
	case terrain.LineN:
		if s.H == 0 {
			return 0, false
		}
		t := ((w.StartX << 3) - s.X8) / s.H
		y := (s.Y8 + s.V*t) >> 3
		if y < w.StartY || y > w.EndY {
			return 0, false
		}
		return t, true
	case terrain.LineE:
		if s.V == 0 {
			return 0, false
		}
		t := ((w.StartY << 3) - s.Y8) / s.V
		x := (s.X8 + s.H*t) >> 3
		if x < w.StartX || x > w.EndX {
			return 0, false
		}
		return t, true
	default:
		n := w.Slope2()
		den := 2*s.V - w.UpDown*n*s.H
		if den == 0 {
			return 0, false
		}
		t := (w.UpDown*n*(s.X8-(w.StartX<<3)) - 2*(s.Y8-(w.StartY<<3))) / den
		x := (s.X8 + s.H*t) >> 3
		if x < w.StartX || x > w.EndX {
			return 0, false
		}
		return t, true
	}
}
