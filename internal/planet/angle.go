package planet

import "math"

// angles360 maps each compass sixteenth to its bearing in whole degrees
// (0 = north, clockwise).
var angles360 = [16]int{
	0, 23, 45, 68, 90, 113, 135, 158,
	180, 203, 225, 248, 270, 293, 315, 338,
}

// LegalAngle reports whether (x, y) lies in the forward half-plane of a
// bunker at (xcenter, ycenter) facing compass sixteenth rot. The arc
// floor is the bearing a quarter turn counterclockwise of the facing;
// the arc closes half a turn later, floor inclusive.
func LegalAngle(rot, xcenter, ycenter, x, y int) bool {
	deg := math.Atan2(float64(x-xcenter), float64(ycenter-y)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	low := float64(angles360[(rot+12)&15])
	if deg < low {
		deg += 360
	}
	return deg < low+180
}

// InArc reports whether the point is inside this bunker's firing arc.
func (b Bunker) InArc(x, y int) bool {
	return LegalAngle(b.Rot, b.X, b.Y, x, y)
}
