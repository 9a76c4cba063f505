// Package shot resolves shot ballistics against wall geometry: when a
// shot's straight track next strikes a wall, how it reflects off
// bouncing walls, and which way the impact spark points. Everything is
// exact integer arithmetic on sub-pixel coordinates; every division
// truncates toward zero, so results are identical on every platform.
//
// Functions take a Shot by value and return the updated value. The
// caller owns movement, gravity and lifetime decrements; this package
// only answers what the track will hit and what happens then.
package shot

// Shot is the ballistic state of one shot. Positions are sub-pixel
// (pixel times 8), velocities sub-pixels per frame. After resolution,
// Life holds the frames until impact with wall HitLine, and StrafeDir
// the compass sixteenth of the spark to draw there.
type Shot struct {
	X8 int
	Y8 int
	H  int
	V  int

	Life       int
	BounceLife int // life granted after each reflection
	StrafeDir  int // spark direction, -1 for none
	HitLine    int // wall id the track strikes, -1 for none
}

// X returns the pixel x position.
func (s Shot) X() int {
	return s.X8 >> 3
}

// Y returns the pixel y position.
func (s Shot) Y() int {
	return s.Y8 >> 3
}
