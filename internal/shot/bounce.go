package shot

import "github.com/vovakirdan/gravoids/internal/terrain"

// maxReflections caps a single bounce resolution; a shot trapped in a
// tight corner stops dead rather than looping.
const maxReflections = 8

// bounceVecs holds one radius-34 vector per compass sixteenth, screen y
// growing downward. Each entry is perpendicular to the one a quarter
// turn away and their squared length is close to 24*48.
var bounceVecs = [16][2]int{
	{0, -34}, {13, -31}, {24, -24}, {31, -13},
	{34, 0}, {31, 13}, {24, 24}, {13, 31},
	{0, 34}, {-13, 31}, {-24, 24}, {-31, 13},
	{-34, 0}, {-31, -13}, {-24, -24}, {-13, -31},
}

// Bounce reflects a shot whose life just ran out on a bouncing wall and
// re-resolves its track past it. While a reflection lands on another
// bouncing wall with zero frames to spare, it keeps reflecting, up to
// maxReflections. A shot still out of life afterward loses its spark.
func Bounce(s Shot, walls []terrain.Wall) Shot {
	for i := 0; i < maxReflections; i++ {
		s.X8 -= s.H / 3
		s.Y8 -= s.V / 3
		if s.StrafeDir < 0 {
			break
		}

		// Decompose velocity against the wall normal and tangent,
		// flip the normal part, and rescale by the vectors' squared
		// length.
		nv := bounceVecs[s.StrafeDir]
		tv := bounceVecs[(s.StrafeDir+12)&15]
		dn := s.H*nv[0] + s.V*nv[1]
		dt := s.H*tv[0] + s.V*tv[1]
		s.H = (dt*tv[0] - dn*nv[0]) / (24 * 48)
		s.V = (dt*tv[1] - dn*nv[1]) / (24 * 48)

		s.Life = s.BounceLife
		s = ResolveImpact(s, walls, s.HitLine)
		if s.Life != 0 || s.HitLine < 0 {
			break
		}
		hit, ok := terrain.WallByID(walls, s.HitLine)
		if !ok || hit.Kind != terrain.KindBounce {
			break
		}
	}
	if s.Life == 0 {
		s.StrafeDir = -1
	}
	return s
}
