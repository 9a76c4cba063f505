package shot

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/gravoids/internal/terrain"
)

func makeWall(id, x, y, length, ud int, kind terrain.LineKind, typ terrain.LineType) terrain.Wall {
	packed := int(int16(ud<<8 | int(kind)<<3 | int(typ)))
	return terrain.UnpackWall(id, x, y, length, packed)
}

func TestResolveImpactVerticalWall(t *testing.T) {
	walls := []terrain.Wall{
		makeWall(0, 100, 50, 100, terrain.DirDown, terrain.KindNormal, terrain.LineN),
	}

	// One pixel short of the wall, closing at two pixels per frame.
	s := Shot{X8: 792, Y8: 800, H: 16, V: 0, Life: 35, StrafeDir: -1, HitLine: -1}
	got := ResolveImpact(s, walls, -1)

	if got.HitLine != 0 || got.Life != 0 {
		t.Errorf("hit = wall %d at life %d, expected wall 0 at life 0", got.HitLine, got.Life)
	}
	// A plain vertical wall struck from the left draws no spark.
	if got.StrafeDir != -1 {
		t.Errorf("StrafeDir = %d, expected -1", got.StrafeDir)
	}

	// Mirror approach from the right.
	s = Shot{X8: 808, Y8: 800, H: -16, V: 0, Life: 35, StrafeDir: -1, HitLine: -1}
	got = ResolveImpact(s, walls, -1)
	if got.HitLine != 0 || got.StrafeDir != 4 {
		t.Errorf("hit = wall %d spark %d, expected wall 0 spark 4", got.HitLine, got.StrafeDir)
	}
}

func TestResolveImpactNearestWins(t *testing.T) {
	walls := []terrain.Wall{
		makeWall(0, 40, 20, 20, terrain.DirDown, terrain.KindNormal, terrain.LineE),
		makeWall(1, 40, 15, 20, terrain.DirDown, terrain.KindNormal, terrain.LineE),
	}

	// Falling shot crosses wall 1 at frame 5, wall 0 at frame 10.
	s := Shot{X8: 400, Y8: 80, H: 0, V: 8, Life: 35, StrafeDir: -1, HitLine: -1}
	got := ResolveImpact(s, walls, -1)

	if got.HitLine != 1 || got.Life != 5 {
		t.Errorf("hit = wall %d at life %d, expected wall 1 at life 5", got.HitLine, got.Life)
	}
	if got.StrafeDir != 0 {
		t.Errorf("StrafeDir = %d, expected 0", got.StrafeDir)
	}
}

func TestResolveImpactTieKeepsFirst(t *testing.T) {
	walls := []terrain.Wall{
		makeWall(0, 40, 20, 20, terrain.DirDown, terrain.KindNormal, terrain.LineE),
		makeWall(1, 45, 20, 20, terrain.DirDown, terrain.KindNormal, terrain.LineE),
	}

	s := Shot{X8: 400, Y8: 80, H: 0, V: 8, Life: 35, StrafeDir: -1, HitLine: -1}
	got := ResolveImpact(s, walls, -1)

	if got.HitLine != 0 {
		t.Errorf("HitLine = %d, expected the first of two equal hits", got.HitLine)
	}
}

func TestResolveImpactLifeBudget(t *testing.T) {
	walls := []terrain.Wall{
		makeWall(0, 40, 45, 20, terrain.DirDown, terrain.KindNormal, terrain.LineE),
	}
	s := Shot{X8: 400, Y8: 80, H: 0, V: 8, StrafeDir: -1, HitLine: -1}

	// The crossing lands exactly on the last frame of life.
	s.Life = 35
	if got := ResolveImpact(s, walls, -1); got.HitLine != 0 || got.Life != 35 {
		t.Errorf("hit = wall %d at life %d, expected wall 0 at life 35", got.HitLine, got.Life)
	}

	s.Life = 34
	if got := ResolveImpact(s, walls, -1); got.HitLine != -1 || got.Life != 34 {
		t.Errorf("hit = wall %d at life %d, expected no hit with life kept", got.HitLine, got.Life)
	}
}

func TestResolveImpactSkips(t *testing.T) {
	s := Shot{X8: 792, Y8: 800, H: 16, V: 0, Life: 35, StrafeDir: -1, HitLine: -1}

	t.Run("ignored wall", func(t *testing.T) {
		walls := []terrain.Wall{
			makeWall(0, 100, 50, 100, terrain.DirDown, terrain.KindNormal, terrain.LineN),
		}
		if got := ResolveImpact(s, walls, 0); got.HitLine != -1 {
			t.Errorf("HitLine = %d, expected the ignored wall to be skipped", got.HitLine)
		}
	})

	t.Run("ghost wall", func(t *testing.T) {
		walls := []terrain.Wall{
			makeWall(0, 100, 50, 100, terrain.DirDown, terrain.KindGhost, terrain.LineN),
		}
		if got := ResolveImpact(s, walls, -1); got.HitLine != -1 {
			t.Errorf("HitLine = %d, expected ghost walls to be skipped", got.HitLine)
		}
	})

	t.Run("wall behind the track", func(t *testing.T) {
		walls := []terrain.Wall{
			makeWall(0, 100, 50, 100, terrain.DirDown, terrain.KindNormal, terrain.LineN),
		}
		back := Shot{X8: 816, Y8: 800, H: 16, V: 0, Life: 35, StrafeDir: -1, HitLine: -1}
		if got := ResolveImpact(back, walls, -1); got.HitLine != -1 {
			t.Errorf("HitLine = %d, expected no hit on a wall already passed", got.HitLine)
		}
	})

	t.Run("motionless shot", func(t *testing.T) {
		walls := []terrain.Wall{
			makeWall(0, 100, 50, 100, terrain.DirDown, terrain.KindNormal, terrain.LineN),
			makeWall(1, 40, 20, 20, terrain.DirDown, terrain.KindNormal, terrain.LineE),
			makeWall(2, 100, 100, 100, terrain.DirDown, terrain.KindNormal, terrain.LineNE),
		}
		still := Shot{X8: 800, Y8: 800, Life: 35, StrafeDir: -1, HitLine: -1}
		if got := ResolveImpact(still, walls, -1); got.HitLine != -1 {
			t.Errorf("HitLine = %d, expected no crossing without velocity", got.HitLine)
		}
	})
}

func TestResolveImpactSloped(t *testing.T) {
	walls := []terrain.Wall{
		makeWall(0, 100, 100, 100, terrain.DirDown, terrain.KindNormal, terrain.LineNE),
	}

	// Rising shot meets the diagonal at (150, 150) on frame 30.
	s := Shot{X8: 960, Y8: 1440, H: 8, V: -8, Life: 35, StrafeDir: -1, HitLine: -1}
	got := ResolveImpact(s, walls, -1)

	if got.HitLine != 0 || got.Life != 30 {
		t.Errorf("hit = wall %d at life %d, expected wall 0 at life 30", got.HitLine, got.Life)
	}
	// The spark side comes from the launch point, below the line.
	if got.StrafeDir != 10 {
		t.Errorf("StrafeDir = %d, expected 10", got.StrafeDir)
	}

	// The same heading launched further right crosses the line at x 190,
	// past the end of a shorter wall.
	short := []terrain.Wall{
		makeWall(0, 100, 100, 80, terrain.DirDown, terrain.KindNormal, terrain.LineNE),
	}
	wide := Shot{X8: 1200, Y8: 1840, H: 8, V: -8, Life: 100, StrafeDir: -1, HitLine: -1}
	if got := ResolveImpact(wide, short, -1); got.HitLine != -1 {
		t.Errorf("HitLine = %d, expected a crossing past the end to miss", got.HitLine)
	}
}

func TestResolveImpactMissKeepsShot(t *testing.T) {
	walls := []terrain.Wall{
		makeWall(0, 40, 20, 20, terrain.DirDown, terrain.KindNormal, terrain.LineE),
	}

	// Flying away from everything.
	s := Shot{X8: 400, Y8: 80, H: 0, V: -8, Life: 35, StrafeDir: 7, HitLine: 3}
	got := ResolveImpact(s, walls, -1)

	if got.Life != 35 {
		t.Errorf("Life = %d, expected 35 untouched on a miss", got.Life)
	}
	if got.HitLine != -1 || got.StrafeDir != -1 {
		t.Errorf("miss = wall %d spark %d, expected both cleared to -1", got.HitLine, got.StrafeDir)
	}
	if got.X8 != s.X8 || got.Y8 != s.Y8 || got.H != s.H || got.V != s.V {
		t.Error("miss changed the shot track")
	}
}

func TestResolveImpactProperties(t *testing.T) {
	wallGen := rapid.Custom(func(rt *rapid.T) terrain.Wall {
		return makeWall(
			rapid.IntRange(0, 31).Draw(rt, "id"),
			rapid.IntRange(0, 1000).Draw(rt, "x"),
			rapid.IntRange(0, 1000).Draw(rt, "y"),
			rapid.IntRange(0, 200).Draw(rt, "length"),
			rapid.SampledFrom([]int{terrain.DirUp, terrain.DirDown}).Draw(rt, "ud"),
			rapid.SampledFrom([]terrain.LineKind{
				terrain.KindNormal, terrain.KindBounce, terrain.KindGhost,
			}).Draw(rt, "kind"),
			terrain.LineType(rapid.IntRange(1, 5).Draw(rt, "type")),
		)
	})

	rapid.Check(t, func(rt *rapid.T) {
		walls := rapid.SliceOfN(wallGen, 0, 6).Draw(rt, "walls")
		for i := range walls {
			walls[i].ID = i
		}
		s := Shot{
			X8:        rapid.IntRange(0, 8000).Draw(rt, "x8"),
			Y8:        rapid.IntRange(0, 8000).Draw(rt, "y8"),
			H:         rapid.IntRange(-60, 60).Draw(rt, "h"),
			V:         rapid.IntRange(-60, 60).Draw(rt, "v"),
			Life:      rapid.IntRange(0, 60).Draw(rt, "life"),
			StrafeDir: -1,
			HitLine:   -1,
		}

		got := ResolveImpact(s, walls, -1)
		if got.HitLine < 0 {
			if got.Life != s.Life || got.StrafeDir != -1 {
				rt.Fatalf("miss = %+v, expected life %d and no spark", got, s.Life)
			}
			return
		}

		if got.Life < 0 || got.Life > s.Life {
			rt.Fatalf("hit life = %d, expected within [0, %d]", got.Life, s.Life)
		}
		hit, ok := terrain.WallByID(walls, got.HitLine)
		if !ok || hit.Kind == terrain.KindGhost {
			rt.Fatalf("HitLine = %d, expected a solid wall", got.HitLine)
		}

		// Resolving again past the hit wall never returns it.
		again := ResolveImpact(s, walls, got.HitLine)
		if again.HitLine == got.HitLine {
			rt.Fatalf("HitLine = %d again, expected the ignored wall to be skipped", again.HitLine)
		}
	})
}
