package terrain

import "sort"

// junctionSlack is the box half-size within which two wall endpoints
// count as the same junction.
const junctionSlack = 3

// Junction is a point where wall endpoints meet, kept for renderers and
// tooling that patch up wall joins.
type Junction struct {
	X, Y int
}

// Index groups a decoded wall slice for traversal by kind and for join
// rendering. The physics never consults it.
type Index struct {
	// ByKind holds wall ids grouped by behavior kind, decode order
	// preserved within each group.
	ByKind [NumKinds][]int

	// Whites holds the ids of ascending NNE walls, which renderers
	// give a separate white-only pass.
	Whites []int

	// Junctions holds the deduplicated wall endpoints, sorted by x.
	Junctions []Junction
}

// BuildIndex scans walls in decode order and produces the traversal
// index. It also threads the successor references through the slice:
// each wall's NextID points at the next wall of the same kind and
// NextWhiteID at the next white wall (-1 at chain ends).
func BuildIndex(walls []Wall) Index {
	var idx Index

	for kind := LineKind(0); kind < NumKinds; kind++ {
		last := -1
		for i := range walls {
			if walls[i].Kind != kind {
				continue
			}
			if last >= 0 {
				walls[last].NextID = walls[i].ID
			}
			walls[i].NextID = -1
			last = i
			idx.ByKind[kind] = append(idx.ByKind[kind], walls[i].ID)
		}
	}

	last := -1
	for i := range walls {
		if walls[i].NewType != NewNNE {
			continue
		}
		if last >= 0 {
			walls[last].NextWhiteID = walls[i].ID
		}
		walls[i].NextWhiteID = -1
		last = i
		idx.Whites = append(idx.Whites, walls[i].ID)
	}

	for i := range walls {
		idx.addJunction(walls[i].StartX, walls[i].StartY)
		idx.addJunction(walls[i].EndX, walls[i].EndY)
	}
	sort.SliceStable(idx.Junctions, func(a, b int) bool {
		return idx.Junctions[a].X < idx.Junctions[b].X
	})

	return idx
}

// addJunction records an endpoint unless one within junctionSlack on
// both axes is already known.
func (idx *Index) addJunction(x, y int) {
	for _, j := range idx.Junctions {
		if j.X <= x+junctionSlack && j.X >= x-junctionSlack &&
			j.Y <= y+junctionSlack && j.Y >= y-junctionSlack {
			return
		}
	}
	idx.Junctions = append(idx.Junctions, Junction{X: x, Y: y})
}
