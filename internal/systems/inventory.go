package systems

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/zyedidia/generic/mapset"
)

// nearest walks the grid breadth-first from origin, through any non-wall tile, and returns the
// first tile accepted by fits. Neighbors are visited horizontal first, so the result is stable.
func nearest(g *domain.Grid, origin domain.Position, fits func(domain.Position) bool) (domain.Position, bool) {
	if !g.InBounds(origin) {
		return domain.Position{}, false
	}
	visited := mapset.New[domain.Position]()
	visited.Put(origin)
	queue := []domain.Position{origin}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if g.IsValidPosition(cur) && fits(cur) {
			return cur, true
		}
		for _, n := range g.GetAllNeighbors(cur) {
			if visited.Has(n) || g.IsWall(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return domain.Position{}, false
}

// FindRespawnPosition returns start when nobody stands there, otherwise the closest free tile.
func FindRespawnPosition(g *domain.Grid, start domain.Position, occupied Blocked) (domain.Position, bool) {
	return nearest(g, start, func(p domain.Position) bool {
		return !g.IsClosedDoor(p) && (occupied == nil || !occupied(p))
	})
}

// FindItemDropPosition returns the closest tile to origin that carries no item yet.
func FindItemDropPosition(g *domain.Grid, origin domain.Position) (domain.Position, bool) {
	return nearest(g, origin, func(p domain.Position) bool {
		return !g.HasItem(p)
	})
}
