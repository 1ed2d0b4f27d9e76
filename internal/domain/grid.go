package domain

import "errors"

var (
	ErrEmptyGrid   = errors.New("grid must have at least one row")
	ErrRaggedGrid  = errors.New("grid rows must have the same length")
	ErrUnknownTile = errors.New("grid contains an unknown tile value")
)

// Grid is the tile map of one party. Tiles are packed as baseTerrain*10 + item residue
// and only change through the methods below.
type Grid struct {
	width  int
	height int
	tiles  [][]int // [y][x]

	// closedDoors хранит исходные значения дверей, пока они временно открыты
	closedDoors map[Position]int
}

// NewGrid copies rows into a new grid after checking their shape and values.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	tiles := make([][]int, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
		tiles[y] = make([]int, width)
		for x, v := range row {
			kind, item := DecodeTile(v)
			if v < 0 || !kind.Valid() || (item != ItemNone && !item.Valid()) {
				return nil, ErrUnknownTile
			}
			// Стена никогда не хранит предмет
			if kind == TileWall {
				v = EncodeTile(TileWall, ItemNone)
			}
			tiles[y][x] = v
		}
	}
	return &Grid{width: width, height: len(rows), tiles: tiles}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds checks only the map borders.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Value returns the packed tile, or a wall for out-of-bounds positions.
func (g *Grid) Value(p Position) int {
	if !g.InBounds(p) {
		return EncodeTile(TileWall, ItemNone)
	}
	return g.tiles[p.Y][p.X]
}

func (g *Grid) Kind(p Position) TileKind {
	kind, _ := DecodeTile(g.Value(p))
	return kind
}

// IsValidPosition: in bounds and not a wall.
func (g *Grid) IsValidPosition(p Position) bool {
	return g.InBounds(p) && !g.IsWall(p)
}

// ResolveCost returns -1 (wall, closed door), 0 (ice), 1 (base, open door) or 2 (water).
func (g *Grid) ResolveCost(p Position) int {
	return g.Kind(p).Cost()
}

func (g *Grid) IsWall(p Position) bool       { return g.Kind(p) == TileWall }
func (g *Grid) IsIce(p Position) bool        { return g.Kind(p) == TileIce }
func (g *Grid) IsOpenDoor(p Position) bool   { return g.Kind(p) == TileDoorOpen }
func (g *Grid) IsClosedDoor(p Position) bool { return g.Kind(p) == TileDoorClosed }

func (g *Grid) IsDoor(p Position) bool {
	kind := g.Kind(p)
	return kind == TileDoorOpen || kind == TileDoorClosed
}

func (g *Grid) GetItem(p Position) ItemType {
	_, item := DecodeTile(g.Value(p))
	return item
}

func (g *Grid) HasItem(p Position) bool {
	return g.GetItem(p) != ItemNone
}

// AddItem places item on p. First writer wins: an occupied tile, a wall or an
// out-of-bounds position leaves the grid untouched and returns false.
func (g *Grid) AddItem(p Position, item ItemType) bool {
	if !item.Valid() || !g.IsValidPosition(p) || g.HasItem(p) {
		return false
	}
	g.tiles[p.Y][p.X] = EncodeTile(g.Kind(p), item)
	return true
}

// RemoveItem clears the residue of p and returns what was there.
func (g *Grid) RemoveItem(p Position) ItemType {
	item := g.GetItem(p)
	if item == ItemNone {
		return ItemNone
	}
	g.tiles[p.Y][p.X] = EncodeTile(g.Kind(p), ItemNone)
	return item
}

// ToggleDoor flips an open door to closed and back. Returns the new open state
// and false when p is not a door.
func (g *Grid) ToggleDoor(p Position) (open bool, ok bool) {
	item := g.GetItem(p)
	switch g.Kind(p) {
	case TileDoorClosed:
		g.tiles[p.Y][p.X] = EncodeTile(TileDoorOpen, item)
		return true, true
	case TileDoorOpen:
		g.tiles[p.Y][p.X] = EncodeTile(TileDoorClosed, item)
		return false, true
	default:
		return false, false
	}
}

// GetAllNeighbors returns in-bounds 4-neighbors, horizontal ones first.
func (g *Grid) GetAllNeighbors(p Position) []Position {
	return append(g.GetHorizontalNeighbors(p), g.GetVerticalNeighbors(p)...)
}

func (g *Grid) GetHorizontalNeighbors(p Position) []Position {
	return g.neighbors(p, horizontalOffsets)
}

func (g *Grid) GetVerticalNeighbors(p Position) []Position {
	return g.neighbors(p, verticalOffsets)
}

func (g *Grid) neighbors(p Position, offsets []Position) []Position {
	result := make([]Position, 0, len(offsets))
	for _, o := range offsets {
		n := p.Shift(o.X, o.Y)
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// IgnoreClosedDoors temporarily turns every closed door into base terrain so that
// connectivity checks can walk through them. The original values are cached.
func (g *Grid) IgnoreClosedDoors() {
	if g.closedDoors == nil {
		g.closedDoors = make(map[Position]int)
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Position{X: x, Y: y}
			if !g.IsClosedDoor(p) {
				continue
			}
			if _, cached := g.closedDoors[p]; !cached {
				g.closedDoors[p] = g.tiles[y][x]
			}
			g.tiles[y][x] = EncodeTile(TileBase, g.GetItem(p))
		}
	}
}

// RestoreClosedDoors puts back the doors hidden by IgnoreClosedDoors.
func (g *Grid) RestoreClosedDoors() {
	for p, v := range g.closedDoors {
		// Предмет мог измениться, пока двери были скрыты
		kind, _ := DecodeTile(v)
		g.tiles[p.Y][p.X] = EncodeTile(kind, g.GetItem(p))
	}
	g.closedDoors = nil
}

// Snapshot returns a deep copy of the packed tiles for clients.
func (g *Grid) Snapshot() [][]int {
	out := make([][]int, g.height)
	for y := range g.tiles {
		out[y] = append([]int(nil), g.tiles[y]...)
	}
	return out
}
