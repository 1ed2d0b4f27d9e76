package domain

import "fmt"

type Position struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Смещения соседей: сначала по горизонтали, потом по вертикали
var (
	horizontalOffsets = []Position{{X: -1, Y: 0}, {X: 1, Y: 0}}
	verticalOffsets   = []Position{{X: 0, Y: -1}, {X: 0, Y: 1}}
)

// Shift возвращает новую позицию со смещением
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanTo is the 4-directional distance to other.
func (p Position) ManhattanTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// IsAdjacent возвращает true только для 4 соседей (без диагоналей)
func (p Position) IsAdjacent(other Position) bool {
	return p.ManhattanTo(other) == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
