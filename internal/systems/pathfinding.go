package systems

import (
	"container/heap"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/zyedidia/generic/mapset"
)

// Step is one tile of a walk together with the movement budget left on arrival.
type Step struct {
	Pos            domain.Position `json:"pos"`
	RemainingMoves int             `json:"remainingMoves"`
}

// Blocked reports whether a tile is taken by another live player.
type Blocked func(domain.Position) bool

// searchNode - элемент очереди приоритетов поиска
type searchNode struct {
	pos   domain.Position
	cost  int
	seq   int // порядок обнаружения, разрешает равные стоимости
	index int
}

type searchQueue []*searchNode

func (q searchQueue) Len() int { return len(q) }

func (q searchQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}

func (q searchQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *searchQueue) Push(x interface{}) {
	n := x.(*searchNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *searchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[0 : n-1]
	return item
}

// searchResult holds the settled costs and the predecessor tree of one search.
type searchResult struct {
	cost  map[domain.Position]int
	prev  map[domain.Position]domain.Position
	order []domain.Position // в порядке фиксации
}

// search runs a uniform-cost expansion from start. limit < 0 means unbounded.
func search(g *domain.Grid, start domain.Position, limit int, blocked Blocked) searchResult {
	res := searchResult{
		cost: map[domain.Position]int{start: 0},
		prev: make(map[domain.Position]domain.Position),
	}
	settled := mapset.New[domain.Position]()
	nodes := map[domain.Position]*searchNode{}

	seq := 0
	q := &searchQueue{}
	root := &searchNode{pos: start, cost: 0, seq: seq}
	heap.Push(q, root)
	nodes[start] = root

	for q.Len() > 0 {
		cur := heap.Pop(q).(*searchNode)
		if settled.Has(cur.pos) {
			continue
		}
		settled.Put(cur.pos)
		res.order = append(res.order, cur.pos)

		for _, next := range g.GetAllNeighbors(cur.pos) {
			if settled.Has(next) {
				continue
			}
			step := g.ResolveCost(next)
			if step < 0 || (blocked != nil && blocked(next)) {
				continue
			}
			total := cur.cost + step
			if limit >= 0 && total > limit {
				continue
			}
			if known, ok := res.cost[next]; ok && known <= total {
				continue
			}
			res.cost[next] = total
			res.prev[next] = cur.pos

			if n, ok := nodes[next]; ok && n.index >= 0 {
				n.cost = total
				heap.Fix(q, n.index)
				continue
			}
			seq++
			n := &searchNode{pos: next, cost: total, seq: seq}
			nodes[next] = n
			heap.Push(q, n)
		}
	}
	return res
}

// AccessiblePositions returns every tile reachable from start within moves, start excluded,
// in the order the search settled them.
func AccessiblePositions(g *domain.Grid, start domain.Position, moves int, blocked Blocked) []domain.Position {
	if moves < 0 {
		return nil
	}
	res := search(g, start, moves, blocked)
	out := make([]domain.Position, 0, len(res.order))
	for _, p := range res.order {
		if p != start {
			out = append(out, p)
		}
	}
	return out
}

// PlayerPathTo returns the cheapest walk from start to dest, start excluded. When dest costs
// more than moves, only the affordable prefix is returned. An unreachable dest gives nil.
func PlayerPathTo(g *domain.Grid, start, dest domain.Position, moves int, blocked Blocked) []Step {
	if start == dest || moves < 0 {
		return nil
	}
	res := search(g, start, -1, blocked)
	if _, ok := res.cost[dest]; !ok {
		return nil
	}

	var reversed []domain.Position
	for p := dest; p != start; p = res.prev[p] {
		reversed = append(reversed, p)
	}

	path := make([]Step, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		p := reversed[i]
		left := moves - res.cost[p]
		if left < 0 {
			break
		}
		path = append(path, Step{Pos: p, RemainingMoves: left})
	}
	return path
}
