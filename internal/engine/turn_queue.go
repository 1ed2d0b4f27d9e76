package engine

import (
	"container/heap"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
)

// TurnItem обертка для элемента очереди приоритетов
type TurnItem struct {
	Value *domain.Player // Сам игрок
	Round int            // Раунд, в котором игрок ходит следующим
	Seq   int            // Порядок в списке игроков, разрешает равную скорость
	Index int            // Индекс в куче (нужен для update)
}

// TurnQueue реализует heap.Interface и хранит TurnItems.
// Порядок: раньше раунд, потом выше скорость, потом порядок в списке.
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Round != b.Round {
		return a.Round < b.Round
	}
	if a.Value.Speed != b.Value.Speed {
		return a.Value.Speed > b.Value.Speed
	}
	return a.Seq < b.Seq
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *TurnQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*TurnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *TurnQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// Update переносит элемент в указанный раунд
func (pq *TurnQueue) Update(item *TurnItem, round int) {
	item.Round = round
	heap.Fix(pq, item.Index)
}
