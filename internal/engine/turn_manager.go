package engine

import (
	"container/heap"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
)

// TurnManager owns the active player pointer and the round counter.
type TurnManager struct {
	queue   TurnQueue
	itemMap map[string]*TurnItem
	seq     int

	active *domain.Player
	round  int
}

func NewTurnManager() *TurnManager {
	return &TurnManager{
		queue:   make(TurnQueue, 0),
		itemMap: make(map[string]*TurnItem),
	}
}

// AddPlayer registers a player; it first plays in the current round.
func (tm *TurnManager) AddPlayer(p *domain.Player) {
	if _, ok := tm.itemMap[p.ID]; ok {
		return
	}
	round := tm.round
	if round == 0 {
		round = 1
	}
	item := &TurnItem{Value: p, Round: round, Seq: tm.seq}
	tm.seq++

	heap.Push(&tm.queue, item)
	tm.itemMap[p.ID] = item

	logger.Log.WithField("player_id", p.ID).Debug("Player added to TurnManager")
}

// Next closes the turn of the active player and returns whoever plays now.
func (tm *TurnManager) Next() *domain.Player {
	if tm.active != nil {
		if item, ok := tm.itemMap[tm.active.ID]; ok {
			tm.queue.Update(item, item.Round+1)
		}
	}
	if tm.queue.Len() == 0 {
		tm.active = nil
		return nil
	}
	top := tm.queue[0]
	if top.Round > tm.round {
		tm.round = top.Round
	}
	tm.active = top.Value
	return tm.active
}

// RemovePlayer removes a player from the rotation (give-up).
func (tm *TurnManager) RemovePlayer(playerID string) {
	if item, ok := tm.itemMap[playerID]; ok {
		heap.Remove(&tm.queue, item.Index)
		delete(tm.itemMap, playerID)
	}
}

func (tm *TurnManager) Active() *domain.Player { return tm.active }
func (tm *TurnManager) Round() int             { return tm.round }

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// DebugDump возвращает снимок очереди для отладки
func (tm *TurnManager) DebugDump() []map[string]interface{} {
	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]map[string]interface{}, 0)

	for _, item := range tm.queue {
		result = append(result, map[string]interface{}{
			"id":    item.Value.ID,
			"name":  item.Value.Name,
			"round": item.Round,
			"speed": item.Value.Speed,
			"index": item.Index,
		})
	}
	return result
}
