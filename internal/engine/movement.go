package engine

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/systems"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/sirupsen/logrus"
)

// Move walks the active player toward dest, one tile per step delay.
// Returns false when the request is refused or nothing is reachable.
func (s *Session) Move(playerID string, dest domain.Position) bool {
	if !s.isActivePlayer(playerID) || s.busy() || s.isChoosingItem {
		return false
	}
	p := s.player(playerID)

	path := systems.PlayerPathTo(s.grid, p.Pos, dest, p.AvailableMoves, s.occupiedExcept(p.ID))
	if len(path) == 0 {
		return false
	}

	s.log.WithFields(logrus.Fields{
		"player_id": p.ID,
		"from":      p.Pos,
		"to":        dest,
		"steps":     len(path),
	}).Debug("Move started")

	s.moving = true
	s.stepMove(p, path, 0)
	return true
}

// stepMove обрабатывает одну клетку пути
func (s *Session) stepMove(p *domain.Player, path []systems.Step, i int) {
	s.walkTimer = nil
	if s.ended {
		return
	}
	if !p.IsActive() {
		// Игрок сдался посреди пути
		s.moving = false
		return
	}

	step := path[i]
	p.MoveTo(step.Pos)
	p.AvailableMoves = step.RemainingMoves
	s.broadcast(domain.EventPlayerMoving, api.PlayerPayload{Player: buildPlayerView(p)})

	if s.Mode == domain.ModeCaptureTheFlag && p.HasFlag && p.Pos == p.StartPos {
		s.moving = false
		s.endGame(p)
		return
	}

	s.publish(domain.StatTileVisited, p, p.Pos)

	if !p.HasItem(domain.ItemSkates) && s.roller.HasSlipped(s.grid, p.Pos, s.Rules.DoubleIceBreak, s.cfg.SlipChance) {
		s.slip(p)
		return
	}

	if s.pickup(p) {
		// Человек должен выбрать, что выбросить: путь прерывается
		s.finishMove(p)
		return
	}

	if i+1 < len(path) {
		s.walkTimer = s.sched.AfterFunc(s.cfg.StepDelay, func() { s.stepMove(p, path, i+1) })
		return
	}
	s.finishMove(p)
}

// slip: игрок поскользнулся, остаток пути отменяется
func (s *Session) slip(p *domain.Player) {
	s.log.WithFields(logrus.Fields{
		"player_id": p.ID,
		"pos":       p.Pos,
	}).Info("Player slipped on ice")

	if s.cfg.SlipConsumesAction && p.RemainingActions > 0 {
		p.RemainingActions--
	}
	s.broadcast(domain.EventIceBroken, api.PositionEvent{Pos: toPoint(p.Pos)})

	s.walkTimer = s.sched.AfterFunc(s.cfg.SlipDelay, func() {
		s.walkTimer = nil
		if s.ended {
			return
		}
		s.TeleportPlayer(p, p.Pos)
		s.broadcast(domain.EventPlayerReplacedAfterSlip, api.PlayerPayload{Player: buildPlayerView(p)})
		s.finishMove(p)
	})
}

// pickup подбирает предмет с клетки. Возвращает true, если человек перегружен и должен выбрать.
func (s *Session) pickup(p *domain.Player) bool {
	item := s.grid.GetItem(p.Pos)
	if item == domain.ItemNone {
		return false
	}
	if p.IsVirtual && p.InventoryFull() {
		return false
	}
	if p.IsOverCapacity() {
		return false
	}

	s.grid.RemoveItem(p.Pos)
	p.AddItem(item)
	if item == domain.ItemFlag {
		s.publish(domain.StatFlagPicked, p, p.Pos)
	}
	s.broadcast(domain.EventItemRemoved, api.ItemEvent{Pos: toPoint(p.Pos), Item: item.String()})
	s.broadcast(domain.EventUpdateItem, api.InventoryEvent{PlayerID: p.ID, Inventory: itemNames(p.Inventory)})

	if !p.IsVirtual && p.IsOverCapacity() {
		s.isChoosingItem = true
		s.choosingPlayerID = p.ID
		s.sendTo(p.ID, domain.EventChooseItemToRemove, api.InventoryEvent{PlayerID: p.ID, Inventory: itemNames(p.Inventory)})
		return true
	}
	return false
}

// finishMove закрывает движение и рассылает итоговый список игроков
func (s *Session) finishMove(p *domain.Player) {
	s.moving = false
	s.broadcast(domain.EventPlayerEndMoving, api.RosterPayload{Players: s.rosterView()})

	if s.pendingTurnEnd {
		s.pendingTurnEnd = false
		if s.isChoosingItem && s.choosingPlayerID == p.ID {
			s.autoDropNewest(p)
		}
		s.endTurn()
		return
	}
	s.afterAction(p)
}

// DropItem resolves an over-full inventory.
func (s *Session) DropItem(playerID string, item domain.ItemType) bool {
	if !s.isChoosingItem || s.choosingPlayerID != playerID {
		return false
	}
	p := s.player(playerID)
	if p == nil || !p.RemoveItem(item) {
		return false
	}
	s.isChoosingItem = false
	s.choosingPlayerID = ""

	s.ReplaceItem(p, item, p.Pos)
	s.broadcast(domain.EventUpdateItem, api.InventoryEvent{PlayerID: p.ID, Inventory: itemNames(p.Inventory)})
	s.afterAction(p)
	return true
}

// autoDropNewest выбрасывает последний подобранный предмет, когда игрок не успел выбрать
func (s *Session) autoDropNewest(p *domain.Player) {
	s.isChoosingItem = false
	s.choosingPlayerID = ""
	if len(p.Inventory) == 0 {
		return
	}
	item := p.Inventory[len(p.Inventory)-1]
	p.RemoveItem(item)
	s.ReplaceItem(p, item, p.Pos)
	s.broadcast(domain.EventUpdateItem, api.InventoryEvent{PlayerID: p.ID, Inventory: itemNames(p.Inventory)})
}
