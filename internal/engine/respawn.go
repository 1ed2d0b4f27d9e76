package engine

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/systems"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/sirupsen/logrus"
)

// TeleportPlayer relocates without any path check. The caller picks a free valid tile.
func (s *Session) TeleportPlayer(p *domain.Player, pos domain.Position) {
	p.MoveTo(pos)
}

// ReplaceItem returns an item to the map on the closest free tile around origin.
func (s *Session) ReplaceItem(p *domain.Player, item domain.ItemType, origin domain.Position) {
	pos, ok := systems.FindItemDropPosition(s.grid, origin)
	if !ok || !s.grid.AddItem(pos, item) {
		s.log.WithFields(logrus.Fields{
			"player_id": p.ID,
			"item":      item.String(),
		}).Warn("No free tile for item, item lost")
		return
	}
	if item == domain.ItemFlag {
		s.publish(domain.StatFlagLost, p, pos)
	}
	s.broadcast(domain.EventItemPlaced, api.ItemEvent{Pos: toPoint(pos), Item: item.String()})
}

// dropAllItems возвращает весь инвентарь на карту вокруг игрока
func (s *Session) dropAllItems(p *domain.Player) {
	if len(p.Inventory) == 0 {
		return
	}
	items := append([]domain.ItemType(nil), p.Inventory...)
	for _, item := range items {
		p.RemoveItem(item)
		s.ReplaceItem(p, item, p.Pos)
	}
	s.broadcast(domain.EventUpdateItem, api.InventoryEvent{PlayerID: p.ID, Inventory: itemNames(p.Inventory)})
}

// respawn: проигравший теряет предметы и возвращается на старт (или ближайшую свободную клетку)
func (s *Session) respawn(p *domain.Player) {
	s.dropAllItems(p)

	pos, ok := systems.FindRespawnPosition(s.grid, p.StartPos, s.occupiedExcept(p.ID))
	if !ok {
		s.log.WithField("player_id", p.ID).Warn("No free tile to respawn, player stays in place")
		return
	}
	s.TeleportPlayer(p, pos)

	s.log.WithFields(logrus.Fields{
		"player_id": p.ID,
		"pos":       pos,
	}).Debug("Player respawned")
}
