package engine

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/systems"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/sirupsen/logrus"
)

// InteractivePositions returns the neighbors of the player holding a live opponent or a door.
func (s *Session) InteractivePositions(playerID string) []domain.Position {
	p := s.player(playerID)
	if p == nil {
		return nil
	}
	var out []domain.Position
	for _, n := range s.grid.GetAllNeighbors(p.Pos) {
		if s.opponentAt(p, n) != nil || s.grid.IsDoor(n) {
			out = append(out, n)
		}
	}
	return out
}

// AccessiblePositions returns the tiles the player can still reach this turn.
func (s *Session) AccessiblePositions(playerID string) []domain.Position {
	p := s.player(playerID)
	if p == nil || !p.IsActive() {
		return nil
	}
	return systems.AccessiblePositions(s.grid, p.Pos, p.AvailableMoves, s.occupiedExcept(p.ID))
}

// IsUnableToExecuteAction: true when the action must be refused.
func (s *Session) IsUnableToExecuteAction(playerID string, target domain.Position) bool {
	p := s.player(playerID)
	if p == nil || !p.IsActive() {
		return true
	}
	if p.RemainingActions <= 0 || target == p.Pos {
		return true
	}
	for _, pos := range s.InteractivePositions(playerID) {
		if pos == target {
			return false
		}
	}
	return true
}

// IsTurnOver: no moves, nothing reachable, no useful action left. A pending item choice
// always keeps the turn open.
func (s *Session) IsTurnOver(playerID string) bool {
	if s.isChoosingItem {
		return false
	}
	p := s.player(playerID)
	if p == nil {
		return false
	}
	if p.AvailableMoves > 0 || len(s.AccessiblePositions(playerID)) > 0 {
		return false
	}
	return p.RemainingActions <= 0 || len(s.InteractivePositions(playerID)) == 0
}

// ExecuteAction handles ACTION on a neighbor tile: fight, door toggle or nothing.
func (s *Session) ExecuteAction(playerID string, target domain.Position) bool {
	if !s.isActivePlayer(playerID) || s.busy() || s.isChoosingItem {
		return false
	}
	if s.IsUnableToExecuteAction(playerID, target) {
		// Клиент ждет подтверждения, иначе зависнет
		s.sendTo(playerID, domain.EventActionFinished, api.PlayerIDEvent{PlayerID: playerID})
		return false
	}
	p := s.player(playerID)

	if opponent := s.opponentAt(p, target); opponent != nil {
		s.initFight(p, opponent)
		return true
	}
	if s.grid.IsDoor(target) {
		s.toggleDoor(p, target)
		return true
	}

	s.broadcast(domain.EventActionFinished, api.PlayerIDEvent{PlayerID: playerID})
	s.afterAction(p)
	return true
}

func (s *Session) toggleDoor(p *domain.Player, pos domain.Position) {
	open, ok := s.grid.ToggleDoor(pos)
	if !ok {
		return
	}
	p.RemainingActions--

	s.log.WithFields(logrus.Fields{
		"player_id": p.ID,
		"pos":       pos,
		"open":      open,
	}).Debug("Door toggled")

	s.publish(domain.StatDoorToggled, p, pos)
	s.broadcast(domain.EventDoorToggled, api.DoorEvent{Pos: toPoint(pos), Open: open})
	s.broadcast(domain.EventActionFinished, api.PlayerIDEvent{PlayerID: p.ID})
	s.afterAction(p)
}
