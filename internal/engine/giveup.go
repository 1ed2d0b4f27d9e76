package engine

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

// GiveUp removes a player from play. Disconnects end up here as well.
// The player stays in the roster as a tombstone and its items go back to the map.
func (s *Session) GiveUp(playerID string) {
	p := s.player(playerID)
	if s.ended || p == nil || !p.IsActive() {
		return
	}
	wasActive := s.isActivePlayer(playerID)
	inFight := s.fight != nil && (s.fight.attacker.PID == p.ID || s.fight.defender.PID == p.ID)

	p.IsGiveUp = true
	p.IsCurrentPlayer = false
	s.turns.RemovePlayer(p.ID)
	s.publish(domain.StatGaveUp, p, p.Pos)
	s.log.WithField("player_id", p.ID).Info("Player gave up")

	s.dropAllItems(p)
	if s.isChoosingItem && s.choosingPlayerID == p.ID {
		s.isChoosingItem = false
		s.choosingPlayerID = ""
	}
	if inFight {
		s.fighterGaveUp(p)
		if s.ended {
			return
		}
	}
	s.broadcast(domain.EventPlayerListUpdated, api.RosterPayload{Players: s.rosterView()})

	if s.activeHumans() == 0 {
		s.log.Info("No human players left, closing party")
		s.ended = true
		s.stopTimers()
		s.finish()
		return
	}
	if remaining := s.activePlayers(); len(remaining) == 1 {
		s.endGame(remaining[0])
		return
	}
	if wasActive {
		if s.moving {
			s.moving = false
			if s.walkTimer != nil {
				s.walkTimer.Stop()
				s.walkTimer = nil
			}
		}
		s.endTurn()
	}
}

func (s *Session) activePlayers() []*domain.Player {
	var out []*domain.Player
	for _, p := range s.players {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

func (s *Session) activeHumans() int {
	n := 0
	for _, p := range s.players {
		if p.IsActive() && !p.IsVirtual {
			n++
		}
	}
	return n
}
