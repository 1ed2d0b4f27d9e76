package engine

import (
	"errors"
	"fmt"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/utils"
)

var (
	ErrBadStartPosition = errors.New("start position is not a free floor tile")
	ErrDuplicatePlayer  = errors.New("duplicate player id")
)

// buildWorld создает карту и игроков партии из документа настройки.
func buildWorld(setup api.PartySetup) (*domain.Grid, []*domain.Player, error) {
	if err := setup.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid setup: %w", err)
	}

	grid, err := domain.NewGrid(setup.Map)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid map: %w", err)
	}

	players := make([]*domain.Player, 0, len(setup.Players))
	seenIDs := make(map[string]bool)
	taken := make(map[domain.Position]bool)

	for _, ps := range setup.Players {
		id := ps.ID
		if id == "" {
			id = utils.GenerateID()
		}
		if seenIDs[id] {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		seenIDs[id] = true

		start := domain.Position{X: ps.StartPos.X, Y: ps.StartPos.Y}
		if !grid.IsValidPosition(start) || grid.IsClosedDoor(start) || taken[start] {
			return nil, nil, fmt.Errorf("%w: %s at %v", ErrBadStartPosition, ps.Name, start)
		}
		taken[start] = true

		p := &domain.Player{
			ID:          id,
			Name:        ps.Name,
			Pos:         start,
			PrevPos:     start,
			StartPos:    start,
			Speed:       ps.Speed,
			Attack:      ps.Attack,
			Defense:     ps.Defense,
			AttackDie:   domain.Dice(ps.AttackDie),
			DefenseDie:  domain.Dice(ps.DefenseDie),
			Life:        ps.Life,
			MaxLife:     ps.Life,
			EscapesLeft: domain.MaxEscapeAttempts,
			Inventory:   []domain.ItemType{},
			IsOrganizer: ps.IsOrganizer,
			IsVirtual:   ps.IsVirtual,
		}
		if p.IsVirtual {
			p.Profile = domain.BotProfile(ps.Profile)
			if p.Profile == "" {
				p.Profile = domain.ProfileAggressive
			}
		}
		players = append(players, p)
	}

	return grid, players, nil
}
