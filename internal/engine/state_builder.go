package engine

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

func toPoint(p domain.Position) api.Point {
	return api.Point{X: p.X, Y: p.Y}
}

func itemNames(items []domain.ItemType) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.String())
	}
	return out
}

// buildPlayerView копирует состояние игрока в DTO
func buildPlayerView(p *domain.Player) api.PlayerView {
	return api.PlayerView{
		ID:               p.ID,
		Name:             p.Name,
		Pos:              toPoint(p.Pos),
		StartPos:         toPoint(p.StartPos),
		Speed:            p.Speed,
		Attack:           p.EffectiveAttack(),
		Defense:          p.EffectiveDefense(),
		AttackDie:        int(p.AttackDie),
		DefenseDie:       int(p.DefenseDie),
		Life:             p.Life,
		MaxLife:          p.MaxLife,
		EscapesLeft:      p.EscapesLeft,
		Wins:             p.Wins,
		AvailableMoves:   p.AvailableMoves,
		RemainingActions: p.RemainingActions,
		Inventory:        itemNames(p.Inventory),
		HasFlag:          p.HasFlag,
		IsGiveUp:         p.IsGiveUp,
		IsCurrentPlayer:  p.IsCurrentPlayer,
		IsOrganizer:      p.IsOrganizer,
		IsVirtual:        p.IsVirtual,
		Profile:          string(p.Profile),
	}
}

func buildFighterView(f *domain.Fighter) api.FighterView {
	return api.FighterView{
		PlayerID:    f.PID,
		Name:        f.Name,
		Attack:      f.Attack,
		Defense:     f.Defense,
		Life:        f.Life,
		EscapesLeft: f.EscapesLeft,
	}
}

// rosterView - список всех игроков, включая сдавшихся
func (s *Session) rosterView() []api.PlayerView {
	out := make([]api.PlayerView, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, buildPlayerView(p))
	}
	return out
}

// BuildState создает полный снимок партии.
func (s *Session) BuildState() api.SessionState {
	state := api.SessionState{
		PartyID:        s.ID,
		Mode:           string(s.Mode),
		Round:          s.turns.Round(),
		Debug:          s.roller.Debug,
		IsChoosingItem: s.isChoosingItem,
		Ended:          s.ended,
		Map:            s.grid.Snapshot(),
		Players:        s.rosterView(),
	}
	if active := s.turns.Active(); active != nil {
		state.ActivePlayerID = active.ID
	}
	if s.fight != nil {
		state.Fight = &api.FightView{
			Attacker:    buildFighterView(s.fight.attacker),
			Defender:    buildFighterView(s.fight.defender),
			InitiatorID: s.fight.initiator.PID,
		}
	}
	return state
}

// summary is the short form used by the party listing.
func (s *Session) summary() api.PartySummary {
	humans := 0
	for _, p := range s.players {
		if p.IsActive() && !p.IsVirtual {
			humans++
		}
	}
	return api.PartySummary{
		ID:      s.ID,
		Mode:    string(s.Mode),
		Round:   s.turns.Round(),
		Players: len(s.players),
		Humans:  humans,
		Ended:   s.ended,
	}
}
