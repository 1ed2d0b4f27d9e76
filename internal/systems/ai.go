package systems

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
	"github.com/sirupsen/logrus"
)

// PlanKind is the next step a bot wants to take during its turn.
type PlanKind uint8

const (
	PlanEndTurn PlanKind = iota
	PlanMove
	PlanFight
	PlanDoor
)

func (k PlanKind) String() string {
	switch k {
	case PlanMove:
		return "MOVE"
	case PlanFight:
		return "FIGHT"
	case PlanDoor:
		return "DOOR"
	default:
		return "END_TURN"
	}
}

// Plan - решение бота: что делать и куда
type Plan struct {
	Kind   PlanKind
	Target domain.Position
}

// TurnView is the read-only picture a bot gets when it decides.
type TurnView struct {
	Grid      *domain.Grid
	Self      *domain.Player
	Opponents []*domain.Player // только активные, без самого бота
	Reachable []domain.Position
	Mode      domain.GameMode
}

// Strategy encodes one bot profile.
type Strategy interface {
	// ChooseEscapeOrAttack returns ActionEscape or ActionAttack for the bot's round.
	ChooseEscapeOrAttack(self *domain.Fighter) domain.ActionType
	PlanTurn(view TurnView) Plan
}

// StrategyFor maps a profile to its strategy. Unknown profiles play aggressively.
func StrategyFor(profile domain.BotProfile) Strategy {
	if profile == domain.ProfileDefensive {
		return Defensive{}
	}
	return Aggressive{}
}

// Aggressive hunts the closest opponent and always fights.
type Aggressive struct{}

func (Aggressive) ChooseEscapeOrAttack(*domain.Fighter) domain.ActionType {
	return domain.ActionAttack
}

func (Aggressive) PlanTurn(v TurnView) Plan {
	if p, ok := flagPlan(v); ok {
		return logPlan(v, "aggressive", p)
	}
	if p, ok := fightPlan(v); ok {
		return logPlan(v, "aggressive", p)
	}
	if v.Self.AvailableMoves > 0 {
		for _, pos := range v.Reachable {
			if adjacentToOpponent(v, pos) {
				return logPlan(v, "aggressive", Plan{Kind: PlanMove, Target: pos})
			}
		}
		if pos, ok := itemTile(v, domain.ItemSword, domain.ItemShield); ok {
			return logPlan(v, "aggressive", Plan{Kind: PlanMove, Target: pos})
		}
		if pos, ok := closestTo(v, opponentPositions(v)); ok {
			return logPlan(v, "aggressive", Plan{Kind: PlanMove, Target: pos})
		}
	}
	if p, ok := doorPlan(v); ok {
		return logPlan(v, "aggressive", p)
	}
	return logPlan(v, "aggressive", Plan{Kind: PlanEndTurn})
}

// Defensive collects protective items, keeps its distance and flees once hurt.
type Defensive struct{}

func (Defensive) ChooseEscapeOrAttack(self *domain.Fighter) domain.ActionType {
	if self.HasTakenDamage() && self.EscapesLeft > 0 {
		return domain.ActionEscape
	}
	return domain.ActionAttack
}

func (Defensive) PlanTurn(v TurnView) Plan {
	if p, ok := flagPlan(v); ok {
		return logPlan(v, "defensive", p)
	}
	if v.Self.AvailableMoves > 0 {
		if pos, ok := itemTile(v, domain.ItemPotion, domain.ItemAmulet, domain.ItemShield, domain.ItemSkates); ok {
			return logPlan(v, "defensive", Plan{Kind: PlanMove, Target: pos})
		}
	}
	if p, ok := fightPlan(v); ok {
		return logPlan(v, "defensive", p)
	}
	if v.Self.AvailableMoves > 0 {
		if pos, ok := farthestFromOpponents(v); ok {
			return logPlan(v, "defensive", Plan{Kind: PlanMove, Target: pos})
		}
	}
	return logPlan(v, "defensive", Plan{Kind: PlanEndTurn})
}

// flagPlan covers capture-the-flag: bring the flag home, otherwise go and take it.
func flagPlan(v TurnView) (Plan, bool) {
	if v.Mode != domain.ModeCaptureTheFlag || v.Self.AvailableMoves == 0 {
		return Plan{}, false
	}
	if v.Self.HasFlag {
		if pos, ok := closestTo(v, []domain.Position{v.Self.StartPos}); ok {
			return Plan{Kind: PlanMove, Target: pos}, true
		}
		return Plan{}, false
	}
	if pos, ok := itemTile(v, domain.ItemFlag); ok {
		return Plan{Kind: PlanMove, Target: pos}, true
	}
	return Plan{}, false
}

func fightPlan(v TurnView) (Plan, bool) {
	if v.Self.RemainingActions == 0 {
		return Plan{}, false
	}
	for _, o := range v.Opponents {
		if o.Pos.IsAdjacent(v.Self.Pos) {
			return Plan{Kind: PlanFight, Target: o.Pos}, true
		}
	}
	return Plan{}, false
}

func doorPlan(v TurnView) (Plan, bool) {
	if v.Self.RemainingActions == 0 {
		return Plan{}, false
	}
	for _, n := range v.Grid.GetAllNeighbors(v.Self.Pos) {
		if v.Grid.IsClosedDoor(n) {
			return Plan{Kind: PlanDoor, Target: n}, true
		}
	}
	return Plan{}, false
}

// itemTile returns the first reachable tile holding one of wanted that the bot does not carry yet.
func itemTile(v TurnView, wanted ...domain.ItemType) (domain.Position, bool) {
	if v.Self.InventoryFull() {
		return domain.Position{}, false
	}
	for _, pos := range v.Reachable {
		item := v.Grid.GetItem(pos)
		if item == domain.ItemNone || v.Self.HasItem(item) {
			continue
		}
		for _, w := range wanted {
			if item == w {
				return pos, true
			}
		}
	}
	return domain.Position{}, false
}

// closestTo picks the reachable tile nearest to any goal, only if it gets the bot closer.
func closestTo(v TurnView, goals []domain.Position) (domain.Position, bool) {
	if len(goals) == 0 {
		return domain.Position{}, false
	}
	best := minDistance(v.Self.Pos, goals)
	var target domain.Position
	found := false
	for _, pos := range v.Reachable {
		if d := minDistance(pos, goals); d < best {
			best, target, found = d, pos, true
		}
	}
	return target, found
}

func farthestFromOpponents(v TurnView) (domain.Position, bool) {
	goals := opponentPositions(v)
	if len(goals) == 0 {
		return domain.Position{}, false
	}
	best := minDistance(v.Self.Pos, goals)
	var target domain.Position
	found := false
	for _, pos := range v.Reachable {
		if d := minDistance(pos, goals); d > best {
			best, target, found = d, pos, true
		}
	}
	return target, found
}

func adjacentToOpponent(v TurnView, pos domain.Position) bool {
	for _, o := range v.Opponents {
		if o.Pos.IsAdjacent(pos) {
			return true
		}
	}
	return false
}

func opponentPositions(v TurnView) []domain.Position {
	out := make([]domain.Position, 0, len(v.Opponents))
	for _, o := range v.Opponents {
		out = append(out, o.Pos)
	}
	return out
}

func minDistance(from domain.Position, goals []domain.Position) int {
	best := -1
	for _, g := range goals {
		if d := from.ManhattanTo(g); best < 0 || d < best {
			best = d
		}
	}
	return best
}

func logPlan(v TurnView, profile string, p Plan) Plan {
	logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"bot_id":    v.Self.ID,
		"profile":   profile,
		"plan":      p.Kind.String(),
		"target":    p.Target,
	}).Debug("Bot decision")
	return p
}
