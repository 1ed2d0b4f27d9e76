package systems

import (
	"testing"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
)

func TestChooseEscapeOrAttack(t *testing.T) {
	hurt := newTestFighter("bot", 4, 2)

	if got := (Aggressive{}).ChooseEscapeOrAttack(hurt); got != domain.ActionAttack {
		t.Errorf("Aggressive should attack, got %v", got)
	}
	if got := (Defensive{}).ChooseEscapeOrAttack(hurt); got != domain.ActionEscape {
		t.Errorf("Hurt defensive bot should escape, got %v", got)
	}

	hurt.EscapesLeft = 0
	if got := (Defensive{}).ChooseEscapeOrAttack(hurt); got != domain.ActionAttack {
		t.Errorf("Defensive bot without escapes should attack, got %v", got)
	}

	healthy := newTestFighter("bot", 4, 4)
	if got := (Defensive{}).ChooseEscapeOrAttack(healthy); got != domain.ActionAttack {
		t.Errorf("Healthy defensive bot should attack, got %v", got)
	}
}

func TestStrategyFor(t *testing.T) {
	if _, ok := StrategyFor(domain.ProfileDefensive).(Defensive); !ok {
		t.Error("Expected defensive strategy")
	}
	if _, ok := StrategyFor("").(Aggressive); !ok {
		t.Error("Unknown profile should fall back to aggressive")
	}
}

func TestPlanTurn(t *testing.T) {
	g := createTestGrid(t,
		".....",
		".....",
	)
	reachableFrom := func(self *domain.Player, others ...*domain.Player) []domain.Position {
		var pos []domain.Position
		for _, o := range others {
			pos = append(pos, o.Pos)
		}
		return AccessiblePositions(g, self.Pos, self.AvailableMoves, occupiedBy(pos...))
	}

	t.Run("Aggressive fights an adjacent opponent", func(t *testing.T) {
		self := &domain.Player{ID: "bot", Pos: domain.Position{X: 0, Y: 0}, AvailableMoves: 3, RemainingActions: 1}
		enemy := &domain.Player{ID: "p1", Pos: domain.Position{X: 1, Y: 0}}
		v := TurnView{Grid: g, Self: self, Opponents: []*domain.Player{enemy}, Reachable: reachableFrom(self, enemy)}

		p := (Aggressive{}).PlanTurn(v)
		if p.Kind != PlanFight || p.Target != enemy.Pos {
			t.Errorf("Expected fight at %v, got %+v", enemy.Pos, p)
		}
	})

	t.Run("Aggressive walks next to the opponent", func(t *testing.T) {
		self := &domain.Player{ID: "bot", Pos: domain.Position{X: 0, Y: 0}, AvailableMoves: 3, RemainingActions: 1}
		enemy := &domain.Player{ID: "p1", Pos: domain.Position{X: 4, Y: 0}}
		v := TurnView{Grid: g, Self: self, Opponents: []*domain.Player{enemy}, Reachable: reachableFrom(self, enemy)}

		p := (Aggressive{}).PlanTurn(v)
		if p.Kind != PlanMove || !p.Target.IsAdjacent(enemy.Pos) {
			t.Errorf("Expected move next to %v, got %+v", enemy.Pos, p)
		}
	})

	t.Run("Defensive runs away", func(t *testing.T) {
		self := &domain.Player{ID: "bot", Pos: domain.Position{X: 2, Y: 0}, AvailableMoves: 2}
		enemy := &domain.Player{ID: "p1", Pos: domain.Position{X: 0, Y: 0}}
		v := TurnView{Grid: g, Self: self, Opponents: []*domain.Player{enemy}, Reachable: reachableFrom(self, enemy)}

		p := (Defensive{}).PlanTurn(v)
		if p.Kind != PlanMove || p.Target.ManhattanTo(enemy.Pos) <= 2 {
			t.Errorf("Expected to move away, got %+v", p)
		}
	})

	t.Run("Bot with full inventory ignores items", func(t *testing.T) {
		grid := createTestGrid(t, "...")
		grid.AddItem(domain.Position{X: 1, Y: 0}, domain.ItemPotion)
		self := &domain.Player{ID: "bot", Pos: domain.Position{X: 0, Y: 0}, AvailableMoves: 2}
		for i := 0; i < domain.MaxInventorySize; i++ {
			self.AddItem(domain.ItemSword)
		}
		v := TurnView{Grid: grid, Self: self, Reachable: AccessiblePositions(grid, self.Pos, 2, nil)}

		if p := (Defensive{}).PlanTurn(v); p.Kind != PlanEndTurn {
			t.Errorf("Expected end of turn, got %+v", p)
		}
	})

	t.Run("Flag carrier goes home", func(t *testing.T) {
		self := &domain.Player{
			ID: "bot", Pos: domain.Position{X: 3, Y: 1}, StartPos: domain.Position{X: 0, Y: 1},
			AvailableMoves: 5,
		}
		self.AddItem(domain.ItemFlag)
		v := TurnView{Grid: g, Self: self, Reachable: reachableFrom(self), Mode: domain.ModeCaptureTheFlag}

		p := (Aggressive{}).PlanTurn(v)
		if p.Kind != PlanMove || p.Target != self.StartPos {
			t.Errorf("Expected move to start %v, got %+v", self.StartPos, p)
		}
	})
}
