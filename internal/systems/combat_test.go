package systems

import (
	"testing"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
)

func newTestFighter(id string, speed, life int, items ...domain.ItemType) *domain.Fighter {
	p := &domain.Player{
		ID: id, Name: id, Speed: speed,
		Attack: 4, Defense: 4, AttackDie: domain.D6, DefenseDie: domain.D4,
		Life: life, MaxLife: 4,
	}
	for _, it := range items {
		p.AddItem(it)
	}
	return domain.NewFighter(p)
}

func TestIsAttackSuccessful(t *testing.T) {
	tests := []struct {
		atk, atkRoll, def, defRoll int
		want                       bool
	}{
		{4, 3, 4, 2, true},
		{4, 2, 4, 2, false}, // ничья в пользу защиты
		{4, 1, 4, 3, false},
	}
	for _, tt := range tests {
		if got := IsAttackSuccessful(tt.atk, tt.atkRoll, tt.def, tt.defRoll); got != tt.want {
			t.Errorf("IsAttackSuccessful(%d,%d,%d,%d) = %v, want %v", tt.atk, tt.atkRoll, tt.def, tt.defRoll, got, tt.want)
		}
	}
}

func TestFightRoles(t *testing.T) {
	fast := newTestFighter("fast", 6, 4)
	slow := newTestFighter("slow", 4, 4)

	if a, _ := FightRoles(slow, fast); a != fast {
		t.Error("Faster target should attack first")
	}
	if a, _ := FightRoles(fast, slow); a != fast {
		t.Error("Faster initiator should attack first")
	}

	other := newTestFighter("other", 6, 4)
	if a, _ := FightRoles(other, fast); a != other {
		t.Error("Initiator should attack first on a speed tie")
	}
}

func TestResolveAttack_Debug(t *testing.T) {
	r := &Roller{Rng: &fixedRandom{}, Debug: true}
	attacker := newTestFighter("a", 4, 4)
	defender := newTestFighter("d", 4, 4)

	res := ResolveAttack(r, attacker, defender)
	if res.AttackRoll != 6 || res.DefenseRoll != 1 || !res.Success {
		t.Errorf("Unexpected debug result %+v", res)
	}
}

func TestApplyLifeEffects(t *testing.T) {
	t.Run("Potion restores life once", func(t *testing.T) {
		attacker := newTestFighter("a", 4, 4)
		defender := newTestFighter("d", 4, 1, domain.ItemPotion)

		if eff := ApplyLifeEffects(attacker, defender); eff != EffectSecondChance {
			t.Fatalf("Expected second chance, got %v", eff)
		}
		if defender.Life != 3 || defender.Player().Life != 3 {
			t.Errorf("Expected life 3, got fighter %d player %d", defender.Life, defender.Player().Life)
		}
		defender.Life = 1
		if eff := ApplyLifeEffects(attacker, defender); eff != EffectNone {
			t.Errorf("Potion must work once per fight, got %v", eff)
		}
	})

	t.Run("Amulet swaps lives", func(t *testing.T) {
		attacker := newTestFighter("a", 4, 3)
		defender := newTestFighter("d", 4, 1, domain.ItemAmulet)

		if eff := ApplyLifeEffects(attacker, defender); eff != EffectLifeSwap {
			t.Fatalf("Expected life swap, got %v", eff)
		}
		if defender.Life != 3 || attacker.Life != 1 {
			t.Errorf("Lives not swapped: attacker %d defender %d", attacker.Life, defender.Life)
		}
	})

	t.Run("Potion wins over amulet", func(t *testing.T) {
		attacker := newTestFighter("a", 4, 3)
		defender := newTestFighter("d", 4, 1, domain.ItemAmulet, domain.ItemPotion)

		if eff := ApplyLifeEffects(attacker, defender); eff != EffectSecondChance {
			t.Errorf("Expected potion first, got %v", eff)
		}
	})

	t.Run("Dead defender gets nothing", func(t *testing.T) {
		attacker := newTestFighter("a", 4, 3)
		defender := newTestFighter("d", 4, 0, domain.ItemPotion)

		if eff := ApplyLifeEffects(attacker, defender); eff != EffectNone {
			t.Errorf("Expected no effect at zero life, got %v", eff)
		}
	})
}

func TestFightTimerUnits(t *testing.T) {
	human := newTestFighter("h", 4, 4)
	bot := newTestFighter("b", 4, 4)
	bot.IsVirtual = true
	bot2 := newTestFighter("b2", 4, 4)
	bot2.IsVirtual = true

	if got := FightTimerUnits(bot, bot2, 5, 3, 2); got != 2 {
		t.Errorf("Bots fight = %d, want 2", got)
	}
	if got := FightTimerUnits(human, bot, 5, 3, 2); got != 5 {
		t.Errorf("Standard = %d, want 5", got)
	}
	human.EscapesLeft = 0
	if got := FightTimerUnits(human, bot, 5, 3, 2); got != 3 {
		t.Errorf("No escapes = %d, want 3", got)
	}
}
