package systems

import (
	"testing"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
)

func TestFindRespawnPosition(t *testing.T) {
	g := createTestGrid(t,
		"...",
		"#D#",
		"...",
	)
	start := domain.Position{X: 1, Y: 0}

	if pos, ok := FindRespawnPosition(g, start, nil); !ok || pos != start {
		t.Errorf("Free start tile should be used, got %v %v", pos, ok)
	}

	pos, ok := FindRespawnPosition(g, start, occupiedBy(start))
	if !ok {
		t.Fatal("Expected a fallback position")
	}
	if pos != (domain.Position{X: 0, Y: 0}) {
		t.Errorf("Expected nearest left tile, got %v", pos)
	}

	// Весь верх занят: поиск идет через дверь, но на ней не воскрешаем
	pos, ok = FindRespawnPosition(g, start, occupiedBy(
		domain.Position{X: 0, Y: 0}, start, domain.Position{X: 2, Y: 0},
	))
	if !ok || pos.Y != 2 {
		t.Errorf("Expected a tile behind the door, got %v %v", pos, ok)
	}
}

func TestFindItemDropPosition(t *testing.T) {
	g := createTestGrid(t, "...")
	origin := domain.Position{X: 1, Y: 0}

	g.AddItem(origin, domain.ItemSword)
	pos, ok := FindItemDropPosition(g, origin)
	if !ok || pos != (domain.Position{X: 0, Y: 0}) {
		t.Errorf("Expected (0,0), got %v %v", pos, ok)
	}

	g.AddItem(domain.Position{X: 0, Y: 0}, domain.ItemShield)
	g.AddItem(domain.Position{X: 2, Y: 0}, domain.ItemPotion)
	if _, ok := FindItemDropPosition(g, origin); ok {
		t.Error("Expected no free tile on a full map")
	}
}
