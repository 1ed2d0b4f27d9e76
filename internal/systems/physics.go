package systems

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Random is the subset of *rand.Rand the rules draw from.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Roller draws every random outcome of a party. With Debug set the outcomes become
// deterministic: nobody slips, the attacker rolls the highest face and the defender the lowest.
type Roller struct {
	Rng   Random
	Debug bool
}

// HasSlipped evaluates one slip trial for the tile just entered. Only ice can make a player slip.
func (r *Roller) HasSlipped(g *domain.Grid, pos domain.Position, doubleChance bool, chance float64) bool {
	if r.Debug || !g.IsIce(pos) {
		return false
	}
	if doubleChance {
		chance *= 2
	}
	draw := r.Rng.Float64()
	slipped := draw < chance

	logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"pos":       pos,
		"chance":    chance,
		"draw":      draw,
		"slipped":   slipped,
	}).Debug("Ice slip check")

	return slipped
}

// RollAttack returns the attacker's face value.
func (r *Roller) RollAttack(die domain.Dice) int {
	if r.Debug {
		return int(die)
	}
	return r.roll(die)
}

// RollDefense returns the defender's face value.
func (r *Roller) RollDefense(die domain.Dice) int {
	if r.Debug {
		return 1
	}
	return r.roll(die)
}

// TryEscape is a single escape trial. Debug mode does not affect it.
func (r *Roller) TryEscape(chance float64) bool {
	return r.Rng.Float64() < chance
}

// Pick returns a uniform index in [0, n).
func (r *Roller) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return r.Rng.Intn(n)
}

func (r *Roller) roll(die domain.Dice) int {
	if die <= 0 {
		return 1
	}
	return r.Rng.Intn(int(die)) + 1
}
