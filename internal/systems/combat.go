package systems

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
	"github.com/sirupsen/logrus"
)

// LifeEffect is what an item did to the defender right after it was hit.
type LifeEffect uint8

const (
	EffectNone LifeEffect = iota
	EffectSecondChance
	EffectLifeSwap
)

// RollResult is the outcome of one attack round.
type RollResult struct {
	AttackRoll  int
	DefenseRoll int
	Success     bool
}

// IsAttackSuccessful: ties favor the defender.
func IsAttackSuccessful(attack, attackRoll, defense, defenseRoll int) bool {
	return attack+attackRoll > defense+defenseRoll
}

// ResolveAttack rolls both dice and compares the totals.
func ResolveAttack(r *Roller, attacker, defender *domain.Fighter) RollResult {
	res := RollResult{
		AttackRoll:  r.RollAttack(attacker.AttackDie),
		DefenseRoll: r.RollDefense(defender.DefenseDie),
	}
	res.Success = IsAttackSuccessful(attacker.Attack, res.AttackRoll, defender.Defense, res.DefenseRoll)

	logger.Log.WithFields(logrus.Fields{
		"component":    "combat_system",
		"attacker_id":  attacker.PID,
		"defender_id":  defender.PID,
		"attack":       attacker.Attack,
		"attack_roll":  res.AttackRoll,
		"defense":      defender.Defense,
		"defense_roll": res.DefenseRoll,
		"success":      res.Success,
	}).Debug("Attack resolved")

	return res
}

// FightRoles orders the two fighters. The faster one attacks first, the initiator on a tie.
func FightRoles(initiator, target *domain.Fighter) (attacker, defender *domain.Fighter) {
	if target.Speed > initiator.Speed {
		return target, initiator
	}
	return initiator, target
}

// ApplyLifeEffects runs the item reactions on a defender that was just hit and is still alive.
// The potion is checked before the amulet and each works once per fight.
func ApplyLifeEffects(attacker, defender *domain.Fighter) LifeEffect {
	if defender.Life <= 0 {
		return EffectNone
	}

	if defender.HasItem(domain.ItemPotion) && !defender.UsedSecondChance && defender.Life <= domain.LowLifeThreshold {
		defender.UsedSecondChance = true
		defender.AddLife(domain.PotionLifeBonus)
		return EffectSecondChance
	}

	if defender.HasItem(domain.ItemAmulet) && !defender.UsedLifeSwap &&
		defender.Life <= domain.LowLifeThreshold && defender.Life < attacker.Life {
		defender.UsedLifeSwap = true
		domain.SwapLives(attacker, defender)
		return EffectLifeSwap
	}

	return EffectNone
}

// FightTimerUnits picks the round timer length in time units.
func FightTimerUnits(attacker, defender *domain.Fighter, standard, noEscape, bots int) int {
	switch {
	case attacker.IsVirtual && defender.IsVirtual:
		return bots
	case attacker.EscapesLeft == 0:
		return noEscape
	default:
		return standard
	}
}
