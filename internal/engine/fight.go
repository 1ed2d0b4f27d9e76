package engine

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/systems"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/sirupsen/logrus"
)

// Fight - состояние текущего боя. Пока бой идет, таймер хода стоит на паузе.
type Fight struct {
	initiator *domain.Fighter
	target    *domain.Fighter

	attacker *domain.Fighter
	defender *domain.Fighter

	timer *countdown
}

// initFight starts a fight between the active player and an adjacent opponent.
func (s *Session) initFight(p, opponent *domain.Player) {
	s.turnTimer.Pause()
	s.cancelBot()

	initiator := domain.NewFighter(p)
	target := domain.NewFighter(opponent)
	attacker, defender := systems.FightRoles(initiator, target)

	s.fight = &Fight{
		initiator: initiator,
		target:    target,
		attacker:  attacker,
		defender:  defender,
	}
	s.fight.timer = newCountdown(s.sched, s.cfg.TimeUnit, s.onFightTick, s.onFightExpire)

	s.log.WithFields(logrus.Fields{
		"initiator_id": initiator.PID,
		"target_id":    target.PID,
		"attacker_id":  attacker.PID,
	}).Info("Fight started")

	s.publish(domain.StatFightStarted, p, opponent.Pos)
	s.broadcast(domain.EventFightInitiated, api.FightView{
		Attacker:    buildFighterView(attacker),
		Defender:    buildFighterView(defender),
		InitiatorID: initiator.PID,
	})
	s.startRound()
}

func (s *Session) startRound() {
	f := s.fight
	units := systems.FightTimerUnits(f.attacker, f.defender, s.cfg.FightUnits, s.cfg.NoEscapeFightUnits, s.cfg.BotFightUnits)
	f.timer.Start(units)
}

func (s *Session) onFightTick(remaining int) {
	s.broadcast(domain.EventUpdateRemainingFightTime, api.TimeEvent{Remaining: remaining})
}

// onFightExpire: атакующий не успел решить, решаем за него
func (s *Session) onFightExpire() {
	f := s.fight
	if f == nil || s.ended {
		return
	}
	choice := domain.ActionAttack
	if f.attacker.IsVirtual {
		choice = systems.StrategyFor(f.attacker.Profile).ChooseEscapeOrAttack(f.attacker)
	}
	if choice == domain.ActionEscape {
		s.resolveEscape()
		return
	}
	s.resolveAttack()
}

// Attack is the current attacker's choice to strike.
func (s *Session) Attack(playerID string) bool {
	if s.ended || s.fight == nil || s.fight.attacker.PID != playerID {
		return false
	}
	s.resolveAttack()
	return true
}

// Escape is the current attacker's choice to flee.
func (s *Session) Escape(playerID string) bool {
	if s.ended || s.fight == nil || s.fight.attacker.PID != playerID {
		return false
	}
	s.resolveEscape()
	return true
}

func (s *Session) resolveAttack() {
	f := s.fight
	f.timer.Stop()
	a, d := f.attacker, f.defender

	res := systems.ResolveAttack(s.roller, a, d)
	s.broadcast(domain.EventRollDiceResult, api.DiceRollEvent{
		AttackerID:  a.PID,
		AttackRoll:  res.AttackRoll,
		DefenderID:  d.PID,
		DefenseRoll: res.DefenseRoll,
	})

	if !res.Success {
		s.broadcast(domain.EventAttackFailed, api.PlayerIDEvent{PlayerID: a.PID})
		s.swapRoles()
		s.startRound()
		return
	}

	s.broadcast(domain.EventAttackPassed, api.PlayerIDEvent{PlayerID: a.PID})
	down := d.TakeDamage()
	s.broadcast(domain.EventDecrementFighterLife, api.LifeEvent{PlayerID: d.PID, Life: d.Life})
	if down {
		s.endFight(a, d, true)
		return
	}

	switch systems.ApplyLifeEffects(a, d) {
	case systems.EffectSecondChance:
		s.broadcast(domain.EventAddDefenderLife, api.LifeEvent{PlayerID: d.PID, Life: d.Life})
	case systems.EffectLifeSwap:
		s.broadcast(domain.EventSwapFightersLives, api.SwapLivesEvent{
			AttackerID:   a.PID,
			AttackerLife: a.Life,
			DefenderID:   d.PID,
			DefenderLife: d.Life,
		})
	}

	s.swapRoles()
	s.startRound()
}

// resolveEscape: без попыток побега раунд превращается в атаку
func (s *Session) resolveEscape() {
	f := s.fight
	a := f.attacker
	if a.EscapesLeft <= 0 {
		s.resolveAttack()
		return
	}
	f.timer.Stop()

	if s.roller.TryEscape(s.cfg.EscapeChance) {
		s.broadcast(domain.EventEscapePassed, api.PlayerIDEvent{PlayerID: a.PID})
		s.publish(domain.StatEscaped, a.Player(), a.Player().Pos)
		s.endFight(nil, nil, false)
		return
	}

	a.SpendEscape()
	s.broadcast(domain.EventEscapeFailed, api.EscapeEvent{PlayerID: a.PID, EscapesLeft: a.EscapesLeft})
	s.swapRoles()
	s.startRound()
}

func (s *Session) swapRoles() {
	f := s.fight
	f.attacker, f.defender = f.defender, f.attacker
	s.broadcast(domain.EventUpdateCurrentAttacker, api.PlayerIDEvent{PlayerID: f.attacker.PID})
}

// fighterGaveUp: сдавшийся проигрывает без урона
func (s *Session) fighterGaveUp(p *domain.Player) {
	f := s.fight
	quitter, other := f.attacker, f.defender
	if f.defender.PID == p.ID {
		quitter, other = f.defender, f.attacker
	}
	s.broadcast(domain.EventFighterGaveUp, api.PlayerIDEvent{PlayerID: p.ID})
	s.endFight(other, quitter, false)
}

// endFight closes the fight. defeated means the loser dropped to zero life and respawns.
func (s *Session) endFight(winner, loser *domain.Fighter, defeated bool) {
	f := s.fight
	if f == nil {
		return
	}
	f.timer.Stop()
	s.fight = nil

	ev := api.FightEndEvent{Escaped: winner == nil}
	if winner != nil {
		wp, lp := winner.Player(), loser.Player()
		wp.Wins++
		if s.Rules.LoserLosesWin && lp.Wins > 0 {
			lp.Wins--
		}
		ev.WinnerID, ev.LoserID = wp.ID, lp.ID
		s.publish(domain.StatFightWon, wp, wp.Pos)
		if defeated {
			s.respawn(lp)
		}
	}

	for _, fighter := range []*domain.Fighter{f.initiator, f.target} {
		pl := fighter.Player()
		pl.Life = pl.MaxLife
	}
	initiator := f.initiator.Player()
	if initiator.RemainingActions > 0 {
		initiator.RemainingActions--
	}

	s.log.WithFields(logrus.Fields{
		"winner_id": ev.WinnerID,
		"loser_id":  ev.LoserID,
		"escaped":   ev.Escaped,
	}).Info("Fight ended")

	s.broadcast(domain.EventFightTerminated, ev)
	s.broadcast(domain.EventPlayerListUpdated, api.RosterPayload{Players: s.rosterView()})

	if winner != nil && s.Mode == domain.ModeClassic && winner.Player().Wins >= s.cfg.WinsToVictory {
		s.endGame(winner.Player())
		return
	}

	s.turnTimer.Resume()
	s.broadcast(domain.EventActionFinished, api.PlayerIDEvent{PlayerID: initiator.ID})
	s.continueAfterFight(loser)
}

// continueAfterFight: если проиграл тот, чей ход, ход заканчивается, иначе ход продолжается
func (s *Session) continueAfterFight(loser *domain.Fighter) {
	active := s.turns.Active()
	if s.ended || active == nil || !active.IsActive() {
		return
	}
	if loser != nil && loser.PID == active.ID {
		s.endTurn()
		return
	}
	s.afterAction(active)
}
