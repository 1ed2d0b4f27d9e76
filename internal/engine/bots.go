package engine

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/systems"
	"github.com/sirupsen/logrus"
)

// scheduleBot планирует следующее решение бота, если сейчас ходит бот
func (s *Session) scheduleBot() {
	if s.busy() {
		return
	}
	active := s.turns.Active()
	if active == nil || !active.IsVirtual || !active.IsActive() {
		return
	}
	s.cancelBot()
	s.botTimer = s.sched.AfterFunc(s.cfg.BotDelay, s.playBot)
}

func (s *Session) cancelBot() {
	if s.botTimer != nil {
		s.botTimer.Stop()
		s.botTimer = nil
	}
}

// playBot takes one decision for the active bot. Every branch either hands control to an
// action that calls back into scheduleBot, or ends the turn.
func (s *Session) playBot() {
	s.botTimer = nil
	if s.busy() {
		return
	}
	bot := s.turns.Active()
	if bot == nil || !bot.IsVirtual || !bot.IsActive() {
		return
	}

	s.botDecisions++
	if s.botDecisions > s.cfg.BotMaxDecisions {
		s.log.WithField("bot_id", bot.ID).Debug("Bot decision limit reached")
		s.endTurn()
		return
	}

	view := systems.TurnView{
		Grid:      s.grid,
		Self:      bot,
		Opponents: s.activeOpponents(bot),
		Reachable: s.AccessiblePositions(bot.ID),
		Mode:      s.Mode,
	}
	plan := systems.StrategyFor(bot.Profile).PlanTurn(view)

	s.log.WithFields(logrus.Fields{
		"bot_id": bot.ID,
		"plan":   plan.Kind.String(),
		"target": plan.Target,
	}).Debug("Bot plays")

	switch plan.Kind {
	case systems.PlanFight, systems.PlanDoor:
		if s.ExecuteAction(bot.ID, plan.Target) {
			return
		}
	case systems.PlanMove:
		if s.Move(bot.ID, plan.Target) {
			return
		}
	}
	s.endTurn()
}
