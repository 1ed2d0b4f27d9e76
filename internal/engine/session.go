package engine

import (
	"fmt"
	"sync"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/config"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/systems"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
	"github.com/sirupsen/logrus"
)

const inboxSize = 100

// SessionDeps are the collaborators a session is built with.
type SessionDeps struct {
	Config    config.Game
	Scheduler Scheduler // nil: таймеры через очередь сессии
	Notifier  Notifier
	Observer  Observer
	Rng       systems.Random
	Handlers  map[domain.ActionType]handlers.HandlerFunc

	// OnFinished is called once, from the session goroutine, when the session has to be discarded.
	OnFinished func(partyID string)
}

// Session представляет собой одну запущенную партию.
// Все изменения состояния происходят в одной горутине (Run), которая разбирает inbox.
type Session struct {
	ID    string
	Mode  domain.GameMode
	Rules domain.HouseRules

	cfg     config.Game
	grid    *domain.Grid
	players []*domain.Player // в порядке регистрации, сдавшиеся остаются
	turns   *TurnManager
	roller  *systems.Roller

	fight     *Fight
	turnTimer *countdown

	isChoosingItem   bool
	choosingPlayerID string

	moving         bool // игрок идет по пути, другие действия запрещены
	pendingTurnEnd bool // время хода вышло во время движения
	walkTimer      Timer

	botTimer     Timer
	botDecisions int

	started  bool
	ended    bool
	finished bool

	sched      Scheduler
	notifier   Notifier
	observer   Observer
	handlers   map[domain.ActionType]handlers.HandlerFunc
	onFinished func(string)

	inbox     chan func()
	done      chan struct{}
	closeOnce sync.Once

	log *logrus.Entry
}

// NewSession builds a party from its setup document. The session does nothing until Run and Start.
func NewSession(id string, setup api.PartySetup, deps SessionDeps) (*Session, error) {
	grid, players, err := buildWorld(setup)
	if err != nil {
		return nil, err
	}
	if deps.Rng == nil {
		return nil, fmt.Errorf("session %s: random source is required", id)
	}

	s := &Session{
		ID:   id,
		Mode: domain.ParseGameMode(setup.Mode),
		Rules: domain.HouseRules{
			DoubleIceBreak: setup.Rules.DoubleIceBreak,
			LoserLosesWin:  setup.Rules.LoserLosesWin,
		},
		cfg:        deps.Config,
		grid:       grid,
		players:    players,
		turns:      NewTurnManager(),
		roller:     &systems.Roller{Rng: deps.Rng},
		notifier:   deps.Notifier,
		observer:   deps.Observer,
		handlers:   deps.Handlers,
		onFinished: deps.OnFinished,
		inbox:      make(chan func(), inboxSize),
		done:       make(chan struct{}),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"party_id":  id,
		}),
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	s.sched = deps.Scheduler
	if s.sched == nil {
		s.sched = &loopScheduler{post: s.post}
	}
	s.turnTimer = newCountdown(s.sched, s.cfg.TimeUnit, s.onTurnTick, s.onTurnExpire)

	return s, nil
}

// Run разбирает очередь сессии до Close.
func (s *Session) Run() {
	s.log.Info("Session loop started")
	defer s.log.Info("Session loop stopped")

	for {
		select {
		case fn := <-s.inbox:
			fn()
		case <-s.done:
			return
		}
	}
}

// post ставит функцию в очередь. Возвращает false, если сессия закрыта.
func (s *Session) post(fn func()) bool {
	select {
	case s.inbox <- fn:
		return true
	case <-s.done:
		return false
	}
}

// Start deals the first turn.
func (s *Session) Start() bool {
	return s.post(s.start)
}

// Submit queues a player command.
func (s *Session) Submit(cmd domain.InternalCommand) bool {
	return s.post(func() { s.execute(cmd) })
}

// Close stops the loop. Pending timers become no-ops.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Done is closed once the session stops.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// State returns a snapshot taken on the session goroutine.
func (s *Session) State() (api.SessionState, bool) {
	ch := make(chan api.SessionState, 1)
	if !s.post(func() { ch <- s.BuildState() }) {
		return api.SessionState{}, false
	}
	select {
	case st := <-ch:
		return st, true
	case <-s.done:
		return api.SessionState{}, false
	}
}

// Summary returns the listing line of the party.
func (s *Session) Summary() (api.PartySummary, bool) {
	ch := make(chan api.PartySummary, 1)
	if !s.post(func() { ch <- s.summary() }) {
		return api.PartySummary{}, false
	}
	select {
	case sum := <-ch:
		return sum, true
	case <-s.done:
		return api.PartySummary{}, false
	}
}

// HasPlayer reports whether id belongs to the roster. The roster never changes after creation.
func (s *Session) HasPlayer(id string) bool {
	return s.player(id) != nil
}

// Roster maps player names to ids. Names and ids are fixed at creation.
func (s *Session) Roster() map[string]string {
	out := make(map[string]string, len(s.players))
	for _, p := range s.players {
		out[p.Name] = p.ID
	}
	return out
}

// TurnOrder returns the turn queue dump taken on the session goroutine.
func (s *Session) TurnOrder() ([]map[string]interface{}, bool) {
	ch := make(chan []map[string]interface{}, 1)
	if !s.post(func() { ch <- s.turns.DebugDump() }) {
		return nil, false
	}
	select {
	case dump := <-ch:
		return dump, true
	case <-s.done:
		return nil, false
	}
}

// execute выполняет команду в контексте партии
func (s *Session) execute(cmd domain.InternalCommand) {
	if s.ended {
		return
	}
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		s.log.WithField("action", cmd.Action.String()).Warn("No handler for action")
		return
	}

	ctx := handlers.Context{Party: s, PlayerID: cmd.PlayerID}
	result, err := handler(ctx, cmd.Payload)

	entry := s.log.WithFields(logrus.Fields{
		"action":    cmd.Action.String(),
		"player_id": cmd.PlayerID,
	})
	if err != nil {
		entry.WithError(err).Warn("Command rejected")
		return
	}
	if result.Msg != "" {
		if result.MsgType == "REFUSED" {
			entry.Debug(result.Msg)
		} else {
			entry.Info(result.Msg)
		}
	}
}

// --- Ход ---

func (s *Session) start() {
	if s.started {
		return
	}
	s.started = true
	for _, p := range s.players {
		if p.IsActive() {
			s.turns.AddPlayer(p)
		}
	}
	s.broadcast(domain.EventPlayerListUpdated, api.RosterPayload{Players: s.rosterView()})
	if next := s.turns.Next(); next != nil {
		s.beginTurn(next)
	}
}

func (s *Session) beginTurn(p *domain.Player) {
	for _, other := range s.players {
		other.IsCurrentPlayer = false
	}
	p.IsCurrentPlayer = true
	p.ResetTurn()
	s.botDecisions = 0
	s.pendingTurnEnd = false

	s.log.WithFields(logrus.Fields{
		"player_id": p.ID,
		"round":     s.turns.Round(),
	}).Debug("Turn started")

	s.broadcast(domain.EventTurnStarted, api.TurnEvent{PlayerID: p.ID, Round: s.turns.Round()})
	s.broadcast(domain.EventPlayerListUpdated, api.RosterPayload{Players: s.rosterView()})
	s.turnTimer.Start(s.cfg.TurnUnits)

	if p.IsVirtual {
		s.scheduleBot()
	}
}

// endTurn передает ход следующему игроку
func (s *Session) endTurn() {
	if s.ended || s.fight != nil {
		return
	}
	s.turnTimer.Stop()
	s.cancelBot()
	s.pendingTurnEnd = false

	if active := s.turns.Active(); active != nil {
		active.IsCurrentPlayer = false
	}
	next := s.turns.Next()
	if next == nil {
		return
	}
	s.beginTurn(next)
}

func (s *Session) onTurnTick(remaining int) {
	s.broadcast(domain.EventUpdateRemainingTurnTime, api.TimeEvent{Remaining: remaining})
}

// onTurnExpire: время хода вышло
func (s *Session) onTurnExpire() {
	if s.ended {
		return
	}
	active := s.turns.Active()
	if active == nil {
		return
	}
	if s.moving {
		s.pendingTurnEnd = true
		return
	}
	if s.isChoosingItem && s.choosingPlayerID == active.ID {
		s.autoDropNewest(active)
	}
	s.log.WithField("player_id", active.ID).Info("Turn timed out")
	s.endTurn()
}

// EndTurn lets the active player pass.
func (s *Session) EndTurn(playerID string) bool {
	if !s.isActivePlayer(playerID) || s.busy() || s.isChoosingItem {
		return false
	}
	s.endTurn()
	return true
}

// afterAction продолжает ход после завершенного действия
func (s *Session) afterAction(p *domain.Player) {
	if s.ended || !s.isActivePlayer(p.ID) {
		return
	}
	if p.IsVirtual {
		s.scheduleBot()
		return
	}
	if s.IsTurnOver(p.ID) {
		s.endTurn()
	}
}

// endGame объявляет победителя и завершает партию
func (s *Session) endGame(winner *domain.Player) {
	if s.ended {
		return
	}
	s.ended = true
	s.stopTimers()

	s.log.WithFields(logrus.Fields{
		"winner_id":   winner.ID,
		"winner_name": winner.Name,
		"round":       s.turns.Round(),
	}).Info("Game ended")

	s.publish(domain.StatGameEnded, winner, winner.Pos)
	s.broadcast(domain.EventGameEnd, api.GameEndEvent{WinnerID: winner.ID, WinnerName: winner.Name})
	s.finish()
}

// stopTimers гасит все таймеры партии
func (s *Session) stopTimers() {
	s.turnTimer.Stop()
	if s.fight != nil {
		s.fight.timer.Stop()
		s.fight = nil
	}
	s.cancelBot()
	if s.walkTimer != nil {
		s.walkTimer.Stop()
		s.walkTimer = nil
	}
	s.moving = false
}

// finish просит оркестратор удалить партию
func (s *Session) finish() {
	if s.finished {
		return
	}
	s.finished = true
	if s.onFinished != nil {
		s.onFinished(s.ID)
	}
}

// ToggleDebug switches debug mode. Only the organizer may do it.
func (s *Session) ToggleDebug(playerID string) bool {
	p := s.player(playerID)
	if p == nil || !p.IsOrganizer || !p.IsActive() {
		return false
	}
	s.roller.Debug = !s.roller.Debug
	s.broadcast(domain.EventDebugModeChanged, api.DebugEvent{Enabled: s.roller.Debug})
	return true
}

// Sync sends the full state to one player.
func (s *Session) Sync(playerID string) {
	if s.player(playerID) == nil {
		return
	}
	s.sendTo(playerID, domain.EventSessionState, s.BuildState())
}

// --- Вспомогательные ---

func (s *Session) player(id string) *domain.Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Session) isActivePlayer(id string) bool {
	active := s.turns.Active()
	return !s.ended && active != nil && active.ID == id && active.IsActive()
}

// busy: идет бой или движение
func (s *Session) busy() bool {
	return s.ended || s.fight != nil || s.moving
}

// occupiedExcept treats tiles of other live players as blocked.
func (s *Session) occupiedExcept(id string) systems.Blocked {
	return func(pos domain.Position) bool {
		for _, p := range s.players {
			if p.ID != id && p.IsActive() && p.Pos == pos {
				return true
			}
		}
		return false
	}
}

func (s *Session) opponentAt(self *domain.Player, pos domain.Position) *domain.Player {
	for _, p := range s.players {
		if p.ID != self.ID && p.IsActive() && p.Pos == pos {
			return p
		}
	}
	return nil
}

func (s *Session) activeOpponents(self *domain.Player) []*domain.Player {
	var out []*domain.Player
	for _, p := range s.players {
		if p.ID != self.ID && p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

func (s *Session) broadcast(evt domain.EventType, payload any) {
	s.notifier.Broadcast(api.ServerEvent{Type: evt.String(), PartyID: s.ID, Payload: payload})
}

func (s *Session) sendTo(playerID string, evt domain.EventType, payload any) {
	s.notifier.SendTo(playerID, api.ServerEvent{Type: evt.String(), PartyID: s.ID, Payload: payload})
}

func (s *Session) publish(kind domain.StatKind, p *domain.Player, pos domain.Position) {
	s.observer.Publish(domain.StatEvent{
		PartyID:  s.ID,
		PlayerID: p.ID,
		Kind:     kind,
		Pos:      pos,
		Round:    s.turns.Round(),
	})
}
