package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/config"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers/actions"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers/admin"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/network"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GameService - реестр запущенных партий. Только он создает и удаляет сессии.
type GameService struct {
	cfg config.Config

	mu      sync.RWMutex
	parties map[string]*Session

	Hub      *network.Broadcaster
	observer Observer
	handlers map[domain.ActionType]handlers.HandlerFunc

	seq atomic.Int64
	log *logrus.Entry
}

func NewService(cfg config.Config, hub *network.Broadcaster, observer Observer) *GameService {
	if hub == nil {
		hub = network.NewBroadcaster()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	s := &GameService{
		cfg:      cfg,
		parties:  make(map[string]*Session),
		Hub:      hub,
		observer: observer,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		log:      logger.Log.WithField("component", "service"),
	}
	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionInteract] = handlers.WithPayload(actions.HandleInteract)
	s.handlers[domain.ActionAttack] = handlers.WithEmptyPayload(actions.HandleAttack)
	s.handlers[domain.ActionEscape] = handlers.WithEmptyPayload(actions.HandleEscape)
	s.handlers[domain.ActionDropItem] = handlers.WithPayload(actions.HandleDrop)
	s.handlers[domain.ActionGiveUp] = handlers.WithEmptyPayload(actions.HandleGiveUp)
	s.handlers[domain.ActionEndTurn] = handlers.WithEmptyPayload(actions.HandleEndTurn)
	s.handlers[domain.ActionSync] = handlers.WithEmptyPayload(actions.HandleSync)

	// Admin
	s.handlers[domain.ActionToggleDebug] = handlers.WithEmptyPayload(admin.HandleToggleDebug)
}

// CreateParty validates the setup, starts the party goroutine and deals the first turn.
func (s *GameService) CreateParty(setup api.PartySetup) (*Session, error) {
	if err := setup.Validate(); err != nil {
		return nil, fmt.Errorf("invalid party setup: %w", err)
	}

	id := utils.GenerateID()
	// Каждая партия получает свое зерно: мастер-зерно + порядковый номер
	seed := s.cfg.Seed + s.seq.Add(1)

	sess, err := NewSession(id, setup, SessionDeps{
		Config:     s.cfg.Game,
		Notifier:   s.Hub.Party(id),
		Observer:   s.observer,
		Rng:        rand.New(rand.NewSource(seed)),
		Handlers:   s.handlers,
		OnFinished: s.RemoveParty,
	})
	if err != nil {
		return nil, fmt.Errorf("create party: %w", err)
	}

	s.mu.Lock()
	s.parties[id] = sess
	s.mu.Unlock()

	go sess.Run()
	sess.Start()

	s.log.WithFields(logrus.Fields{
		"party_id": id,
		"mode":     string(sess.Mode),
		"players":  len(setup.Players),
		"seed":     seed,
	}).Info("Party created")
	return sess, nil
}

// Party returns a running session or nil.
func (s *GameService) Party(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parties[id]
}

// Submit routes a client command to its party. The player comes from the connection.
func (s *GameService) Submit(partyID, playerID string, cmd api.ClientCommand) bool {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		s.log.WithFields(logrus.Fields{
			"party_id": partyID,
			"action":   cmd.Action,
		}).Warn("Unknown action")
		return false
	}
	sess := s.Party(partyID)
	if sess == nil || !sess.HasPlayer(playerID) {
		return false
	}
	return sess.Submit(domain.InternalCommand{
		Action:   action,
		PlayerID: playerID,
		Payload:  cmd.Payload,
	})
}

// Disconnect treats a lost connection as giving up.
func (s *GameService) Disconnect(partyID, playerID string) {
	sess := s.Party(partyID)
	if sess == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"party_id":  partyID,
		"player_id": playerID,
	}).Info("Player disconnected")
	sess.post(func() { sess.GiveUp(playerID) })
}

// RemoveParty discards a session and disconnects its clients.
func (s *GameService) RemoveParty(id string) {
	s.mu.Lock()
	sess, ok := s.parties[id]
	delete(s.parties, id)
	s.mu.Unlock()
	if !ok {
		return
	}

	sess.Close()
	s.Hub.CloseParty(id)
	s.log.WithField("party_id", id).Info("Party removed")
}

// Parties lists the running parties, sorted by id.
func (s *GameService) Parties() []api.PartySummary {
	// Копируем список под локом: Summary ждет горутину партии,
	// а та может в это время звать RemoveParty.
	s.mu.RLock()
	sessions := make([]*Session, 0, len(s.parties))
	for _, sess := range s.parties {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	out := make([]api.PartySummary, 0, len(sessions))
	for _, sess := range sessions {
		if sum, ok := sess.Summary(); ok {
			out = append(out, sum)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Shutdown closes every party.
func (s *GameService) Shutdown() {
	s.mu.RLock()
	ids := make([]string, 0, len(s.parties))
	for id := range s.parties {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		s.RemoveParty(id)
	}
	s.log.WithField("parties", len(ids)).Info("All parties closed")
}
