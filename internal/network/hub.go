package network

import (
	"sync"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
	"github.com/sirupsen/logrus"
)

const subscriberBuffer = 100

// Broadcaster занимается только рассылкой сообщений подписчикам.
// Подписчики сгруппированы по партиям: PartyID -> PlayerID -> личный канал.
type Broadcaster struct {
	mu      sync.RWMutex
	parties map[string]map[string]chan api.ServerEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		parties: make(map[string]map[string]chan api.ServerEvent),
	}
}

// Register создает личный канал для игрока партии.
// Повторное подключение закрывает старый канал.
func (b *Broadcaster) Register(partyID, playerID string) chan api.ServerEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.parties[partyID]
	if !ok {
		subs = make(map[string]chan api.ServerEvent)
		b.parties[partyID] = subs
	}
	if old, ok := subs[playerID]; ok {
		close(old)
	}

	ch := make(chan api.ServerEvent, subscriberBuffer)
	subs[playerID] = ch
	return ch
}

// Unregister удаляет подписчика, если канал все еще его.
func (b *Broadcaster) Unregister(partyID, playerID string, ch chan api.ServerEvent) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.parties[partyID]
	if !ok {
		return false
	}
	cur, ok := subs[playerID]
	if !ok || cur != ch {
		return false
	}
	close(cur)
	delete(subs, playerID)
	if len(subs) == 0 {
		delete(b.parties, partyID)
	}
	return true
}

// SendTo отправляет сообщение конкретному игроку (Unicast)
func (b *Broadcaster) SendTo(partyID, playerID string, msg api.ServerEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.parties[partyID][playerID]; ok {
		b.deliver(ch, partyID, playerID, msg)
	}
}

// Broadcast отправляет всем подписчикам партии
func (b *Broadcaster) Broadcast(partyID string, msg api.ServerEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for playerID, ch := range b.parties[partyID] {
		b.deliver(ch, partyID, playerID, msg)
	}
}

// deliver никогда не блокирует партию: медленный клиент теряет сообщение
func (b *Broadcaster) deliver(ch chan api.ServerEvent, partyID, playerID string, msg api.ServerEvent) {
	select {
	case ch <- msg:
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "hub",
			"party_id":  partyID,
			"player_id": playerID,
			"event":     msg.Type,
		}).Warn("Subscriber channel full, event dropped")
	}
}

// HasSubscriber проверяет, подключен ли игрок
func (b *Broadcaster) HasSubscriber(partyID, playerID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.parties[partyID][playerID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков партии.
func (b *Broadcaster) SubscriberCount(partyID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.parties[partyID])
}

// CloseParty отключает всех подписчиков партии
func (b *Broadcaster) CloseParty(partyID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.parties[partyID] {
		close(ch)
	}
	delete(b.parties, partyID)
}

// Party returns the notifier a session uses to reach its own clients.
func (b *Broadcaster) Party(partyID string) *PartyNotifier {
	return &PartyNotifier{hub: b, partyID: partyID}
}

// PartyNotifier binds the broadcaster to one party.
type PartyNotifier struct {
	hub     *Broadcaster
	partyID string
}

func (n *PartyNotifier) SendTo(playerID string, msg api.ServerEvent) {
	n.hub.SendTo(n.partyID, playerID, msg)
}

func (n *PartyNotifier) Broadcast(msg api.ServerEvent) {
	n.hub.Broadcast(n.partyID, msg)
}
