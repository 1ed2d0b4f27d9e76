package engine

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

// Notifier delivers events to the clients of one party.
type Notifier interface {
	SendTo(playerID string, msg api.ServerEvent)
	Broadcast(msg api.ServerEvent)
}

// Observer receives statistics events. Publish must never block.
type Observer interface {
	Publish(ev domain.StatEvent)
}

type nopNotifier struct{}

func (nopNotifier) SendTo(string, api.ServerEvent) {}
func (nopNotifier) Broadcast(api.ServerEvent)      {}

type nopObserver struct{}

func (nopObserver) Publish(domain.StatEvent) {}
