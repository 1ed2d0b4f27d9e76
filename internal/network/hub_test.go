package network

import (
	"os"
	"testing"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcastIsPartyScoped(t *testing.T) {
	b := NewBroadcaster()
	a1 := b.Register("party-a", "p1")
	a2 := b.Register("party-a", "p2")
	other := b.Register("party-b", "p1")

	b.Party("party-a").Broadcast(api.ServerEvent{Type: "PING"})

	for name, ch := range map[string]chan api.ServerEvent{"a1": a1, "a2": a2} {
		select {
		case msg := <-ch:
			if msg.Type != "PING" {
				t.Errorf("%s got %s", name, msg.Type)
			}
		default:
			t.Errorf("%s did not receive the broadcast", name)
		}
	}
	select {
	case msg := <-other:
		t.Errorf("subscriber of another party received %s", msg.Type)
	default:
	}
}

func TestSendToSingleSubscriber(t *testing.T) {
	b := NewBroadcaster()
	p1 := b.Register("party", "p1")
	p2 := b.Register("party", "p2")

	b.Party("party").SendTo("p2", api.ServerEvent{Type: "PRIVATE"})

	if len(p1) != 0 {
		t.Error("p1 should not receive a private message")
	}
	if len(p2) != 1 {
		t.Error("p2 should receive the private message")
	}
}

func TestReRegisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("party", "p1")
	fresh := b.Register("party", "p1")

	if _, ok := <-old; ok {
		t.Error("old channel should be closed")
	}
	// Старый readPump не должен отписать новое подключение
	if b.Unregister("party", "p1", old) {
		t.Error("stale channel must not unregister the fresh subscriber")
	}
	if !b.HasSubscriber("party", "p1") {
		t.Error("fresh subscriber lost")
	}
	if !b.Unregister("party", "p1", fresh) {
		t.Error("fresh channel should unregister")
	}
	if b.SubscriberCount("party") != 0 {
		t.Errorf("SubscriberCount = %d, want 0", b.SubscriberCount("party"))
	}
}

func TestFullChannelDropsInsteadOfBlocking(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("party", "p1")
	for i := 0; i < subscriberBuffer+10; i++ {
		b.SendTo("party", "p1", api.ServerEvent{Type: "SPAM"})
	}
	if len(ch) != subscriberBuffer {
		t.Errorf("buffered = %d, want %d", len(ch), subscriberBuffer)
	}
}

func TestCloseParty(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("party", "p1")
	b.CloseParty("party")

	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}
	if b.HasSubscriber("party", "p1") {
		t.Error("subscriber should be gone")
	}
	// Рассылка в закрытую партию ничего не делает
	b.Broadcast("party", api.ServerEvent{Type: "LATE"})
}
