package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/config"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

func newTestService(t *testing.T) *GameService {
	t.Helper()
	svc := NewService(config.Config{Seed: 7, Game: config.Default()}, nil, nil)
	t.Cleanup(svc.Shutdown)
	return svc
}

func validSetup(t *testing.T) api.PartySetup {
	return api.PartySetup{
		Mode:    "classic",
		Map:     mapFromRows(t, openMap...),
		Players: []api.PlayerSetup{human("a", 0, 0, 6), human("b", 5, 1, 4)},
	}
}

// waitFor reads ch until an event of type evt arrives.
func waitFor(t *testing.T, ch <-chan api.ServerEvent, evt string) api.ServerEvent {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				t.Fatalf("channel closed before %s", evt)
			}
			if msg.Type == evt {
				return msg
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", evt)
		}
	}
}

func TestCreatePartyValidates(t *testing.T) {
	svc := newTestService(t)

	bad := validSetup(t)
	bad.Players = bad.Players[:1]
	if _, err := svc.CreateParty(bad); err == nil {
		t.Error("one player should be rejected")
	}

	wall := validSetup(t)
	wall.Map = mapFromRows(t, "#.....", "......")
	if _, err := svc.CreateParty(wall); err == nil {
		t.Error("start on a wall should be rejected")
	}

	twins := validSetup(t)
	for i := range twins.Players {
		twins.Players[i].ID = ""
		twins.Players[i].Name = "Bob"
	}
	if _, err := svc.CreateParty(twins); !errors.Is(err, api.ErrDuplicateName) {
		t.Errorf("same name twice should be rejected, got %v", err)
	}

	sess, err := svc.CreateParty(validSetup(t))
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}
	if svc.Party(sess.ID) != sess {
		t.Error("party should be registered")
	}
	list := svc.Parties()
	if len(list) != 1 || list[0].ID != sess.ID || list[0].Players != 2 {
		t.Errorf("unexpected listing %+v", list)
	}
}

func TestSubmitRouting(t *testing.T) {
	svc := newTestService(t)
	sess, err := svc.CreateParty(validSetup(t))
	if err != nil {
		t.Fatal(err)
	}
	ch := svc.Hub.Register(sess.ID, "a")

	if svc.Submit(sess.ID, "a", api.ClientCommand{Action: "DANCE"}) {
		t.Error("unknown action should be refused")
	}
	if svc.Submit(sess.ID, "zed", api.ClientCommand{Action: "SYNC"}) {
		t.Error("stranger should be refused")
	}
	if svc.Submit("nope", "a", api.ClientCommand{Action: "SYNC"}) {
		t.Error("unknown party should be refused")
	}
	if !svc.Submit(sess.ID, "a", api.ClientCommand{Action: "SYNC"}) {
		t.Fatal("SYNC should be queued")
	}

	msg := waitFor(t, ch, "SESSION_STATE")
	st, ok := msg.Payload.(api.SessionState)
	if !ok || st.ActivePlayerID != "a" {
		t.Errorf("unexpected state payload %#v", msg.Payload)
	}
}

func TestDisconnectEndsTwoPlayerParty(t *testing.T) {
	svc := newTestService(t)
	sess, err := svc.CreateParty(validSetup(t))
	if err != nil {
		t.Fatal(err)
	}
	ch := svc.Hub.Register(sess.ID, "a")

	svc.Disconnect(sess.ID, "b")

	end := waitFor(t, ch, "GAME_END")
	if end.Payload.(api.GameEndEvent).WinnerID != "a" {
		t.Errorf("a should win, got %+v", end.Payload)
	}
	select {
	case <-sess.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("finished party should be closed")
	}
	if svc.Party(sess.ID) != nil {
		t.Error("finished party should be removed")
	}
}

func TestRemovePartyClosesSession(t *testing.T) {
	svc := newTestService(t)
	sess, err := svc.CreateParty(validSetup(t))
	if err != nil {
		t.Fatal(err)
	}
	ch := svc.Hub.Register(sess.ID, "b")

	svc.RemoveParty(sess.ID)

	select {
	case <-sess.Done():
	case <-time.After(time.Second):
		t.Fatal("session loop should stop")
	}
	for range ch {
	}
	if svc.Hub.HasSubscriber(sess.ID, "b") {
		t.Error("subscribers should be dropped with the party")
	}
	if svc.Submit(sess.ID, "b", api.ClientCommand{Action: "SYNC"}) {
		t.Error("removed party accepts nothing")
	}
	if len(svc.Parties()) != 0 {
		t.Error("listing should be empty")
	}
}
