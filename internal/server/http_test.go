package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/config"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/stats"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	rec := stats.NewRecorder(0)
	svc := engine.NewService(config.Config{Seed: 1, Game: config.Default()}, nil, rec)
	s := New(svc, rec, "0")
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(func() {
		ts.Close()
		svc.Shutdown()
	})
	return s, ts
}

func setupDoc() api.PartySetup {
	row := func() []int {
		out := make([]int, 4)
		for i := range out {
			out[i] = domain.EncodeTile(domain.TileBase, domain.ItemNone)
		}
		return out
	}
	player := func(id string, x, speed int) api.PlayerSetup {
		return api.PlayerSetup{
			ID: id, Name: "name-" + id, StartPos: api.Point{X: x},
			Speed: speed, Attack: 4, Defense: 4, AttackDie: 6, DefenseDie: 4, Life: 4,
		}
	}
	return api.PartySetup{
		Mode:    "classic",
		Map:     [][]int{row(), row()},
		Players: []api.PlayerSetup{player("a", 0, 6), player("b", 3, 4)},
	}
}

func createParty(t *testing.T, ts *httptest.Server) api.PartyCreated {
	t.Helper()
	body, _ := json.Marshal(setupDoc())
	resp, err := http.Post(ts.URL+"/parties", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var created api.PartyCreated
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	return created
}

func TestCreateAndListParties(t *testing.T) {
	_, ts := newTestServer(t)

	created := createParty(t, ts)
	if created.PartyID == "" || created.Players["name-a"] != "a" {
		t.Fatalf("unexpected reply %+v", created)
	}

	resp, err := http.Get(ts.URL + "/parties")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var list []api.PartySummary
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != created.PartyID {
		t.Errorf("unexpected listing %+v", list)
	}
}

func TestCreatePartyRejectsBadDocument(t *testing.T) {
	_, ts := newTestServer(t)

	for _, body := range []string{"{", `{"mode":"classic","map":[[0]],"players":[]}`} {
		resp, err := http.Post(ts.URL+"/parties", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %q: status %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestWebSocketAdmission(t *testing.T) {
	_, ts := newTestServer(t)
	created := createParty(t, ts)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"unknown party", "?party=nope&player=a", http.StatusNotFound},
		{"stranger", "?party=" + created.PartyID + "&player=zed", http.StatusForbidden},
		{"bad codec", "?party=" + created.PartyID + "&player=a&codec=xml", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/ws" + tt.query)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestWebSocketReceivesStateOnConnect(t *testing.T) {
	_, ts := newTestServer(t)
	created := createParty(t, ts)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?party=" + created.PartyID + "&player=a"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for {
		conn.SetReadDeadline(deadline)
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("no SESSION_STATE received: %v", err)
		}
		var msg struct {
			Type    string           `json:"type"`
			Payload api.SessionState `json:"payload"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type != "SESSION_STATE" {
			continue
		}
		if msg.Payload.ActivePlayerID != "a" {
			t.Errorf("active player = %q, want a", msg.Payload.ActivePlayerID)
		}
		return
	}
}

func TestHealthAndVersion(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/version")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var info map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}
	if _, ok := info["version"]; !ok {
		t.Errorf("version missing from %v", info)
	}
}
