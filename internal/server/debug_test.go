package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

func TestDebugEndpoints(t *testing.T) {
	_, ts := newTestServer(t)
	created := createParty(t, ts)

	get := func(path string, out any) int {
		t.Helper()
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if out != nil && resp.StatusCode == http.StatusOK {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				t.Fatalf("%s: %v", path, err)
			}
		}
		return resp.StatusCode
	}

	var states []api.SessionState
	if code := get("/debug/parties", &states); code != http.StatusOK || len(states) != 1 {
		t.Errorf("parties: status %d, %d states", code, len(states))
	}

	var one api.SessionState
	if code := get("/debug/parties?id="+created.PartyID, &one); code != http.StatusOK || one.ActivePlayerID != "a" {
		t.Errorf("party: status %d active %q", code, one.ActivePlayerID)
	}
	if code := get("/debug/parties?id=nope", nil); code != http.StatusNotFound {
		t.Errorf("missing party: status %d", code)
	}

	var queue []map[string]any
	if code := get("/debug/queue?id="+created.PartyID, &queue); code != http.StatusOK || len(queue) != 2 {
		t.Errorf("queue: status %d, %d entries", code, len(queue))
	}

	var st struct {
		Dropped int64 `json:"dropped"`
	}
	if code := get("/debug/stats", &st); code != http.StatusOK {
		t.Errorf("stats: status %d", code)
	}
}
