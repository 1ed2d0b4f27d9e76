package server

import (
	"encoding/json"
	"net/http"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/stats"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

// DebugHandler предоставляет доступ к внутреннему состоянию партий
type DebugHandler struct {
	Service *engine.GameService
	Stats   *stats.Recorder
}

func NewDebugHandler(s *engine.GameService, recorder *stats.Recorder) *DebugHandler {
	return &DebugHandler{Service: s, Stats: recorder}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/parties", h.handleParties)
	mux.HandleFunc("/debug/queue", h.handleTurnQueue)
	mux.HandleFunc("/debug/stats", h.handleStats)
}

// /debug/parties - полные снимки всех партий, /debug/parties?id=... - одной
func (h *DebugHandler) handleParties(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		sess := h.Service.Party(id)
		if sess == nil {
			http.Error(w, "Party not found", http.StatusNotFound)
			return
		}
		state, ok := sess.State()
		if !ok {
			http.Error(w, "Party is closing", http.StatusGone)
			return
		}
		writeJSON(w, state)
		return
	}

	states := make([]api.SessionState, 0)
	for _, sum := range h.Service.Parties() {
		sess := h.Service.Party(sum.ID)
		if sess == nil {
			continue
		}
		if state, ok := sess.State(); ok {
			states = append(states, state)
		}
	}
	writeJSON(w, states)
}

// /debug/queue?id=... - очередь ходов партии.
// TurnQueue - куча, порядок в слайсе не совпадает с порядком ходов.
func (h *DebugHandler) handleTurnQueue(w http.ResponseWriter, r *http.Request) {
	sess := h.Service.Party(r.URL.Query().Get("id"))
	if sess == nil {
		http.Error(w, "Party not found", http.StatusNotFound)
		return
	}
	dump, ok := sess.TurnOrder()
	if !ok {
		http.Error(w, "Party is closing", http.StatusGone)
		return
	}
	writeJSON(w, dump)
}

// /debug/stats - агрегированная статистика партий
func (h *DebugHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if h.Stats == nil {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, struct {
		Parties []stats.PartyStats `json:"parties"`
		Dropped int64              `json:"dropped"`
	}{
		Parties: h.Stats.Snapshot(),
		Dropped: h.Stats.Dropped(),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	writeJSONStatus(w, http.StatusOK, data)
}

func writeJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Если data == nil, возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
