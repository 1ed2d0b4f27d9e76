package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"

	"github.com/gorilla/websocket"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/stats"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/version"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
)

const maxSetupSize = 1 << 20

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Server struct {
	Engine *engine.GameService
	Stats  *stats.Recorder
	Port   string

	srv *http.Server
}

func New(engine *engine.GameService, recorder *stats.Recorder, port string) *Server {
	return &Server{
		Engine: engine,
		Stats:  recorder,
		Port:   port,
	}
}

// Routes собирает все HTTP маршруты
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/parties", enableCORS(s.handleParties))
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	NewDebugHandler(s.Engine, s.Stats).RegisterRoutes(mux)

	// pprof регистрируется в DefaultServeMux
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	return mux
}

// Run запускает HTTP сервер и блокируется до Shutdown
func (s *Server) Run() error {
	s.srv = &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Log.Infof("⚔️  Party server running on :%s", s.Port)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// /parties: POST создает партию, GET возвращает список
func (s *Server) handleParties(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.Engine.Parties())
	case http.MethodPost:
		s.createParty(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) createParty(w http.ResponseWriter, r *http.Request) {
	var setup api.PartySetup
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSetupSize))
	if err := dec.Decode(&setup); err != nil {
		http.Error(w, "invalid setup document: "+err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.Engine.CreateParty(setup)
	if err != nil {
		logger.Log.WithError(err).Warn("Party setup rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.PartyCreated{PartyID: sess.ID, Players: sess.Roster()})
}

// handleWS подключает игрока к его партии: /ws?party=...&player=...&codec=json|msgpack
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	partyID, playerID := q.Get("party"), q.Get("player")

	c, err := codecFor(q.Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess := s.Engine.Party(partyID)
	if sess == nil {
		http.Error(w, "party not found", http.StatusNotFound)
		return
	}
	if !sess.HasPlayer(playerID) {
		http.Error(w, "player is not part of this party", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Engine, conn, partyID, playerID, c)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, version.Info())
}
