package stats

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

const defaultBuffer = 1024

// PlayerStats - счетчики одного игрока внутри партии
type PlayerStats struct {
	TilesVisited  int  `json:"tiles_visited"`
	UniqueTiles   int  `json:"unique_tiles"`
	DoorsToggled  int  `json:"doors_toggled"`
	FightsStarted int  `json:"fights_started"`
	FightsWon     int  `json:"fights_won"`
	Escapes       int  `json:"escapes"`
	FlagsPicked   int  `json:"flags_picked"`
	FlagsLost     int  `json:"flags_lost"`
	GaveUp        bool `json:"gave_up"`
}

// PartyStats is the aggregated view of one party.
type PartyStats struct {
	PartyID     string                  `json:"party_id"`
	Rounds      int                     `json:"rounds"`
	UniqueTiles int                     `json:"unique_tiles"`
	Fights      int                     `json:"fights"`
	WinnerID    string                  `json:"winner_id,omitempty"`
	Players     map[string]*PlayerStats `json:"players"`
}

type partyAcc struct {
	stats   PartyStats
	tiles   mapset.Set[domain.Position]
	visited map[string]mapset.Set[domain.Position]
}

// Recorder собирает статистику партий. Publish никогда не блокирует игру:
// при переполненном буфере событие теряется.
type Recorder struct {
	events  chan domain.StatEvent
	dropped atomic.Int64

	mu      sync.RWMutex
	parties map[string]*partyAcc

	log *logrus.Entry
}

func NewRecorder(buffer int) *Recorder {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Recorder{
		events:  make(chan domain.StatEvent, buffer),
		parties: make(map[string]*partyAcc),
		log:     logger.Log.WithField("component", "stats"),
	}
}

// Publish implements the party observer.
func (r *Recorder) Publish(ev domain.StatEvent) {
	select {
	case r.events <- ev:
	default:
		r.dropped.Add(1)
	}
}

// Run drains the event buffer until ctx is done.
func (r *Recorder) Run(ctx context.Context) {
	r.log.Info("Stats recorder started")
	for {
		select {
		case ev := <-r.events:
			r.apply(ev)
		case <-ctx.Done():
			r.log.WithField("dropped", r.dropped.Load()).Info("Stats recorder stopped")
			return
		}
	}
}

// Dropped returns the number of events lost to a full buffer.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

func (r *Recorder) apply(ev domain.StatEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.parties[ev.PartyID]
	if !ok {
		acc = &partyAcc{
			stats:   PartyStats{PartyID: ev.PartyID, Players: make(map[string]*PlayerStats)},
			tiles:   mapset.New[domain.Position](),
			visited: make(map[string]mapset.Set[domain.Position]),
		}
		r.parties[ev.PartyID] = acc
	}
	if ev.Round > acc.stats.Rounds {
		acc.stats.Rounds = ev.Round
	}

	ps, ok := acc.stats.Players[ev.PlayerID]
	if !ok {
		ps = &PlayerStats{}
		acc.stats.Players[ev.PlayerID] = ps
	}

	switch ev.Kind {
	case domain.StatTileVisited:
		ps.TilesVisited++
		seen, ok := acc.visited[ev.PlayerID]
		if !ok {
			seen = mapset.New[domain.Position]()
			acc.visited[ev.PlayerID] = seen
		}
		seen.Put(ev.Pos)
		acc.tiles.Put(ev.Pos)
		ps.UniqueTiles = seen.Size()
		acc.stats.UniqueTiles = acc.tiles.Size()
	case domain.StatDoorToggled:
		ps.DoorsToggled++
	case domain.StatFightStarted:
		ps.FightsStarted++
		acc.stats.Fights++
	case domain.StatFightWon:
		ps.FightsWon++
	case domain.StatEscaped:
		ps.Escapes++
	case domain.StatFlagPicked:
		ps.FlagsPicked++
	case domain.StatFlagLost:
		ps.FlagsLost++
	case domain.StatGaveUp:
		ps.GaveUp = true
	case domain.StatGameEnded:
		acc.stats.WinnerID = ev.PlayerID
	}
}

// Snapshot returns a copy of the statistics of every party seen so far.
func (r *Recorder) Snapshot() []PartyStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PartyStats, 0, len(r.parties))
	for _, acc := range r.parties {
		cp := acc.stats
		cp.Players = make(map[string]*PlayerStats, len(acc.stats.Players))
		for id, ps := range acc.stats.Players {
			psCopy := *ps
			cp.Players[id] = &psCopy
		}
		out = append(out, cp)
	}
	return out
}

// Party returns the statistics of one party.
func (r *Recorder) Party(id string) (PartyStats, bool) {
	for _, ps := range r.Snapshot() {
		if ps.PartyID == id {
			return ps, true
		}
	}
	return PartyStats{}, false
}
