package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerEvent это корневой объект, который сервер отправляет клиенту.
// Type - имя события в UPPER_SNAKE (PLAYER_MOVING, FIGHT_INITIATED, ...).
type ServerEvent struct {
	Type    string `json:"type"`
	PartyID string `json:"partyId"`

	// Payload зависит от Type. Может отсутствовать.
	Payload any `json:"payload,omitempty"`
}

// Point is a grid coordinate on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PlayerView это DTO игрока для клиента.
type PlayerView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Pos      Point  `json:"pos"`
	StartPos Point  `json:"startPos"`

	Speed      int `json:"speed"`
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	AttackDie  int `json:"attackDie"`
	DefenseDie int `json:"defenseDie"`

	Life        int `json:"life"`
	MaxLife     int `json:"maxLife"`
	EscapesLeft int `json:"escapesLeft"`
	Wins        int `json:"wins"`

	AvailableMoves   int `json:"availableMoves"`
	RemainingActions int `json:"remainingActions"`

	Inventory []string `json:"inventory"`

	HasFlag         bool   `json:"hasFlag"`
	IsGiveUp        bool   `json:"isGiveUp"`
	IsCurrentPlayer bool   `json:"isCurrentPlayer"`
	IsOrganizer     bool   `json:"isOrganizer"`
	IsVirtual       bool   `json:"isVirtual"`
	Profile         string `json:"profile,omitempty"`
}

// FighterView - участник боя
type FighterView struct {
	PlayerID    string `json:"playerId"`
	Name        string `json:"name"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
	Life        int    `json:"life"`
	EscapesLeft int    `json:"escapesLeft"`
}

// FightView describes a running fight inside a session snapshot.
type FightView struct {
	Attacker    FighterView `json:"attacker"`
	Defender    FighterView `json:"defender"`
	InitiatorID string      `json:"initiatorId"`
}

// SessionState - полный снимок партии (ответ на SYNC и для /debug/parties)
type SessionState struct {
	PartyID        string       `json:"partyId"`
	Mode           string       `json:"mode"`
	Round          int          `json:"round"`
	ActivePlayerID string       `json:"activePlayerId,omitempty"`
	Debug          bool         `json:"debug"`
	IsChoosingItem bool         `json:"isChoosingItem"`
	Ended          bool         `json:"ended"`
	Map            [][]int      `json:"map"`
	Players        []PlayerView `json:"players"`
	Fight          *FightView   `json:"fight,omitempty"`
}

// PartySummary is one line of the party listing.
type PartySummary struct {
	ID      string `json:"id"`
	Mode    string `json:"mode"`
	Round   int    `json:"round"`
	Players int    `json:"players"`
	Humans  int    `json:"humans"`
	Ended   bool   `json:"ended"`
}

// --- Payloads событий ---

type PlayerPayload struct {
	Player PlayerView `json:"player"`
}

type RosterPayload struct {
	Players []PlayerView `json:"players"`
}

type PositionEvent struct {
	Pos Point `json:"pos"`
}

type ItemEvent struct {
	Pos  Point  `json:"pos"`
	Item string `json:"item"`
}

type InventoryEvent struct {
	PlayerID  string   `json:"playerId"`
	Inventory []string `json:"inventory"`
}

type DoorEvent struct {
	Pos  Point `json:"pos"`
	Open bool  `json:"open"`
}

type DiceRollEvent struct {
	AttackerID  string `json:"attackerId"`
	AttackRoll  int    `json:"attackRoll"`
	DefenderID  string `json:"defenderId"`
	DefenseRoll int    `json:"defenseRoll"`
}

type LifeEvent struct {
	PlayerID string `json:"playerId"`
	Life     int    `json:"life"`
}

type SwapLivesEvent struct {
	AttackerID   string `json:"attackerId"`
	AttackerLife int    `json:"attackerLife"`
	DefenderID   string `json:"defenderId"`
	DefenderLife int    `json:"defenderLife"`
}

type EscapeEvent struct {
	PlayerID    string `json:"playerId"`
	EscapesLeft int    `json:"escapesLeft"`
}

type PlayerIDEvent struct {
	PlayerID string `json:"playerId"`
}

type FightEndEvent struct {
	WinnerID string `json:"winnerId,omitempty"`
	LoserID  string `json:"loserId,omitempty"`
	Escaped  bool   `json:"escaped"`
}

type TimeEvent struct {
	Remaining int `json:"remaining"`
}

type TurnEvent struct {
	PlayerID string `json:"playerId"`
	Round    int    `json:"round"`
}

type GameEndEvent struct {
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
}

type DebugEvent struct {
	Enabled bool `json:"enabled"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
// Игрок определяется соединением, поэтому токена нет.
type ClientCommand struct {
	// Action название действия: MOVE, ACTION, ATTACK, ESCAPE, GIVE_UP, TOGGLE_DEBUG, DROP_ITEM, END_TURN, SYNC.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// PositionPayload используется для MOVE (куда идти) и ACTION (с какой клеткой взаимодействовать).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ItemPayload используется для DROP_ITEM.
type ItemPayload struct {
	Item string `json:"item"`
}

// --- Создание партии ---

// PartySetup is the document a lobby posts to start a session.
type PartySetup struct {
	Mode    string        `json:"mode"`
	Map     [][]int       `json:"map"`
	Players []PlayerSetup `json:"players"`
	Rules   RulesSetup    `json:"rules"`
}

type RulesSetup struct {
	DoubleIceBreak bool `json:"doubleIceBreak"`
	LoserLosesWin  bool `json:"loserLosesWin"`
}

type PlayerSetup struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	StartPos    Point  `json:"startPos"`
	Speed       int    `json:"speed"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
	AttackDie   int    `json:"attackDie"`
	DefenseDie  int    `json:"defenseDie"`
	Life        int    `json:"life"`
	IsOrganizer bool   `json:"isOrganizer"`
	IsVirtual   bool   `json:"isVirtual"`
	Profile     string `json:"profile,omitempty"`
}

// PartyCreated is the reply to a successful setup.
type PartyCreated struct {
	PartyID string            `json:"partyId"`
	Players map[string]string `json:"players"` // name -> id
}
