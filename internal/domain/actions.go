package domain

import "strings"

// ActionType - Внутренний числовой идентификатор входящей команды
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionSync
	ActionMove
	ActionInteract
	ActionAttack
	ActionEscape
	ActionGiveUp
	ActionToggleDebug
	ActionDropItem
	ActionEndTurn
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"SYNC":         ActionSync,
	"MOVE":         ActionMove,
	"ACTION":       ActionInteract,
	"ATTACK":       ActionAttack,
	"ESCAPE":       ActionEscape,
	"GIVE_UP":      ActionGiveUp,
	"TOGGLE_DEBUG": ActionToggleDebug,
	"DROP_ITEM":    ActionDropItem,
	"END_TURN":     ActionEndTurn,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionSync:        "SYNC",
	ActionMove:        "MOVE",
	ActionInteract:    "ACTION",
	ActionAttack:      "ATTACK",
	ActionEscape:      "ESCAPE",
	ActionGiveUp:      "GIVE_UP",
	ActionToggleDebug: "TOGGLE_DEBUG",
	ActionDropItem:    "DROP_ITEM",
	ActionEndTurn:     "END_TURN",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
