package handlers

import (
	"encoding/json"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
)

// Party описывает операции партии, доступные хендлерам.
// Session неявно реализует этот интерфейс.
type Party interface {
	Move(playerID string, dest domain.Position) bool
	ExecuteAction(playerID string, target domain.Position) bool
	Attack(playerID string) bool
	Escape(playerID string) bool
	GiveUp(playerID string)
	ToggleDebug(playerID string) bool
	DropItem(playerID string, item domain.ItemType) bool
	EndTurn(playerID string) bool
	Sync(playerID string)
}

// Context передает хендлеру партию и того, кто прислал команду.
type Context struct {
	Party    Party
	PlayerID string
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // INFO, REFUSED
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Refused builds the result of a command the party ignored.
func Refused(msg string) Result {
	return Result{Msg: msg, MsgType: "REFUSED"}
}
