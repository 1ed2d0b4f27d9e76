package admin

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers"
)

// HandleToggleDebug включает или выключает режим отладки партии.
// В режиме отладки нет скольжения на льду, атакующий бросает максимум, защитник минимум.
// Доступно только организатору.
func HandleToggleDebug(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Party.ToggleDebug(ctx.PlayerID) {
		return handlers.Refused("Только организатор может включить отладку."), nil
	}
	return handlers.Result{Msg: "⚡ Debug mode toggled", MsgType: "INFO"}, nil
}
