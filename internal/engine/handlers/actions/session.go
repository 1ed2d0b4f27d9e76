package actions

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers"
)

// HandleGiveUp - игрок покидает партию, остается в списке как сдавшийся
func HandleGiveUp(ctx handlers.Context) (handlers.Result, error) {
	ctx.Party.GiveUp(ctx.PlayerID)
	return handlers.Result{Msg: "Игрок сдался.", MsgType: "INFO"}, nil
}

func HandleEndTurn(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Party.EndTurn(ctx.PlayerID) {
		return handlers.Refused("Сейчас нельзя закончить ход."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleSync отправляет игроку полный снимок партии
func HandleSync(ctx handlers.Context) (handlers.Result, error) {
	ctx.Party.Sync(ctx.PlayerID)
	return handlers.EmptyResult(), nil
}
