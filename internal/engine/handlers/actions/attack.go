package actions

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers"
)

func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Party.Attack(ctx.PlayerID) {
		return handlers.Refused("Сейчас не ваша атака."), nil
	}
	return handlers.EmptyResult(), nil
}

func HandleEscape(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Party.Escape(ctx.PlayerID) {
		return handlers.Refused("Сейчас нельзя сбежать."), nil
	}
	return handlers.EmptyResult(), nil
}
