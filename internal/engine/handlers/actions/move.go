package actions

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	dest := domain.Position{X: p.X, Y: p.Y}
	if !ctx.Party.Move(ctx.PlayerID, dest) {
		return handlers.Refused("Путь недоступен: " + dest.String()), nil
	}
	return handlers.EmptyResult(), nil
}
