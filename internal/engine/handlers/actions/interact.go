package actions

import (
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

// HandleInteract обрабатывает ACTION: бой с соседом или дверь
func HandleInteract(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	target := domain.Position{X: p.X, Y: p.Y}
	if !ctx.Party.ExecuteAction(ctx.PlayerID, target) {
		return handlers.Refused("Действие невозможно: " + target.String()), nil
	}
	return handlers.EmptyResult(), nil
}
