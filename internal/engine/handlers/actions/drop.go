package actions

import (
	"fmt"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine/handlers"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

// HandleDrop обрабатывает DROP_ITEM - выбор предмета при переполненном инвентаре
func HandleDrop(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	item := domain.ParseItem(p.Item)
	if item == domain.ItemNone {
		return handlers.Result{}, fmt.Errorf("unknown item %q", p.Item)
	}
	if !ctx.Party.DropItem(ctx.PlayerID, item) {
		return handlers.Refused("Нельзя выбросить " + item.String()), nil
	}
	return handlers.EmptyResult(), nil
}
