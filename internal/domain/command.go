package domain

import "encoding/json"

// InternalCommand - команда игрока, уже привязанная к партии.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action   ActionType      // Число! Быстро и безопасно.
	PlayerID string          // Кто отправил (берется из соединения, не из payload)
	Payload  json.RawMessage // Сырые данные (парсятся хендлером)
}
