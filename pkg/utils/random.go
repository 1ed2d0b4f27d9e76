package utils

import (
	"github.com/google/uuid"
)

// GenerateID создает уникальный ID для партий и игроков
func GenerateID() string {
	return uuid.NewString()
}

// ShortID возвращает первые 8 символов ID, удобно для логов и имен ботов
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
