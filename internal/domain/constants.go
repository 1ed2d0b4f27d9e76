package domain

// Стоимость перемещения по тайлам
const (
	CostImpassable = -1
	CostIce        = 0
	CostBase       = 1
	CostWater      = 2
)

// Ограничения игрока
const (
	MaxInventorySize  = 6
	MaxEscapeAttempts = 2
	ActionsPerTurn    = 1
)

// Вероятности (переопределяются конфигом)
const (
	DefaultSlipChance   = 0.1
	DefaultEscapeChance = 0.3
)

// Бонусы предметов
const (
	SwordAttackBonus   = 2
	ShieldDefenseBonus = 2

	// LowLifeThreshold is the life value at or below which potion and amulet react.
	LowLifeThreshold = 1
	PotionLifeBonus  = 2
)

// GameMode selects the victory condition of a party.
type GameMode string

const (
	ModeClassic        GameMode = "classic"
	ModeCaptureTheFlag GameMode = "ctf"
)

// ParseGameMode falls back to classic for anything unknown.
func ParseGameMode(s string) GameMode {
	if GameMode(s) == ModeCaptureTheFlag {
		return ModeCaptureTheFlag
	}
	return ModeClassic
}

// HouseRules are the optional rules an organizer enables when creating a party.
type HouseRules struct {
	DoubleIceBreak bool `json:"doubleIceBreak"`
	LoserLosesWin  bool `json:"loserLosesWin"`
}
