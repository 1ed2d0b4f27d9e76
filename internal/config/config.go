package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска сервера
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Seed - мастер-зерно. Каждая партия получает Seed + порядковый номер.
	// 0 означает случайное зерно от текущего времени.
	Seed int64 `env:"PARTY_SEED" envDefault:"0"`

	Game Game `envPrefix:"PARTY_"`
}

// Game holds the rule timings and probabilities shared by every party.
type Game struct {
	// TimeUnit is the length of one timer tick.
	TimeUnit time.Duration `env:"TIME_UNIT" envDefault:"1s"`

	TurnUnits          int `env:"TURN_UNITS"           envDefault:"30"`
	FightUnits         int `env:"FIGHT_UNITS"          envDefault:"5"`
	NoEscapeFightUnits int `env:"NO_ESCAPE_FIGHT_UNITS" envDefault:"3"`
	BotFightUnits      int `env:"BOT_FIGHT_UNITS"      envDefault:"2"`

	StepDelay time.Duration `env:"STEP_DELAY" envDefault:"150ms"`
	SlipDelay time.Duration `env:"SLIP_DELAY" envDefault:"1s"`
	BotDelay  time.Duration `env:"BOT_DELAY"  envDefault:"1s"`

	SlipChance   float64 `env:"SLIP_CHANCE"   envDefault:"0.1"`
	EscapeChance float64 `env:"ESCAPE_CHANCE" envDefault:"0.3"`

	WinsToVictory   int `env:"WINS_TO_VICTORY"   envDefault:"3"`
	BotMaxDecisions int `env:"BOT_MAX_DECISIONS" envDefault:"8"`

	// SlipConsumesAction: поскользнувшийся игрок теряет свое действие за ход
	SlipConsumesAction bool `env:"SLIP_CONSUMES_ACTION" envDefault:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Game.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() Game {
	return Game{
		TimeUnit:           time.Second,
		TurnUnits:          30,
		FightUnits:         5,
		NoEscapeFightUnits: 3,
		BotFightUnits:      2,
		StepDelay:          150 * time.Millisecond,
		SlipDelay:          time.Second,
		BotDelay:           time.Second,
		SlipChance:         0.1,
		EscapeChance:       0.3,
		WinsToVictory:      3,
		BotMaxDecisions:    8,
	}
}

// Validate rejects values the rules cannot run with.
func (g Game) Validate() error {
	if g.TimeUnit <= 0 {
		return fmt.Errorf("time unit must be positive, got %s", g.TimeUnit)
	}
	if g.TurnUnits <= 0 || g.FightUnits <= 0 || g.NoEscapeFightUnits <= 0 || g.BotFightUnits <= 0 {
		return fmt.Errorf("timer units must be positive")
	}
	if g.SlipChance < 0 || g.SlipChance > 1 {
		return fmt.Errorf("slip chance out of range: %v", g.SlipChance)
	}
	if g.EscapeChance < 0 || g.EscapeChance > 1 {
		return fmt.Errorf("escape chance out of range: %v", g.EscapeChance)
	}
	if g.WinsToVictory <= 0 {
		return fmt.Errorf("wins to victory must be positive, got %d", g.WinsToVictory)
	}
	return nil
}
