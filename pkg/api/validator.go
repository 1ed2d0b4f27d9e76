package api

import (
	"errors"
	"fmt"
)

// ErrDuplicateName: имена игроков в партии уникальны
var ErrDuplicateName = errors.New("duplicate player name")

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p PositionPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("position cannot be negative")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.Item == "" {
		return errors.New("item is required")
	}
	return nil
}

func (s PartySetup) Validate() error {
	if len(s.Map) == 0 {
		return errors.New("map is required")
	}
	if len(s.Players) < 2 {
		return errors.New("at least two players are required")
	}
	humans := 0
	names := make(map[string]bool, len(s.Players))
	for i, p := range s.Players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("player %d: %w", i, err)
		}
		if names[p.Name] {
			return fmt.Errorf("player %d: %w: %q", i, ErrDuplicateName, p.Name)
		}
		names[p.Name] = true
		if !p.IsVirtual {
			humans++
		}
	}
	if humans == 0 {
		return errors.New("at least one human player is required")
	}
	return nil
}

func (p PlayerSetup) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Speed <= 0 || p.Life <= 0 {
		return errors.New("speed and life must be positive")
	}
	if !validDie(p.AttackDie) || !validDie(p.DefenseDie) {
		return errors.New("dice must be 4 or 6")
	}
	if p.Profile != "" && p.Profile != "aggressive" && p.Profile != "defensive" {
		return fmt.Errorf("unknown bot profile %q", p.Profile)
	}
	return nil
}

func validDie(faces int) bool {
	return faces == 4 || faces == 6
}
