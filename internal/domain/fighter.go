package domain

// Fighter is the combat-scoped projection of a Player. It lives only while a fight lasts;
// every life or escape change is written back to the underlying player.
type Fighter struct {
	PID        string
	Name       string
	Attack     int
	Defense    int
	AttackDie  Dice
	DefenseDie Dice
	Life       int
	MaxLife    int
	Speed      int

	EscapesLeft int
	IsVirtual   bool
	Profile     BotProfile

	UsedSecondChance bool
	UsedLifeSwap     bool

	player *Player
}

// NewFighter projects p into a fight. Escape attempts are refilled for every fight.
func NewFighter(p *Player) *Fighter {
	p.EscapesLeft = MaxEscapeAttempts
	return &Fighter{
		PID:         p.ID,
		Name:        p.Name,
		Attack:      p.EffectiveAttack(),
		Defense:     p.EffectiveDefense(),
		AttackDie:   p.AttackDie,
		DefenseDie:  p.DefenseDie,
		Life:        p.Life,
		MaxLife:     p.MaxLife,
		Speed:       p.Speed,
		EscapesLeft: p.EscapesLeft,
		IsVirtual:   p.IsVirtual,
		Profile:     p.Profile,
		player:      p,
	}
}

// Player returns the roster entry behind the fighter.
func (f *Fighter) Player() *Player {
	return f.player
}

func (f *Fighter) HasItem(item ItemType) bool {
	return f.player != nil && f.player.HasItem(item)
}

// TakeDamage removes one life point, never below zero. Returns true if the fighter is down.
func (f *Fighter) TakeDamage() bool {
	if f.Life > 0 {
		f.Life--
	}
	f.sync()
	return f.Life == 0
}

// AddLife heals without a cap; the potion may push above the starting life.
func (f *Fighter) AddLife(amount int) {
	f.Life += amount
	f.sync()
}

// SpendEscape consumes one attempt if any is left.
func (f *Fighter) SpendEscape() {
	if f.EscapesLeft > 0 {
		f.EscapesLeft--
	}
	f.sync()
}

// HasTakenDamage reports whether the fighter is below its max life.
func (f *Fighter) HasTakenDamage() bool {
	return f.Life < f.MaxLife
}

// SwapLives exchanges life totals between two fighters.
func SwapLives(a, b *Fighter) {
	a.Life, b.Life = b.Life, a.Life
	a.sync()
	b.sync()
}

func (f *Fighter) sync() {
	if f.player == nil {
		return
	}
	f.player.Life = f.Life
	f.player.EscapesLeft = f.EscapesLeft
}
