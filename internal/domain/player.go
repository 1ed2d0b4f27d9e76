package domain

// Dice is the number of faces of a die assigned to a player stat.
type Dice int

const (
	D4 Dice = 4
	D6 Dice = 6
)

// BotProfile selects the decision strategy of a virtual player.
type BotProfile string

const (
	ProfileAggressive BotProfile = "aggressive"
	ProfileDefensive  BotProfile = "defensive"
)

// Player is the authoritative state of one participant. Only the party runtime mutates it.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Pos      Position `json:"pos"`
	PrevPos  Position `json:"prevPos"`
	StartPos Position `json:"startPos"`

	Speed      int  `json:"speed"`
	Attack     int  `json:"attack"`
	Defense    int  `json:"defense"`
	AttackDie  Dice `json:"attackDie"`
	DefenseDie Dice `json:"defenseDie"`

	Life        int `json:"life"`
	MaxLife     int `json:"maxLife"`
	EscapesLeft int `json:"escapesLeft"`
	Wins        int `json:"wins"`

	AvailableMoves   int `json:"availableMoves"`
	RemainingActions int `json:"remainingActions"`

	Inventory []ItemType `json:"inventory"`

	HasFlag         bool       `json:"hasFlag"`
	IsGiveUp        bool       `json:"isGiveUp"`
	IsCurrentPlayer bool       `json:"isCurrentPlayer"`
	IsOrganizer     bool       `json:"isOrganizer"`
	IsVirtual       bool       `json:"isVirtual"`
	Profile         BotProfile `json:"profile,omitempty"`
}

// IsActive - игрок еще в игре (не сдался)
func (p *Player) IsActive() bool {
	return !p.IsGiveUp
}

// ResetTurn restores the per-turn budget.
func (p *Player) ResetTurn() {
	p.AvailableMoves = p.Speed
	p.RemainingActions = ActionsPerTurn
}

// MoveTo relocates the player, remembering the previous tile.
func (p *Player) MoveTo(pos Position) {
	p.PrevPos = p.Pos
	p.Pos = pos
}

func (p *Player) HasItem(item ItemType) bool {
	for _, it := range p.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// AddItem always accepts the item; capacity is enforced by the caller so a human can
// go one over and then choose what to drop.
func (p *Player) AddItem(item ItemType) {
	p.Inventory = append(p.Inventory, item)
	if item == ItemFlag {
		p.HasFlag = true
	}
}

// RemoveItem drops the last occurrence of item. Returns false if it was not carried.
func (p *Player) RemoveItem(item ItemType) bool {
	for i := len(p.Inventory) - 1; i >= 0; i-- {
		if p.Inventory[i] != item {
			continue
		}
		p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		if item == ItemFlag {
			p.HasFlag = p.HasItem(ItemFlag)
		}
		return true
	}
	return false
}

func (p *Player) InventoryFull() bool {
	return len(p.Inventory) >= MaxInventorySize
}

func (p *Player) IsOverCapacity() bool {
	return len(p.Inventory) > MaxInventorySize
}

// EffectiveAttack includes item bonuses.
func (p *Player) EffectiveAttack() int {
	if p.HasItem(ItemSword) {
		return p.Attack + SwordAttackBonus
	}
	return p.Attack
}

// EffectiveDefense includes item bonuses.
func (p *Player) EffectiveDefense() int {
	if p.HasItem(ItemShield) {
		return p.Defense + ShieldDefenseBonus
	}
	return p.Defense
}

// Clone returns a copy safe to hand to other goroutines.
func (p *Player) Clone() Player {
	c := *p
	c.Inventory = append([]ItemType(nil), p.Inventory...)
	return c
}
