package domain

import "strings"

// TileKind is the base terrain of a tile, stored in the tens digit of the packed value.
type TileKind int

const (
	TileWall TileKind = iota
	TileBase
	TileWater
	TileIce
	TileDoorClosed
	TileDoorOpen
)

// ItemType is the residue of a packed tile value. Zero means "no item".
type ItemType int

const (
	ItemNone ItemType = iota
	ItemSword
	ItemShield
	ItemPotion
	ItemAmulet
	ItemSkates
	ItemFlag
)

const tileBase = 10

// Маппинг для конвертации JSON -> Domain
var itemStringToType = map[string]ItemType{
	"SWORD":  ItemSword,
	"SHIELD": ItemShield,
	"POTION": ItemPotion,
	"AMULET": ItemAmulet,
	"SKATES": ItemSkates,
	"FLAG":   ItemFlag,
}

var itemTypeToString = map[ItemType]string{
	ItemSword:  "SWORD",
	ItemShield: "SHIELD",
	ItemPotion: "POTION",
	ItemAmulet: "AMULET",
	ItemSkates: "SKATES",
	ItemFlag:   "FLAG",
}

// EncodeTile packs a terrain and an item into the wire/grid integer.
func EncodeTile(kind TileKind, item ItemType) int {
	return int(kind)*tileBase + int(item)
}

// DecodeTile splits a packed value into terrain and residue.
func DecodeTile(value int) (TileKind, ItemType) {
	return TileKind(value / tileBase), ItemType(value % tileBase)
}

// Cost returns the movement cost of the terrain, CostImpassable for walls and closed doors.
func (k TileKind) Cost() int {
	switch k {
	case TileIce:
		return CostIce
	case TileBase, TileDoorOpen:
		return CostBase
	case TileWater:
		return CostWater
	default:
		return CostImpassable
	}
}

// Valid reports whether k is one of the known terrains.
func (k TileKind) Valid() bool {
	return k >= TileWall && k <= TileDoorOpen
}

// ParseItem конвертирует строку из JSON в ItemType
func ParseItem(s string) ItemType {
	if val, ok := itemStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return ItemNone
}

func (i ItemType) Valid() bool {
	return i > ItemNone && i <= ItemFlag
}

func (i ItemType) String() string {
	if val, ok := itemTypeToString[i]; ok {
		return val
	}
	return "NONE"
}

// MarshalText lets items travel as names in JSON payloads.
func (i ItemType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *ItemType) UnmarshalText(b []byte) error {
	*i = ParseItem(string(b))
	return nil
}
