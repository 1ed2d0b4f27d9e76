package domain

import (
	"encoding/json"
	"testing"
)

func TestEncodeDecodeTile(t *testing.T) {
	tests := []struct {
		value int
		kind  TileKind
		item  ItemType
	}{
		{0, TileWall, ItemNone},
		{10, TileBase, ItemNone},
		{16, TileBase, ItemFlag},
		{23, TileWater, ItemPotion},
		{35, TileIce, ItemSkates},
		{40, TileDoorClosed, ItemNone},
		{52, TileDoorOpen, ItemShield},
	}
	for _, tt := range tests {
		kind, item := DecodeTile(tt.value)
		if kind != tt.kind || item != tt.item {
			t.Errorf("DecodeTile(%d) = (%v, %v), want (%v, %v)", tt.value, kind, item, tt.kind, tt.item)
		}
		if got := EncodeTile(tt.kind, tt.item); got != tt.value {
			t.Errorf("EncodeTile(%v, %v) = %d, want %d", tt.kind, tt.item, got, tt.value)
		}
	}
}

func TestItemType_JSON(t *testing.T) {
	data, err := json.Marshal([]ItemType{ItemSword, ItemFlag})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `["SWORD","FLAG"]` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	var item ItemType
	if err := json.Unmarshal([]byte(`"amulet"`), &item); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if item != ItemAmulet {
		t.Errorf("Expected AMULET, got %v", item)
	}
}
