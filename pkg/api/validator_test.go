package api

import (
	"errors"
	"testing"
)

func testPlayer(name string) PlayerSetup {
	return PlayerSetup{
		Name: name, Speed: 4, Attack: 4, Defense: 4,
		AttackDie: 6, DefenseDie: 4, Life: 4,
	}
}

func TestPartySetup_Validate(t *testing.T) {
	grid := [][]int{{10, 10}}

	tests := []struct {
		name    string
		setup   PartySetup
		wantErr bool
		is      error
	}{
		{"valid", PartySetup{Map: grid, Players: []PlayerSetup{testPlayer("Ann"), testPlayer("Bob")}}, false, nil},
		{"no map", PartySetup{Players: []PlayerSetup{testPlayer("Ann"), testPlayer("Bob")}}, true, nil},
		{"single player", PartySetup{Map: grid, Players: []PlayerSetup{testPlayer("Ann")}}, true, nil},
		{"same name twice", PartySetup{Map: grid, Players: []PlayerSetup{testPlayer("Bob"), testPlayer("Bob")}}, true, ErrDuplicateName},
		{"bots only", PartySetup{Map: grid, Players: []PlayerSetup{
			func() PlayerSetup { p := testPlayer("b1"); p.IsVirtual = true; return p }(),
			func() PlayerSetup { p := testPlayer("b2"); p.IsVirtual = true; return p }(),
		}}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error %v should wrap %v", err, tt.is)
			}
		})
	}
}

func TestPlayerSetup_Validate(t *testing.T) {
	bad := testPlayer("")
	if bad.Validate() == nil {
		t.Error("empty name should be rejected")
	}
	die := testPlayer("Ann")
	die.AttackDie = 8
	if die.Validate() == nil {
		t.Error("d8 should be rejected")
	}
	prof := testPlayer("Ann")
	prof.Profile = "sneaky"
	if prof.Validate() == nil {
		t.Error("unknown profile should be rejected")
	}
}
