package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("id %q is not a uuid: %v", a, err)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"0123456789abcdef", "01234567"},
	}
	for _, tt := range tests {
		if got := ShortID(tt.in); got != tt.want {
			t.Errorf("ShortID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
