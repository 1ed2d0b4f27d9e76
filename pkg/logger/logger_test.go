package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	Init()
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", Log.GetLevel())
	}

	t.Setenv("LOG_LEVEL", "nonsense")
	Init()
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("expected fallback to info, got %s", Log.GetLevel())
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "party.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_FORMAT", "json")
	Init()

	Log.Info("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
