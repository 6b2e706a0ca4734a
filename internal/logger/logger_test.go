package logger

import (
	"bytes"
	"os"
	"testing"
)

func reset() {
	SetLevel(LevelQuiet)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose after SetVerbose(true)")
	}
	if GetLevel() != LevelDebug {
		t.Errorf("expected debug level, got %s", GetLevel())
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected not verbose after SetVerbose(false)")
	}
	if GetLevel() != LevelInfo {
		t.Errorf("expected info level, got %s", GetLevel())
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if buf.String() != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestDebug_AtInfoLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)

	Debug("hidden")

	if buf.Len() > 0 {
		t.Errorf("expected no debug output at info level, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)

	Section("Construction")

	if buf.String() != "\n=== Construction ===\n" {
		t.Errorf("unexpected section output: %q", buf.String())
	}
}

func TestInfo(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)

	Info("Added %s to space: %s", "Elevator", "Core_ZN")

	if buf.String() != "[INFO] Added Elevator to space: Core_ZN\n" {
		t.Errorf("unexpected info output: %q", buf.String())
	}
}

func TestQuietLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelQuiet)

	Info("hidden")
	Section("hidden")
	Warn("skipped %d", 2)

	if buf.String() != "[WARN] skipped 2\n" {
		t.Errorf("expected only the warning, got %q", buf.String())
	}
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelQuiet: "quiet",
		LevelInfo:  "info",
		LevelDebug: "debug",
		Level(9):   "level(9)",
	}
	for l, want := range tests {
		if got := l.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(l), got, want)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
