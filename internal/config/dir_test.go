package config

import (
	"path/filepath"
	"testing"
)

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("HABITS_CONFIG_HOME", "/custom/habits")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := Dir(); got != "/custom/habits" {
		t.Errorf("Dir() = %q, want /custom/habits", got)
	}
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("HABITS_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	want := filepath.Join("/xdg", "habits")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_HomeFallback(t *testing.T) {
	t.Setenv("HABITS_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")

	want := filepath.Join("/home/tester", ".config", "habits")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}
