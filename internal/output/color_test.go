package output

import (
	"bytes"
	"testing"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
	}{
		{name: "never overrides TTY", colorMode: "never", isTTY: true, want: false},
		{name: "always overrides non-TTY", colorMode: "always", isTTY: false, want: true},
		{name: "auto follows TTY true", colorMode: "auto", isTTY: true, want: true},
		{name: "auto follows TTY false", colorMode: "auto", isTTY: false, want: false},
		{name: "unknown mode falls back to TTY", colorMode: "bogus", isTTY: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColorMode(tt.colorMode, tt.isTTY); got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer should not be a TTY")
	}
}
