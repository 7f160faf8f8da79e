package cli

import (
	"strings"
	"testing"

	"github.com/gookit/color"
)

func TestFormatString(t *testing.T) {
	InitColors()
	// Force plain output so assertions are stable regardless of the test
	// environment's terminal.
	color.Disable()

	out := FormatString("room ID{%d} named ROOM{%s}", 42, "Pier")
	if out != "room 42 named Pier" {
		t.Errorf("FormatString = %q", out)
	}

	out = FormatString("AREA{Harbor} SUBTLE{(3 rooms)}")
	if out != "Harbor (3 rooms)" {
		t.Errorf("FormatString = %q", out)
	}

	out = FormatString("NOPE{x}")
	if !strings.Contains(out, "ERROR, function not found") {
		t.Errorf("unknown markup function not reported: %q", out)
	}
}

func TestTerminalSizeFallback(t *testing.T) {
	// Tests never run against a tty, so the defaults apply.
	w, h := TerminalSize()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("TerminalSize = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
}
