package mapdata

import "testing"

func TestParseDirection_ShortAndLong(t *testing.T) {
	if got := ParseDirection("n"); got != North {
		t.Errorf("ParseDirection(n) = %q, want north", got)
	}
	if got := ParseDirection("northwest"); got != NorthWest {
		t.Errorf("ParseDirection(northwest) = %q", got)
	}
}

func TestParseDirection_UnknownPassesThrough(t *testing.T) {
	// Special exits use free-form keys; they must survive parsing intact.
	if got := ParseDirection("enter portal"); got != Direction("enter portal") {
		t.Errorf("ParseDirection(enter portal) = %q", got)
	}
}

func TestOpposite_RoundTrips(t *testing.T) {
	for d := range shortNames {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("Opposite(Opposite(%s)) = %s", d, got)
		}
	}
	if got := Direction("enter portal").Opposite(); got != "" {
		t.Errorf("Opposite of a special exit = %q, want empty", got)
	}
}

func TestDirectionFromStub(t *testing.T) {
	cases := map[int]Direction{1: North, 4: East, 8: SouthWest, 10: Down, 12: Out}
	for n, want := range cases {
		got, ok := DirectionFromStub(n)
		if !ok || got != want {
			t.Errorf("DirectionFromStub(%d) = %q, %v; want %q", n, got, ok, want)
		}
	}
	if _, ok := DirectionFromStub(13); ok {
		t.Error("DirectionFromStub(13) succeeded, want not-found")
	}
}

func TestIsInner(t *testing.T) {
	for _, d := range []Direction{Up, Down, In, Out} {
		if !d.IsInner() {
			t.Errorf("%s.IsInner() = false", d)
		}
	}
	if North.IsInner() {
		t.Error("north.IsInner() = true")
	}
}

func TestRoomExitTo(t *testing.T) {
	room := &Room{ID: 1, Exits: map[string]int{"east": 2, "up": 3}}

	dir, ok := room.ExitTo(2)
	if !ok || dir != East {
		t.Errorf("ExitTo(2) = %q, %v; want east", dir, ok)
	}
	if _, ok := room.ExitTo(99); ok {
		t.Error("ExitTo(99) found, want not-found")
	}
}

func TestRoomGlyphColor(t *testing.T) {
	room := &Room{UserData: map[string]string{"system.fallback_symbol_color": "#ff00ff"}}
	hex, ok := room.GlyphColor()
	if !ok || hex != "#ff00ff" {
		t.Errorf("GlyphColor() = %q, %v", hex, ok)
	}
	if _, ok := (&Room{}).GlyphColor(); ok {
		t.Error("GlyphColor on bare room found, want not-found")
	}
}

func TestLuminance(t *testing.T) {
	if got := (RGB{R: 255, G: 255, B: 255}).Luminance(); got < 0.99 {
		t.Errorf("white luminance = %v", got)
	}
	if got := (RGB{}).Luminance(); got != 0 {
		t.Errorf("black luminance = %v", got)
	}
}
