package style

import (
	"strings"
	"testing"

	"github.com/go-fader/fader/pkg/graphics"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want graphics.Color
	}{
		{"#FF0000", graphics.ColorRed},
		{"#00FF00", graphics.ColorGreen},
		{" #0000FF ", graphics.ColorBlue},
		{"#11223344", graphics.RGBA8(0x11, 0x22, 0x33, 0x44)},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %08X, want %08X", c.in, uint32(got), uint32(c.want))
		}
	}

	for _, bad := range []string{"", "#12345", "#GGGGGG", "red"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) did not fail", bad)
		}
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	c := graphics.RGBA8(0x12, 0x34, 0x56, 0x78)
	got, err := ParseColor(FormatColor(c))
	if err != nil || got != c {
		t.Errorf("round trip = %v, %v", got, err)
	}
}

func TestParseSheetOverlaysDefaults(t *testing.T) {
	spec, err := Parse([]byte(`
colors:
  foreground: "#FF0000"
  highlight: "#00FF0080"
roundness: 0.5
draw_shadows: false
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if spec.Color(Foreground) != graphics.ColorRed {
		t.Errorf("foreground = %v, want red", spec.Color(Foreground))
	}
	if spec.Color(Highlight) != graphics.RGBA8(0, 0xFF, 0, 0x80) {
		t.Errorf("highlight = %v", spec.Color(Highlight))
	}
	if spec.Roundness != 0.5 {
		t.Errorf("roundness = %v, want 0.5", spec.Roundness)
	}
	if spec.DrawShadows {
		t.Error("draw_shadows not overridden")
	}

	// Untouched values keep their defaults.
	def := Default()
	if spec.Color(Pressed) != def.Color(Pressed) {
		t.Error("pressed color lost its default")
	}
	if spec.FrameThickness != def.FrameThickness {
		t.Error("frame thickness lost its default")
	}
}

func TestParseSheetRejectsUnknownRole(t *testing.T) {
	_, err := Parse([]byte("colors:\n  chartreuse: \"#112233\"\n"))
	if err == nil || !strings.Contains(err.Error(), "chartreuse") {
		t.Errorf("unknown role error = %v", err)
	}
}

func TestParseSheetRejectsBadRoundness(t *testing.T) {
	if _, err := Parse([]byte("roundness: 1.5\n")); err == nil {
		t.Error("roundness 1.5 accepted")
	}
}

func TestParseSheetEmpty(t *testing.T) {
	spec, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if spec != Default() {
		t.Error("empty sheet is not the default spec")
	}
}

func TestRoleNames(t *testing.T) {
	for role := Background; role < NumRoles; role++ {
		name := role.String()
		if strings.HasPrefix(name, "ColorRole(") {
			t.Errorf("role %d has no name", int(role))
		}
		got, ok := roleByName(name)
		if !ok || got != role {
			t.Errorf("roleByName(%q) = %v, %v", name, got, ok)
		}
	}
}
