package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sheet is the YAML shape of a style file. All fields are optional;
// anything omitted keeps its Default() value.
type sheet struct {
	Colors         map[string]string `yaml:"colors"`
	Roundness      *float64          `yaml:"roundness"`
	FrameThickness *float64          `yaml:"frame_thickness"`
	ShadowOffset   *float64          `yaml:"shadow_offset"`
	DrawFrame      *bool             `yaml:"draw_frame"`
	DrawShadows    *bool             `yaml:"draw_shadows"`
	Emboss         *bool             `yaml:"emboss"`
}

// Parse reads a YAML style sheet, overlaying it on the default spec.
func Parse(data []byte) (Spec, error) {
	spec := Default()

	var sh sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return spec, fmt.Errorf("style: parse sheet: %w", err)
	}

	for name, value := range sh.Colors {
		role, ok := roleByName(name)
		if !ok {
			return spec, fmt.Errorf("style: unknown color role %q", name)
		}
		c, err := ParseColor(value)
		if err != nil {
			return spec, err
		}
		spec.Colors[role] = c
	}

	if sh.Roundness != nil {
		r := *sh.Roundness
		if r < 0 || r > 1 {
			return spec, fmt.Errorf("style: roundness %v out of range [0,1]", r)
		}
		spec.Roundness = r
	}
	if sh.FrameThickness != nil {
		spec.FrameThickness = *sh.FrameThickness
	}
	if sh.ShadowOffset != nil {
		spec.ShadowOffset = *sh.ShadowOffset
	}
	if sh.DrawFrame != nil {
		spec.DrawFrame = *sh.DrawFrame
	}
	if sh.DrawShadows != nil {
		spec.DrawShadows = *sh.DrawShadows
	}
	if sh.Emboss != nil {
		spec.Emboss = *sh.Emboss
	}

	return spec, nil
}

// Load reads a YAML style sheet from disk.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("style: read sheet: %w", err)
	}
	return Parse(data)
}

func roleByName(name string) (ColorRole, bool) {
	for role, n := range roleNames {
		if n == name {
			return role, true
		}
	}
	return 0, false
}
