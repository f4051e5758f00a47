// Package param describes the host-owned parameters controls bind to.
// A Param lives with the delegate; controls hold only parameter indices
// and look descriptors up through the delegate when they need defaults,
// display text or parsing.
package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Param describes one automatable parameter: its natural range, default,
// step quantization and how values are displayed and parsed.
type Param struct {
	// Name is the label shown in prompts and captions.
	Name string
	// Unit is an optional suffix such as "dB" or "Hz".
	Unit string
	// Min, Max bound the natural (unnormalized) range.
	Min float64
	Max float64
	// Default is the natural default value.
	Default float64
	// Step quantizes natural values when > 0.
	Step float64
	// DisplayTexts, when non-empty, names each step of a stepped parameter.
	// A parameter with display texts prompts with a menu instead of a text
	// entry box.
	DisplayTexts []string
}

// New returns a continuous parameter over [min, max].
func New(name string, min, max, def float64, unit string) *Param {
	return &Param{Name: name, Unit: unit, Min: min, Max: max, Default: def}
}

// NewEnum returns a stepped parameter with one state per display text.
func NewEnum(name string, def int, texts ...string) *Param {
	p := &Param{
		Name:         name,
		Min:          0,
		Max:          float64(len(texts) - 1),
		Default:      float64(def),
		Step:         1,
		DisplayTexts: texts,
	}
	return p
}

// Stepped reports whether the parameter is quantized.
func (p *Param) Stepped() bool { return p.Step > 0 }

// NumSteps returns the number of quantized states, or 0 for a continuous
// parameter.
func (p *Param) NumSteps() int {
	if !p.Stepped() {
		return 0
	}
	return int(math.Round((p.Max-p.Min)/p.Step)) + 1
}

// Constrain clamps a natural value to the range and snaps it to the step.
func (p *Param) Constrain(v float64) float64 {
	v = math.Min(math.Max(v, p.Min), p.Max)
	if p.Stepped() {
		v = p.Min + p.Step*math.Round((v-p.Min)/p.Step)
	}
	return v
}

// ToNormalized maps a natural value to 0-1.
func (p *Param) ToNormalized(natural float64) float64 {
	if p.Max == p.Min {
		return 0
	}
	n := (p.Constrain(natural) - p.Min) / (p.Max - p.Min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// FromNormalized maps a 0-1 value to the natural range, honoring the step.
func (p *Param) FromNormalized(normalized float64) float64 {
	return p.Constrain(p.Min + normalized*(p.Max-p.Min))
}

// DefaultNormalized returns the default value mapped to 0-1.
func (p *Param) DefaultNormalized() float64 {
	return p.ToNormalized(p.Default)
}

// DisplayText returns the text for a natural value: the step's display text
// for enumerated parameters, otherwise the number with its unit.
func (p *Param) DisplayText(natural float64) string {
	if len(p.DisplayTexts) > 0 {
		idx := int(math.Round(p.Constrain(natural) - p.Min))
		if idx >= 0 && idx < len(p.DisplayTexts) {
			return p.DisplayTexts[idx]
		}
	}
	s := strconv.FormatFloat(natural, 'f', -1, 64)
	if p.Unit != "" {
		return fmt.Sprintf("%s %s", s, p.Unit)
	}
	return s
}

// Parse converts user-entered text to a natural value. Display texts are
// matched case-insensitively first; otherwise the text is read as a number,
// ignoring a trailing unit.
func (p *Param) Parse(text string) (float64, error) {
	text = strings.TrimSpace(text)
	for i, dt := range p.DisplayTexts {
		if strings.EqualFold(dt, text) {
			return p.Min + float64(i)*p.Step, nil
		}
	}
	text = strings.TrimSpace(strings.TrimSuffix(text, p.Unit))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("param %q: cannot parse %q: %w", p.Name, text, err)
	}
	return p.Constrain(v), nil
}
