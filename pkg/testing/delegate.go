package testing

import (
	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/param"
)

// Notification is one value change sent to the delegate from user input.
type Notification struct {
	ParamIdx int
	Value    float64
}

// Delegate serves parameter descriptors and records outbound value
// notifications. The zero value has no parameters.
type Delegate struct {
	Params map[int]*param.Param
	Sent   []Notification
}

var _ control.Delegate = (*Delegate)(nil)

// NewDelegate returns a delegate serving the given parameters by index.
func NewDelegate(params map[int]*param.Param) *Delegate {
	return &Delegate{Params: params}
}

func (d *Delegate) Param(paramIdx int) *param.Param {
	return d.Params[paramIdx]
}

func (d *Delegate) SendValueFromUI(paramIdx int, value float64) {
	d.Sent = append(d.Sent, Notification{ParamIdx: paramIdx, Value: value})
}

// Reset discards recorded notifications.
func (d *Delegate) Reset() { d.Sent = nil }
