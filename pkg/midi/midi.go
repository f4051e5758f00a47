// Package midi defines the raw MIDI message value delivered to controls
// that opt in to MIDI. Receiving and thread-marshalling messages is the
// host's job; controls only inspect them.
package midi

// Status nibbles of a channel voice message.
const (
	NoteOff           = 0x80
	NoteOn            = 0x90
	PolyAftertouch    = 0xA0
	ControlChange     = 0xB0
	ProgramChange     = 0xC0
	ChannelAftertouch = 0xD0
	PitchWheel        = 0xE0
)

// Msg is a raw three-byte MIDI message.
type Msg struct {
	Status byte
	Data1  byte
	Data2  byte
}

// Channel returns the zero-based channel of a channel voice message.
func (m Msg) Channel() int {
	return int(m.Status & 0x0F)
}

// StatusMsg returns the status nibble with the channel masked off.
func (m Msg) StatusMsg() int {
	return int(m.Status & 0xF0)
}

// IsNoteOn reports a note-on with nonzero velocity. Note-on with velocity
// zero is note-off by convention.
func (m Msg) IsNoteOn() bool {
	return m.StatusMsg() == NoteOn && m.Data2 > 0
}

// IsNoteOff reports a note-off, including zero-velocity note-on.
func (m Msg) IsNoteOff() bool {
	return m.StatusMsg() == NoteOff || (m.StatusMsg() == NoteOn && m.Data2 == 0)
}

// NoteNumber returns Data1 for note messages.
func (m Msg) NoteNumber() int { return int(m.Data1) }

// Velocity returns Data2 for note messages.
func (m Msg) Velocity() int { return int(m.Data2) }

// ControlValue returns the normalized 0-1 value of a control-change message.
func (m Msg) ControlValue() float64 {
	return float64(m.Data2) / 127.0
}
