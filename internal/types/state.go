package types

// State is an in-memory snapshot of the emulated machine. Components
// append their fields in a fixed order on Save and consume them in the
// same order on Load, which makes snapshots cheap to take between steps
// and lets two runs be compared bit for bit.
type State struct {
	raw          []byte // raw state data
	readPosition int    // current read position
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0, 0x2000),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition resets the read position, allowing the state
// to be read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

func (s *State) Read8() uint8 {
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) ReadBool() bool {
	value := s.raw[s.readPosition] != 0
	s.readPosition++
	return value
}

// ReadData fills p from the current read position.
func (s *State) ReadData(p []byte) {
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
}

// Bytes returns the raw state data.
func (s *State) Bytes() []byte {
	return s.raw
}
