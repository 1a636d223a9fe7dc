package input

// Script replays a fixed sequence of button states, one per Buttons call.
// After the last frame it keeps returning the final state, or None when the
// script is empty. A Script with Loop set starts over instead.
type Script struct {
	Frames []Button
	Loop   bool
	pos    int
}

// NewScript builds a Script from frames.
func NewScript(frames ...Button) *Script {
	return &Script{Frames: frames}
}

// Hold appends n frames of b.
func (s *Script) Hold(b Button, n int) *Script {
	for range n {
		s.Frames = append(s.Frames, b)
	}
	return s
}

func (s *Script) Buttons() Button {
	if len(s.Frames) == 0 {
		return None
	}
	if s.pos >= len(s.Frames) {
		if !s.Loop {
			return s.Frames[len(s.Frames)-1]
		}
		s.pos = 0
	}
	b := s.Frames[s.pos]
	s.pos++
	return b
}

// Rewind restarts the script from the first frame.
func (s *Script) Rewind() {
	s.pos = 0
}
