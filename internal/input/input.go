// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never key releases.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Left    bool   // Held: a/A or left arrow
	Right   bool   // Held: d/D or right arrow
	Restart bool   // Pressed this frame: r/R or space
	Quit    bool   // Pressed this frame: q/Q or Ctrl-C
	Pressed []byte // Raw bytes received this frame
}

// keyState tracks the last time each held key was seen.
type keyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks held keys across frames.
type Stream struct {
	ch        chan byte
	done      chan struct{}
	closeOnce sync.Once
	state     keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when r fails or the stream is closed; either way
// the channel is closed and ReadInput reports Quit.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case <-s.done:
				return
			default:
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
}

// Close stops delivering bytes. A reader blocked in ReadByte still exits on
// its next byte or error. Safe to call more than once.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream without blocking.
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.parse(buf, time.Now())
	if closed {
		in.Quit = true
	}
	return in
}

// Reset forgets held keys, so a movement key held across a restart does not
// carry into the new round.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// parse applies the bytes received this frame and builds the frame's Input.
// Movement is level-triggered through the hold window; restart and quit are
// edge-triggered and only true in the frame their byte arrived.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			case 'A', 'B':
				i += 2
				continue
			}
		}

		switch b {
		case 'a', 'A':
			s.state.left = now
		case 'd', 'D':
			s.state.right = now
		case 'r', 'R', ' ':
			in.Restart = true
		case 'q', 'Q', '\x03':
			in.Quit = true
		}
	}

	in.Left = held(s.state.left, now)
	in.Right = held(s.state.right, now)
	return in
}

func held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < keyHoldDuration
}
