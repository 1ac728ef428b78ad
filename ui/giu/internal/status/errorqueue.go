package status

import "sync"

// ErrorQueue holds the error messages waiting to be shown. Only one message
// is on screen at a time and the next one is handed out after the previous
// one has been dismissed.
type ErrorQueue struct {
	pending []string
	showing bool
	mux     sync.Mutex
}

func (s *ErrorQueue) Push(message string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.pending = append(s.pending, message)
}

// Next returns the message to open, or false if one is already open or
// nothing is waiting
func (s *ErrorQueue) Next() (string, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.showing || len(s.pending) == 0 {
		return "", false
	}
	message := s.pending[0]
	s.pending = s.pending[1:]
	s.showing = true
	return message, true
}

func (s *ErrorQueue) Dismiss() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.showing = false
}

// IsBlocking is true while a message is open or waiting to be opened
func (s *ErrorQueue) IsBlocking() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.showing || len(s.pending) > 0
}
