package buffer

import "io"

// byteSource yields from a fixed payload, at most chunk bytes per
// read when chunk is set, and io.EOF once drained.
type byteSource struct {
	data  []byte
	chunk int
	calls int
}

func (s *byteSource) Read(p []byte) (int, error) {
	s.calls++
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	if s.chunk > 0 && len(p) > s.chunk {
		p = p[:s.chunk]
	}
	n := copy(p, s.data)
	s.data = s.data[n:]
	return n, nil
}

// errSource fails every read with err.
type errSource struct {
	err   error
	calls int
}

func (s *errSource) Read(p []byte) (int, error) {
	s.calls++
	return 0, s.err
}
