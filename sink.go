package cfmt

import "io"

// DefaultBufferSize is the sink capacity used when no WithBufferSize option
// is given.
const DefaultBufferSize = 1024

// sink accumulates output in a fixed-capacity buffer and flushes it to w when
// the buffer is full and at the end of a call. It is owned by one call.
type sink struct {
	w     io.Writer
	buf   []byte
	n     int
	count int
	err   error
}

func newSink(w io.Writer, size int) *sink {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &sink{w: w, buf: make([]byte, size)}
}

func (s *sink) writeByte(c byte) {
	if s.n == len(s.buf) {
		s.flush()
	}
	s.buf[s.n] = c
	s.n++
	s.count++
}

func (s *sink) writeString(str string) {
	for len(str) > 0 {
		if s.n == len(s.buf) {
			s.flush()
		}
		k := copy(s.buf[s.n:], str)
		s.n += k
		s.count += k
		str = str[k:]
	}
}

func (s *sink) write(p []byte) {
	for len(p) > 0 {
		if s.n == len(s.buf) {
			s.flush()
		}
		k := copy(s.buf[s.n:], p)
		s.n += k
		s.count += k
		p = p[k:]
	}
}

// pad appends n copies of c. Negative n is a no-op.
func (s *sink) pad(c byte, n int) {
	for ; n > 0; n-- {
		s.writeByte(c)
	}
}

// flush hands the buffered bytes to w. Once w has failed, bytes are still
// counted but discarded, and the first error is kept.
func (s *sink) flush() error {
	if s.n == 0 {
		return s.err
	}
	if s.err == nil {
		s.err = writeFull(s.w, s.buf[:s.n])
	}
	s.n = 0
	return s.err
}

// writeFull writes all of p, tolerating writers that accept bounded chunks.
func writeFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}
