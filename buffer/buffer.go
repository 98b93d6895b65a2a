package buffer

import (
	"io"

	"github.com/zeebo/errs/v2"
	"github.com/zeebo/xxh3"

	"github.com/iobuf/iobuf"
)

// Source is the capability Fill consumes: a blocking read of up to
// len(p) bytes into p. *os.File, net.Conn and source.H all satisfy it.
type Source interface {
	Read(p []byte) (n int, err error)
}

// T stages bytes read from a Source, up to a fixed capacity. The
// valid region only grows; there is no consume operation. A single T
// is not safe for concurrent use.
type T struct {
	data []byte
	used int
}

func New(capacity int) (*T, error) {
	if capacity <= 0 {
		return nil, errs.Errorf("invalid buffer capacity: %d", capacity)
	}
	return &T{data: make([]byte, capacity)}, nil
}

// Close releases the storage. Close on a nil receiver is a no-op. No
// other method may be called after Close.
func (t *T) Close() {
	if t == nil {
		return
	}
	t.data = nil
	t.used = 0
}

func (t *T) Len() int       { return t.used }
func (t *T) Cap() int       { return len(t.data) }
func (t *T) Remaining() int { return len(t.data) - t.used }

// Prefix is the valid region. Bytes past Len are not data and are
// never handed out.
func (t *T) Prefix() []byte { return t.data[:t.used] }

func (t *T) Fingerprint() uint64 { return xxh3.Hash(t.data[:t.used]) }

// Fill reads up to n bytes from r into the space after the valid
// region and reports how many arrived. A full buffer reports 0
// without touching r, and so does a zero n. The count comes up short
// when r runs out of bytes; end of stream is not an error. A failed
// read reports 0 and leaves the valid region alone.
func (t *T) Fill(r Source, n int) (int, error) {
	avail := len(t.data) - t.used
	if avail == 0 || n <= 0 {
		return 0, nil
	}
	if n > avail {
		n = avail
	}

	m, err := r.Read(t.data[t.used : t.used+n])
	if err != nil && err != io.EOF {
		return 0, errs.Wrap(err)
	}

	t.used += m
	return m, nil
}

func (t *T) Status() iobuf.Status {
	switch t.used {
	case 0:
		return iobuf.Empty
	case len(t.data):
		return iobuf.Full
	default:
		return iobuf.Data
	}
}
