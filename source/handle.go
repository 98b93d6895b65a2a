package source

import (
	"io"
	"os"

	"github.com/zeebo/errs/v2"
)

// wrap keeps io.EOF bare. Consumers treat EOF as a short read, and a
// wrapped EOF would turn end of stream into a failure.
func wrap(err error) error {
	if err != nil && err != io.EOF {
		return errs.Wrap(err)
	}
	return err
}

// H is a readable handle to an open file. It satisfies buffer.Source.
type H struct {
	_ [0]func() // no equality

	src *T
	fh  *os.File
}

func (h H) Valid() bool { return h.src != nil && h.fh != nil }

func (h H) Name() string {
	return h.fh.Name()
}

func (h H) Close() (err error) {
	if !h.Valid() {
		return nil
	}
	return wrap(h.fh.Close())
}

func (h *H) Remove() error {
	if !h.Valid() {
		return nil
	}
	err := errs.Combine(
		h.Close(),
		os.Remove(h.fh.Name()), // N.B. not h.src.Remove
	)
	h.src = nil
	h.fh = nil
	return err
}

func (h H) Read(p []byte) (n int, err error) {
	n, err = h.fh.Read(p)
	return n, wrap(err)
}

func (h H) Write(p []byte) (n int, err error) {
	n, err = h.fh.Write(p)
	return n, wrap(err)
}

func (h H) Seek(offset int64, whence int) (off int64, err error) {
	off, err = h.fh.Seek(offset, whence)
	return off, wrap(err)
}

func (h H) Size() (int64, error) {
	fi, err := h.fh.Stat()
	if err != nil {
		return 0, wrap(err)
	}
	return fi.Size(), nil
}
