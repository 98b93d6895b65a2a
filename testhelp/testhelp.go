package testhelp

import (
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/zeebo/assert"
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/mwc"

	"github.com/iobuf/iobuf/source"
)

var payloadRng = mwc.Rand()

func Payload(n int) []byte {
	v := make([]byte, n)
	for i := range v {
		v[i] = byte(payloadRng.Uint64())
	}
	return v
}

func Source(tb testing.TB) (*source.T, func()) {
	dir, err := os.MkdirTemp("/tmp", "iobuf-")
	assert.NoError(tb, err)

	src := &source.T{Base: dir}
	return src, func() {
		assert.NoError(tb, src.RemoveAll("."))
	}
}

func Tempfile(tb testing.TB, src *source.T) (source.H, func()) {
	name := fmt.Sprint(time.Now().UnixNano())

	fh, err := src.Create(name)
	assert.NoError(tb, err)
	return fh, func() {
		assert.NoError(tb, errs.Combine(fh.Close(), src.Remove(name)))
	}
}

func ReadFile(tb testing.TB, fh source.H) []byte {
	pos, err := fh.Seek(0, io.SeekCurrent)
	assert.NoError(tb, err)
	_, err = fh.Seek(0, io.SeekStart)
	assert.NoError(tb, err)
	data, err := io.ReadAll(fh)
	assert.NoError(tb, err)
	_, err = fh.Seek(pos, io.SeekStart)
	assert.NoError(tb, err)
	return data
}
