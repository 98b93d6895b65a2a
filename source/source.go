package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/errs/v2"
)

// T opens file-backed byte sources under a base directory.
type T struct {
	_ [0]func() // no equality

	Base string
}

func (t *T) child(path string) string {
	return filepath.Join(t.Base, path)
}

func (t *T) Create(path string) (h H, err error) {
	path = t.child(path)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	return H{src: t, fh: f}, errs.Wrap(err)
}

func (t *T) OpenRead(path string) (h H, err error) {
	path = t.child(path)

	f, err := os.Open(path)
	return H{src: t, fh: f}, errs.Wrap(err)
}

func (t *T) Remove(path string) error {
	path = t.child(path)

	return errs.Wrap(os.Remove(path))
}

func (t *T) RemoveAll(path string) error {
	path = t.child(path)

	if !strings.HasPrefix(path, "/tmp/") {
		return errs.Errorf("path must begin with /tmp/: %q", path)
	}
	return errs.Wrap(os.RemoveAll(path))
}
