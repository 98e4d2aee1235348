package storage

import (
	"os"
	"path/filepath"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
)

// FolderMount resolves names against a directory on the host file
// system, joined with filepath.Join so "/" always maps to the host's
// separator.
type FolderMount struct {
	root     string
	writable bool
}

// NewFolderMount attaches base as a mount. A folder created through
// Storage.SetIdentity is writable; plain data folders are read-only.
func NewFolderMount(base string, writable bool) *FolderMount {
	return &FolderMount{root: base, writable: writable}
}

func (f *FolderMount) Writable() bool      { return f.writable }
func (f *FolderMount) Description() string { return "folder:" + f.root }

func (f *FolderMount) Open(name string) (Handle, error) {
	full := filepath.Join(f.root, filepath.FromSlash(name))
	fh, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.ErrNotFound, name, err)
		}
		return nil, apperr.Wrap(apperr.ErrResource, name, err)
	}
	info, err := fh.Stat()
	if err != nil {
		fh.Close()
		return nil, apperr.Wrap(apperr.ErrResource, name, err)
	}
	if info.IsDir() {
		fh.Close()
		return nil, apperr.Wrap(apperr.ErrNotFound, name, nil)
	}
	return &fileHandle{f: fh, size: info.Size()}, nil
}

// WritePath returns the absolute host path Store should write name to.
func (f *FolderMount) WritePath(name string) string {
	return filepath.Join(f.root, filepath.FromSlash(name))
}

type fileHandle struct {
	f    *os.File
	size int64
	pos  int64
}

func (h *fileHandle) Read(p []byte) (int, error) {
	n, err := h.f.Read(p)
	h.pos += int64(n)
	return n, err
}

func (h *fileHandle) Seek(offset int64, whence Whence) (int64, error) {
	var w int
	switch whence {
	case SeekSet:
		w = 0
	case SeekCur:
		w = 1
	case SeekEnd:
		w = 2
	}
	pos, err := h.f.Seek(offset, w)
	if err == nil {
		h.pos = pos
	}
	return pos, err
}

func (h *fileHandle) Tell() int64  { return h.pos }
func (h *fileHandle) Eof() bool    { return h.pos >= h.size }
func (h *fileHandle) Size() int64  { return h.size }
func (h *fileHandle) Close() error { return h.f.Close() }
