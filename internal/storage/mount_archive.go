package storage

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
)

// ArchiveMount resolves names against entries of a single zip-like
// archive file, matching the "Archive" mount kind of spec §4.1. The
// archive format itself is an out-of-scope external collaborator
// (spec §1); stdlib archive/zip is the contract implementation.
type ArchiveMount struct {
	path string
	zr   *zip.Reader
	byName map[string]*zip.File
}

// NewArchiveMount opens path as a zip archive and indexes its entries.
func NewArchiveMount(path string) (*ArchiveMount, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrResource, path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrResource, path, err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDecode, path, err)
	}
	m := &ArchiveMount{path: path, zr: zr, byName: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		m.byName[f.Name] = f
	}
	return m, nil
}

func (m *ArchiveMount) Writable() bool      { return false }
func (m *ArchiveMount) Description() string { return "archive:" + m.path }

func (m *ArchiveMount) Open(name string) (Handle, error) {
	zf, ok := m.byName[name]
	if !ok {
		return nil, apperr.Wrap(apperr.ErrNotFound, name, nil)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDecode, name, err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDecode, name, err)
	}
	return &memHandle{data: data}, nil
}
