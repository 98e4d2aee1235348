package storage

import (
	"encoding/ascii85"
	"encoding/base64"
	"io"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
)

// CacheMount is the in-memory mount populated by inject_{base64,
// ascii85, raw}. Base64/Ascii85 decoding is an out-of-scope external
// collaborator per spec §1 ("Base64/Ascii85 decoders ... used through
// stated contracts"); stdlib encoding/base64 and encoding/ascii85 are
// the contract implementations.
type CacheMount struct {
	entries map[string][]byte
}

// NewCacheMount creates an empty injectable mount.
func NewCacheMount() *CacheMount {
	return &CacheMount{entries: make(map[string][]byte)}
}

func (c *CacheMount) Writable() bool      { return false }
func (c *CacheMount) Description() string { return "cache" }

func (c *CacheMount) Open(name string) (Handle, error) {
	data, ok := c.entries[name]
	if !ok {
		return nil, apperr.Wrap(apperr.ErrNotFound, name, nil)
	}
	return &memHandle{data: data}, nil
}

// InjectRaw stores raw bytes under name.
func (c *CacheMount) InjectRaw(name string, data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)
	c.entries[name] = cp
}

// InjectBase64 decodes standard base64 text and stores the result.
func (c *CacheMount) InjectBase64(name string, text []byte) error {
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(decoded, text)
	if err != nil {
		return apperr.Wrap(apperr.ErrDecode, name, err)
	}
	c.entries[name] = decoded[:n]
	return nil
}

// InjectAscii85 decodes Ascii85 text and stores the result.
func (c *CacheMount) InjectAscii85(name string, text []byte) error {
	decoded := make([]byte, len(text))
	n, _, err := ascii85.Decode(decoded, text, true)
	if err != nil {
		return apperr.Wrap(apperr.ErrDecode, name, err)
	}
	c.entries[name] = decoded[:n]
	return nil
}

// memHandle is a read-only, fully-buffered Handle over an in-memory
// byte slice, shared by the archive and cache mounts.
type memHandle struct {
	data []byte
	pos  int64
}

func (h *memHandle) Read(p []byte) (int, error) {
	if h.pos >= int64(len(h.data)) {
		return 0, io.EOF
	}
	n := copy(p, h.data[h.pos:])
	h.pos += int64(n)
	return n, nil
}

func (h *memHandle) Seek(offset int64, whence Whence) (int64, error) {
	var base int64
	switch whence {
	case SeekSet:
		base = 0
	case SeekCur:
		base = h.pos
	case SeekEnd:
		base = int64(len(h.data))
	}
	h.pos = base + offset
	return h.pos, nil
}

func (h *memHandle) Tell() int64  { return h.pos }
func (h *memHandle) Eof() bool    { return h.pos >= int64(len(h.data)) }
func (h *memHandle) Size() int64  { return int64(len(h.data)) }
func (h *memHandle) Close() error { return nil }
