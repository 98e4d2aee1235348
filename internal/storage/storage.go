// Package storage implements the engine's virtual file system: ordered
// mount points, name resolution, and a memoized, aged resource cache
// (spec §4.1).
package storage

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"time"

	_ "golang.org/x/image/bmp"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
	"github.com/retrograde-labs/pixelforge/internal/logging"
)

const (
	DefaultCacheCap  = 32
	DefaultAgeLimit  = 30 * time.Second
)

// Storage is the engine's virtual file system.
type Storage struct {
	mounts []Mount
	cache  *cacheTable

	identity *FolderMount

	cacheCap int
	ageLimit time.Duration

	log *logging.Logger
}

// New creates an empty Storage with no mounts attached.
func New(log *logging.Logger) *Storage {
	return &Storage{
		cache:    newCacheTable(),
		cacheCap: DefaultCacheCap,
		ageLimit: DefaultAgeLimit,
		log:      log,
	}
}

// SetCacheCap overrides the resource cache size cap (default 32).
func (s *Storage) SetCacheCap(n int) { s.cacheCap = n }

// SetAgeLimit overrides the automatic-aging threshold (default 30s).
func (s *Storage) SetAgeLimit(d time.Duration) { s.ageLimit = d }

// MountFolder attaches a host directory as the next mount, in attach
// order (first attached wins on a name collision).
func (s *Storage) MountFolder(path string) {
	s.mounts = append(s.mounts, NewFolderMount(path, false))
}

// MountArchive attaches a zip archive as the next mount.
func (s *Storage) MountArchive(path string) error {
	m, err := NewArchiveMount(path)
	if err != nil {
		return err
	}
	s.mounts = append(s.mounts, m)
	return nil
}

// MountCache attaches (or returns the existing) in-memory injectable
// mount. Open Question resolved: the engine attaches the cache mount
// first, ahead of folders/archives, so injected names are meant to
// override on-disk assets (the typical use is test fixtures and
// runtime-generated content) even though, chronologically, it is
// usually the last mount created during boot.
func (s *Storage) MountCache() *CacheMount {
	for _, m := range s.mounts {
		if c, ok := m.(*CacheMount); ok {
			return c
		}
	}
	c := NewCacheMount()
	s.mounts = append([]Mount{c}, s.mounts...)
	return c
}

// SetIdentity creates (if needed) and attaches <user-dir>/name as a
// writable folder mount.
func (s *Storage) SetIdentity(userDir, name string) error {
	path := filepath.Join(userDir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return apperr.Wrap(apperr.ErrResource, path, err)
	}
	fm := NewFolderMount(path, true)
	s.identity = fm
	s.mounts = append(s.mounts, fm)
	return nil
}

// Open probes mounts in attach order and returns the first hit.
func (s *Storage) Open(name string) (Handle, error) {
	clean, err := normalize(name)
	if err != nil {
		return nil, err
	}
	for _, m := range s.mounts {
		h, err := m.Open(clean)
		if err == nil {
			return h, nil
		}
	}
	return nil, apperr.Wrap(apperr.ErrNotFound, name, nil)
}

// Load resolves name through the resource cache, decoding it as typ on
// a cache miss. A cache hit resets the resource's age to zero and
// returns the same pointer (spec §8 round-trip property).
func (s *Storage) Load(name string, typ ResourceType) (*Resource, error) {
	clean, err := normalize(name)
	if err != nil {
		return nil, err
	}
	if r, ok := s.cache.get(clean); ok {
		r.age = 0
		return r, nil
	}

	h, err := s.Open(clean)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	r := &Resource{Name: clean, Type: typ}
	switch typ {
	case ResourceString:
		data, err := ReadAll(h)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrDecode, clean, err)
		}
		r.Text = string(data)
	case ResourceBlob:
		data, err := ReadAll(h)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrDecode, clean, err)
		}
		r.Blob = data
	case ResourceImage:
		data, err := ReadAll(h)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrDecode, clean, err)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrDecode, clean, err)
		}
		rgba := toRGBA(img)
		r.Image = &Image{Width: rgba.Rect.Dx(), Height: rgba.Rect.Dy(), Pixels: rgba.Pix}
	}

	s.cache.put(clean, r)
	if s.log != nil {
		s.log.Logf(logging.ComponentStorage, logging.LevelDebug, "loaded %s (%d entries cached)", clean, s.cache.len())
	}
	s.evictIfOverCap()
	return r, nil
}

// Store writes a resource to the writable identity folder, raw for
// string/blob, PNG for image. It does not update the cache (preserved
// from the source behavior, per spec §9 Open Questions).
func (s *Storage) Store(name string, r *Resource) error {
	if s.identity == nil {
		return apperr.Wrap(apperr.ErrResource, "no identity folder attached", nil)
	}
	path := s.identity.WritePath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperr.Wrap(apperr.ErrResource, path, err)
	}
	switch r.Type {
	case ResourceString:
		return os.WriteFile(path, []byte(r.Text), 0o644)
	case ResourceBlob:
		return os.WriteFile(path, r.Blob, 0o644)
	case ResourceImage:
		img := &image.RGBA{
			Pix:    r.Image.Pixels,
			Stride: r.Image.Width * 4,
			Rect:   image.Rect(0, 0, r.Image.Width, r.Image.Height),
		}
		f, err := os.Create(path)
		if err != nil {
			return apperr.Wrap(apperr.ErrResource, path, err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return apperr.Wrap(apperr.ErrResource, path, err)
		}
		return nil
	}
	return apperr.Wrap(apperr.ErrResource, "unknown resource type", nil)
}

// Flush manually releases every cached resource.
func (s *Storage) Flush() { s.cache.clear() }

// Update ages every cached resource by delta and releases any that
// exceed the age limit (spec §4.1 automatic aging).
func (s *Storage) Update(delta time.Duration) {
	s.cache.age(delta, s.ageLimit)
}

func (s *Storage) evictIfOverCap() {
	if s.cacheCap <= 0 {
		return
	}
	for s.cache.len() > s.cacheCap {
		if !s.cache.evictOldest() {
			break
		}
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if r, ok := img.(*image.RGBA); ok {
		return r
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
