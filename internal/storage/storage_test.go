package storage

import (
	"testing"
	"time"
)

func TestInjectRawRoundTrip(t *testing.T) {
	s := New(nil)
	cache := s.MountCache()
	cache.InjectRaw("greeting.txt", []byte("hello"))

	h, err := s.Open("greeting.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()

	data, err := ReadAll(h)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("got %q, want %q", data, "hello")
	}
}

func TestLoadMemoizesPointer(t *testing.T) {
	s := New(nil)
	cache := s.MountCache()
	cache.InjectRaw("a.txt", []byte("hi"))

	r1, err := s.Load("a.txt", ResourceString)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r2, err := s.Load("a.txt", ResourceString)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r1 != r2 {
		t.Fatalf("Load returned different pointers across calls without a flush")
	}
}

func TestAgingReleasesResourceButReloadSucceeds(t *testing.T) {
	s := New(nil)
	s.SetAgeLimit(10 * time.Second)
	cache := s.MountCache()
	cache.InjectRaw("a.txt", []byte("hi"))

	r1, err := s.Load("a.txt", ResourceString)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s.Update(11 * time.Second)

	if _, ok := s.cache.get("a.txt"); ok {
		t.Fatalf("expected cache entry to be aged out")
	}

	r2, err := s.Load("a.txt", ResourceString)
	if err != nil {
		t.Fatalf("reload after aging: %v", err)
	}
	if r2 == nil || r2.Text != "hi" {
		t.Fatalf("reloaded resource has wrong content: %+v", r2)
	}
	_ = r1 // the old pointer must not be dereferenced after this point
}

func TestNormalizeRejectsTraversalAndAbsolute(t *testing.T) {
	cases := []string{"../etc/passwd", "/etc/passwd", "a/../../b"}
	for _, c := range cases {
		if _, err := normalize(c); err == nil {
			t.Errorf("normalize(%q) should have failed", c)
		}
	}
}

func TestCacheCapEvictsOldest(t *testing.T) {
	s := New(nil)
	s.SetCacheCap(2)
	cache := s.MountCache()
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		cache.InjectRaw(name, []byte(name))
		if _, err := s.Load(name, ResourceString); err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
	}
	if s.cache.len() > 2 {
		t.Fatalf("cache size %d exceeds cap of 2", s.cache.len())
	}
}
