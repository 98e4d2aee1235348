package storage

// Mount is an attached provider answering name→stream queries. Mounts
// are probed in attach order; the first hit wins.
type Mount interface {
	// Open resolves an already-normalized name to a streaming handle.
	Open(name string) (Handle, error)
	// Writable reports whether Store may write into this mount.
	Writable() bool
	// Description identifies the mount for logging.
	Description() string
}
