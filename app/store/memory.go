package store

// MemoryBackend holds the blob in memory. Used by tests and useful for
// running the server without any durable state.
type MemoryBackend struct {
	data    []byte
	present bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load() ([]byte, bool, error) {
	if !b.present {
		return nil, false, nil
	}
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return cp, true, nil
}

func (b *MemoryBackend) Save(data []byte) error {
	b.data = make([]byte, len(data))
	copy(b.data, data)
	b.present = true
	return nil
}
