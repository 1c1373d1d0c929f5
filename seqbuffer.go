package groupz

// SequentialBuffer accumulates elements in arrival order and serves them
// back as fixed-size chunks. It is the plain in-memory ChunkBuffer
// implementation used by SlidingBlock; packed numeric backings can replace
// it behind the same interface.
type SequentialBuffer[T any] struct {
	buf  []T
	size int
}

// NewSequentialBuffer creates a buffer that slices its contents into chunks
// of chunkSize elements. chunkSize must be > 0.
func NewSequentialBuffer[T any](chunkSize int) (*SequentialBuffer[T], error) {
	if chunkSize <= 0 {
		return nil, newConfigError("sequential-buffer", "chunk size", chunkSize, "must be positive")
	}
	return &SequentialBuffer[T]{size: chunkSize}, nil
}

// Put appends a run of elements to the buffer.
func (b *SequentialBuffer[T]) Put(items []T) {
	b.buf = append(b.buf, items...)
}

// Chunks reports how many complete chunks are currently buffered.
func (b *SequentialBuffer[T]) Chunks() int {
	return len(b.buf) / b.size
}

// TryNext removes and returns the oldest full chunk, or reports false when
// less than one chunk is buffered. The returned slice is owned by the
// caller.
func (b *SequentialBuffer[T]) TryNext() ([]T, bool) {
	if len(b.buf) < b.size {
		return nil, false
	}
	chunk := make([]T, b.size)
	copy(chunk, b.buf)
	b.buf = b.buf[:copy(b.buf, b.buf[b.size:])]
	return chunk, true
}

// Drain returns and clears all buffered elements, including any partial
// trailing chunk.
func (b *SequentialBuffer[T]) Drain() []T {
	out := b.buf
	b.buf = nil
	return out
}
