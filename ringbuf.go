package ringbuf

// Buffer is a fixed-capacity FIFO ring buffer.
// The empty flag tells a full buffer apart from an empty one when both
// cursors point at the same slot, so every allocated slot is usable.
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	store    []T
	readPos  int
	writePos int
	empty    bool
}

// New creates a buffer holding at most capacity elements.
// Every slot is initialised to fill, which is never returned as content.
func New[T any](capacity int, fill T) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	store := make([]T, capacity)
	for i := range store {
		store[i] = fill
	}

	return &Buffer[T]{
		store: store,
		empty: true,
	}, nil
}

// FromState builds a buffer directly over store with the given cursors.
// It is meant for tests and debugging: the caller must make empty agree with
// the cursors. It panics if store is empty or a cursor is out of range.
func FromState[T any](store []T, readPos, writePos int, empty bool) *Buffer[T] {
	if len(store) == 0 {
		panic("ringbuf: store must not be empty")
	}
	if readPos < 0 || readPos >= len(store) {
		panic("ringbuf: readPos out of range")
	}
	if writePos < 0 || writePos >= len(store) {
		panic("ringbuf: writePos out of range")
	}

	return &Buffer[T]{
		store:    store,
		readPos:  readPos,
		writePos: writePos,
		empty:    empty,
	}
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.readPos == b.writePos && b.empty
}

// IsFull reports whether the buffer holds Cap elements.
func (b *Buffer[T]) IsFull() bool {
	return b.readPos == b.writePos && !b.empty
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.store)
}

// Len returns the number of elements available to read.
func (b *Buffer[T]) Len() int {
	if b.IsEmpty() {
		return 0
	}
	if b.readPos < b.writePos {
		return b.writePos - b.readPos
	}
	return (len(b.store) - b.readPos) + b.writePos
}

// Available returns how many elements can be written before the buffer is full.
func (b *Buffer[T]) Available() int {
	if b.IsFull() {
		return 0
	}
	if b.writePos < b.readPos {
		return b.readPos - b.writePos
	}
	return (len(b.store) - b.writePos) + b.readPos
}

// HasCapacity reports whether n more elements fit.
func (b *Buffer[T]) HasCapacity(n int) bool {
	if b.IsFull() {
		return false
	}
	return b.Available() >= n
}

// Write appends v. It returns false, leaving the buffer untouched, when full.
func (b *Buffer[T]) Write(v T) bool {
	if b.IsFull() {
		return false
	}

	b.store[b.writePos] = v
	b.writePos = (b.writePos + 1) % len(b.store)
	b.empty = false

	return true
}

// Read removes and returns the oldest element.
// ok is false when the buffer is empty.
func (b *Buffer[T]) Read() (v T, ok bool) {
	if b.IsEmpty() {
		return v, false
	}

	v = b.store[b.readPos]
	b.advanceRead(1)

	return v, true
}

// Peek returns the oldest element without removing it.
func (b *Buffer[T]) Peek() (v T, ok bool) {
	if b.IsEmpty() {
		return v, false
	}
	return b.store[b.readPos], true
}

// WriteSlice appends all of src or nothing.
// It returns false when src does not fit in the remaining capacity.
func (b *Buffer[T]) WriteSlice(src []T) bool {
	n := len(src)
	if !b.HasCapacity(n) {
		return false
	}
	if n == 0 {
		return true
	}

	firstChunk := copy(b.store[b.writePos:], src)
	copy(b.store, src[firstChunk:])

	b.writePos = (b.writePos + n) % len(b.store)
	b.empty = false

	return true
}

// ReadAll drains the buffer and returns its contents in read order.
// The returned slice is newly allocated; it is empty, not nil, when
// there is nothing to read.
func (b *Buffer[T]) ReadAll() []T {
	if b.IsEmpty() {
		return []T{}
	}

	out := make([]T, b.Len())
	b.copyOut(out)

	b.readPos = b.writePos
	b.empty = true

	return out
}

// ReadInto moves up to len(dst) elements into dst and returns the count.
func (b *Buffer[T]) ReadInto(dst []T) int {
	toRead := min(b.Len(), len(dst))
	if toRead == 0 {
		return 0
	}

	b.copyOut(dst[:toRead])
	b.advanceRead(toRead)

	return toRead
}

// Reset discards all content. Slots keep their stale values.
func (b *Buffer[T]) Reset() {
	b.readPos = 0
	b.writePos = 0
	b.empty = true
}

// copyOut fills dst with the first len(dst) unread elements without
// moving the read cursor. len(dst) must not exceed Len.
func (b *Buffer[T]) copyOut(dst []T) {
	bufLen := len(b.store)
	n := len(dst)

	if b.readPos+n <= bufLen {
		copy(dst, b.store[b.readPos:b.readPos+n])
		return
	}

	firstChunk := copy(dst, b.store[b.readPos:])
	copy(dst[firstChunk:], b.store[:n-firstChunk])
}

func (b *Buffer[T]) advanceRead(n int) {
	b.readPos = (b.readPos + n) % len(b.store)
	if b.readPos == b.writePos {
		b.empty = true
	}
}

// freeSpan returns the contiguous writable region starting at the write cursor.
func (b *Buffer[T]) freeSpan() []T {
	if b.IsFull() {
		return nil
	}
	if b.writePos < b.readPos {
		return b.store[b.writePos:b.readPos]
	}
	return b.store[b.writePos:]
}

// usedSpan returns the contiguous readable region starting at the read cursor.
func (b *Buffer[T]) usedSpan() []T {
	if b.IsEmpty() {
		return nil
	}
	if b.readPos < b.writePos {
		return b.store[b.readPos:b.writePos]
	}
	return b.store[b.readPos:]
}

// commitWrite marks n elements written directly into freeSpan as content.
func (b *Buffer[T]) commitWrite(n int) {
	if n == 0 {
		return
	}
	b.writePos = (b.writePos + n) % len(b.store)
	b.empty = false
}
