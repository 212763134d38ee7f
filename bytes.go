package ringbuf

import "io"

var (
	_ io.Reader     = (*Bytes)(nil)
	_ io.WriterTo   = (*Bytes)(nil)
	_ io.Writer     = (*Bytes)(nil)
	_ io.ReaderFrom = (*Bytes)(nil)
)

// Bytes adapts a byte ring buffer to the io interfaces without ever blocking.
// Writes are all-or-nothing; reads return io.EOF once the buffer is drained.
type Bytes struct {
	buf *Buffer[byte]
}

// NewBytes creates a byte ring buffer holding at most size bytes.
func NewBytes(size int) (*Bytes, error) {
	buf, err := New[byte](size, 0)
	if err != nil {
		return nil, err
	}
	return &Bytes{buf: buf}, nil
}

// Write implements io.Writer. It stores all of p or returns ErrFull.
func (b *Bytes) Write(p []byte) (int, error) {
	if !b.buf.WriteSlice(p) {
		return 0, ErrFull
	}
	return len(p), nil
}

// Read implements io.Reader.
func (b *Bytes) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.buf.IsEmpty() {
		return 0, io.EOF
	}
	return b.buf.ReadInto(p), nil
}

// WriteTo implements io.WriterTo by draining the buffer into w.
// Bytes that w does not accept stay in the buffer.
func (b *Bytes) WriteTo(w io.Writer) (n int64, err error) {
	for !b.buf.IsEmpty() {
		chunk := b.buf.usedSpan()
		wn, wErr := w.Write(chunk)
		if wn < 0 || wn > len(chunk) {
			wn = 0
			if wErr == nil {
				wErr = io.ErrShortWrite
			}
		}
		n += int64(wn)
		if wn > 0 {
			b.buf.advanceRead(wn)
		}
		if wErr != nil {
			return n, wErr
		}
		if wn != len(chunk) {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// maxConsecutiveEmptyReads bounds how many (0, nil) reads ReadFrom tolerates.
const maxConsecutiveEmptyReads = 100

// ReadFrom implements io.ReaderFrom by filling the free space from r until
// r reports io.EOF. If the buffer fills first, ReadFrom returns ErrFull; the
// single byte read from r to detect pending data is discarded.
func (b *Bytes) ReadFrom(r io.Reader) (n int64, err error) {
	emptyReads := 0
	for {
		span := b.buf.freeSpan()
		if len(span) == 0 {
			return n, checkExhausted(r)
		}
		rn, rErr := r.Read(span)
		if rn < 0 || rn > len(span) {
			rn = 0
		}
		b.buf.commitWrite(rn)
		n += int64(rn)
		if rErr != nil {
			if rErr != io.EOF {
				return n, rErr
			}
			return n, nil
		}
		if rn > 0 {
			emptyReads = 0
			continue
		}
		emptyReads++
		if emptyReads >= maxConsecutiveEmptyReads {
			return n, io.ErrNoProgress
		}
	}
}

// checkExhausted returns nil if r has nothing left and ErrFull otherwise.
func checkExhausted(r io.Reader) error {
	var scratch [1]byte
	for range maxConsecutiveEmptyReads {
		rn, err := r.Read(scratch[:])
		if rn > 0 {
			return ErrFull
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return io.ErrNoProgress
}

// Len returns the number of unread bytes.
func (b *Bytes) Len() int {
	return b.buf.Len()
}

// Available returns the number of bytes that can still be written.
func (b *Bytes) Available() int {
	return b.buf.Available()
}

// Cap returns the fixed capacity in bytes.
func (b *Bytes) Cap() int {
	return b.buf.Cap()
}

// Reset discards all unread bytes.
func (b *Bytes) Reset() {
	b.buf.Reset()
}
