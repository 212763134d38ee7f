package ringbuf

import "errors"

var (
	// ErrInvalidCapacity is returned when a buffer is created with a non-positive capacity.
	ErrInvalidCapacity = errors.New("ringbuf: capacity must be positive")

	// ErrFull is returned by Bytes when incoming data does not fit.
	ErrFull = errors.New("ringbuf: buffer full")
)
