// Package ringbuf provides a fixed-capacity FIFO ring buffer that never reallocates
// and never overwrites unread data. Writes that do not fit are rejected as a whole,
// so producers can retry or drop without leaving a partial batch behind.
//
// Buffers are not safe for concurrent use; callers sharing one must serialize access.
package ringbuf
