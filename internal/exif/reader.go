package exif

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned when a read runs past the end of the data.
var ErrShortBuffer = errors.New("exif: short buffer")

// Reader is a cursor over a byte slice with typed reads in a
// switchable byte order.
type Reader struct {
	buf   []byte
	off   int
	order binary.ByteOrder
}

// NewReader returns a Reader over buf starting at offset 0.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, order: order}
}

// SetOrder changes the byte order of subsequent multi-byte reads.
func (r *Reader) SetOrder(order binary.ByteOrder) { r.order = order }

// Offset returns the cursor position.
func (r *Reader) Offset() int { return r.off }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.buf) - r.off }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.buf) {
		return ErrShortBuffer
	}
	r.off = off
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || n > r.Len() {
		return ErrShortBuffer
	}
	r.off += n
	return nil
}

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, ErrShortBuffer
	}
	b := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// Byte reads one byte.
func (r *Reader) Byte() (byte, error) {
	if r.Len() < 1 {
		return 0, ErrShortBuffer
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// Uint16 reads a 16-bit value.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// Uint32 reads a 32-bit value.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// Sub returns a Reader over the next n bytes and advances past them.
// The sub-reader's offsets are relative to its own start.
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.Bytes(n)
	if err != nil {
		return nil, err
	}
	return NewReader(b, r.order), nil
}
