// Package pool provides pooled byte buffers for transient encode staging,
// such as Base64-armoring payloads before they are written to disk.
package pool

import (
	"io"
	"sync"
)

const (
	// PayloadBufferDefaultSize is the initial capacity of pooled buffers.
	// Most payloads are small; 16KiB covers thousands of packed values.
	PayloadBufferDefaultSize = 1024 * 16 // 16KiB

	// PayloadBufferMaxThreshold is the largest buffer the pool retains.
	// Bigger buffers are dropped after use to avoid memory bloat.
	PayloadBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a reusable byte slice wrapper handed out by ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// SetLength sets the length of the buffer to n, growing the backing array if
// the capacity is insufficient.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 {
		panic("SetLength: negative length")
	}

	if n <= cap(bb.B) {
		bb.B = bb.B[:n]
		return
	}

	grown := make([]byte, n)
	copy(grown, bb.B)
	bb.B = grown
}

// Write appends the contents of data to the buffer, growing it as needed.
// It implements io.Writer and never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers backed by sync.Pool.
//
// A maximum size threshold prevents the pool from retaining overly large
// buffers produced by occasional oversized payloads.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers with the specified
// initial capacity. Buffers whose capacity grew past maxThreshold are not
// retained; a maxThreshold of 0 disables the limit.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var payloadDefaultPool = NewByteBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)

// GetPayloadBuffer retrieves a ByteBuffer from the default payload pool.
func GetPayloadBuffer() *ByteBuffer {
	return payloadDefaultPool.Get()
}

// PutPayloadBuffer returns a ByteBuffer to the default payload pool.
func PutPayloadBuffer(bb *ByteBuffer) {
	payloadDefaultPool.Put(bb)
}
