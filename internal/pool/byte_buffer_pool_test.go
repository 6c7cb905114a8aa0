package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	got := bb.Bytes()

	assert.Equal(t, []byte("hello"), got)
	assert.True(t, &bb.B[0] == &got[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_SetLength(t *testing.T) {
	t.Run("Within capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.SetLength(32)
		assert.Equal(t, 32, bb.Len())
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("Beyond capacity grows", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, []byte("abcd")...)
		bb.SetLength(100)
		assert.Equal(t, 100, bb.Len())
		assert.Equal(t, []byte("abcd"), bb.B[:4], "growth should preserve existing data")
	})

	t.Run("Negative panics", func(t *testing.T) {
		bb := NewByteBuffer(8)
		assert.Panics(t, func() { bb.SetLength(-1) })
	})
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = bb.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Equal(t, []byte("hello world"), bb.B)
	assert.Equal(t, 11, bb.Len())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.B = append(bb.B, []byte("test data")...)

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.B = append(bb.B, []byte("test")...)

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	assert.Equal(t, io.ErrShortWrite, err)
	assert.Equal(t, int64(0), n)
}

func TestGetPayloadBuffer(t *testing.T) {
	bb := GetPayloadBuffer()

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize)

	PutPayloadBuffer(bb)
}

func TestPutPayloadBuffer_NilBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		PutPayloadBuffer(nil)
	})
}

func TestPool_ResetsOnPut(t *testing.T) {
	bb := GetPayloadBuffer()
	_, _ = bb.Write([]byte("stale data"))

	PutPayloadBuffer(bb)

	assert.Equal(t, 0, len(bb.B), "PutPayloadBuffer should reset the buffer")

	bb2 := GetPayloadBuffer()
	assert.Equal(t, 0, len(bb2.B), "buffer from pool should be empty")
	PutPayloadBuffer(bb2)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.SetLength(10000) // grow past the 4096 threshold
	assert.Greater(t, cap(bb.B), 4096)

	p.Put(bb) // should be discarded

	bb2 := p.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096*2, "should not reuse buffer larger than threshold")
}

func TestByteBufferPool_MaxThreshold_Zero(t *testing.T) {
	p := NewByteBufferPool(1024, 0) // no limit

	bb := p.Get()
	bb.SetLength(1024 * 1024)
	p.Put(bb)

	bb2 := p.Get()
	assert.NotNil(t, bb2)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetPayloadBuffer()
				_, _ = bb.Write([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutPayloadBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := make([]byte, 1024)

	for b.Loop() {
		bb := GetPayloadBuffer()
		_, _ = bb.Write(data)
		PutPayloadBuffer(bb)
	}
}

// errorWriter is a writer that always returns an error.
type errorWriter struct {
	err error
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	return 0, ew.err
}
