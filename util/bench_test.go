package util

import (
	"io"
	"testing"
)

// BenchmarkBufPool measures the allocation advantage of sync.Pool
// buffer reuse versus fresh allocation.
func BenchmarkBufPool(b *testing.B) {
	b.Run("pool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			buf := GetBuf()
			_ = (*buf)[0]
			PutBuf(buf)
		}
	})
	b.Run("alloc", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			buf := make([]byte, ChunkSize)
			_ = buf[0]
		}
	})
}

// BenchmarkLogger_Disabled measures the cost of a filtered-out call.
func BenchmarkLogger_Disabled(b *testing.B) {
	l := NewLogger(0)
	l.SetOutput(io.Discard)
	for i := 0; i < b.N; i++ {
		l.Debug("chunk %d", i)
	}
}
