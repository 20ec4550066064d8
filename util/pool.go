package util

import "sync"

// ChunkSize is the size of one inbound read (32 KiB).
const ChunkSize = 32 * 1024

// BufPool hands out chunk buffers for stream reads.  Each reading loop
// holds one buffer for its whole lifetime and never shares it.
var BufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, ChunkSize)
		return &buf
	},
}

// GetBuf retrieves a buffer from the pool.  Callers must return it
// with [PutBuf] when finished.
func GetBuf() *[]byte {
	return BufPool.Get().(*[]byte)
}

// PutBuf returns a buffer to the pool for reuse.
func PutBuf(buf *[]byte) {
	if buf == nil {
		return
	}
	BufPool.Put(buf)
}
