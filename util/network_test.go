package util

import (
	"fmt"
	"io"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAddr(t *testing.T) {
	assert.Equal(t, "1.2.3.4:22", FormatAddr("1.2.3.4", "22"))
	assert.Equal(t, "[::1]:443", FormatAddr("::1", "443"))
	assert.Equal(t, "example.com:http", FormatAddr("example.com", "http"))
}

func TestRequireNumericHost(t *testing.T) {
	assert.NoError(t, RequireNumericHost("192.168.1.1"))
	assert.NoError(t, RequireNumericHost("::1"))
	assert.Error(t, RequireNumericHost("not-an-ip"))
}

func TestIsHarmless(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"eof", io.EOF, true},
		{"closed", net.ErrClosed, true},
		{"closed pipe", io.ErrClosedPipe, true},
		{"deadline", os.ErrDeadlineExceeded, true},
		{"wrapped eof", fmt.Errorf("read: %w", io.EOF), true},
		{"op closed", &net.OpError{Op: "read", Err: net.ErrClosed}, true},
		{"unexpected eof", io.ErrUnexpectedEOF, false},
		{"other", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHarmless(tt.err))
		})
	}
}

func TestBufPool_RoundTrip(t *testing.T) {
	buf := GetBuf()
	if buf == nil {
		t.Fatal("GetBuf returned nil")
	}
	assert.Len(t, *buf, ChunkSize)

	(*buf)[0] = 0xFF
	PutBuf(buf)

	// Get another buffer; it may or may not be the same one.
	buf2 := GetBuf()
	assert.NotNil(t, buf2)
	PutBuf(buf2)
}

func TestPutBuf_Nil(t *testing.T) {
	// Should not panic.
	PutBuf(nil)
}
