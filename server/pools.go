package server

import (
	"sync"

	"github.com/djherbis/buffer"
)

var (
	bytesPool  = sync.Pool{New: func() interface{} { s := make([]byte, defaultBufferSize); return &s }}
	bufferPool = buffer.NewMemPoolAt(int64(defaultBufferSize))
)
