// Copyright 2025 UAForge Authors. All rights reserved.

package ua

import (
	"sync"

	"github.com/djherbis/buffer"
)

const defaultBufferSize = 64 * 1024

// bytesPool is a pool of byte slices
var bytesPool = sync.Pool{New: func() any { return make([]byte, defaultBufferSize) }}

// bufferPool is a pool of capacity buffers
var bufferPool = buffer.NewMemPoolAt(int64(defaultBufferSize))
