package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers for encoding fixed binary layouts.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}
