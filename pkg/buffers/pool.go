// Package buffers provides a pooled source of frame buffers for callers
// that build or relay frames on a hot path, keeping repeated BuildFrame
// calls from churning the garbage collector.
package buffers

import (
	"sync"
)

const (
	// MaxFrameSize is the largest frame this library expects to handle: a
	// frame rides inside a single Ethernet payload.
	MaxFrameSize = 1500
)

// BufferPool maintains a pool of equally-sized byte slices.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a pool handing out buffers of the given size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, size)
				return &buf
			},
		},
		size: size,
	}
}

// Size returns the length of the buffers this pool hands out.
func (p *BufferPool) Size() int {
	return p.size
}

// Get retrieves a buffer from the pool, sized to the pool's buffer size.
// Contents are unspecified; BuildFrame overwrites every byte up front.
func (p *BufferPool) Get() []byte {
	buffer := *(p.pool.Get().(*[]byte))
	if cap(buffer) < p.size {
		// Unlikely but possible if the buffer was resized by a caller.
		buffer = make([]byte, p.size)
	} else {
		buffer = buffer[:p.size]
	}
	return buffer
}

// Put returns a buffer to the pool. Undersized buffers are dropped.
func (p *BufferPool) Put(buffer []byte) {
	if buffer == nil || cap(buffer) < p.size {
		return
	}
	buffer = buffer[:p.size]
	p.pool.Put(&buffer)
}

// FramePool hands out maximum-size frame buffers.
var FramePool = NewBufferPool(MaxFrameSize)
