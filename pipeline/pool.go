package pipeline

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// The fused path needs a scratch buffer per Normalize call. These come
// and go in bursts, so we pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &bytes.Buffer{}, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowBuffer returns a pooled scratch buffer, reset and ready for use.
func borrowBuffer() *bytes.Buffer {
	o, _ := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	buf := o.(*bytes.Buffer)
	return buf
}

// releaseBuffer resets buf and puts it back into the pool.
func releaseBuffer(buf *bytes.Buffer) {
	buf.Reset()
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
