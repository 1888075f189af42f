package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsQueuedTasks(t *testing.T) {
	p := NewPool(3, 10)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		require.True(t, p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		}))
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolRejectsAfterStop(t *testing.T) {
	p := NewPool(0, -1)
	p.Stop()
	p.Stop()
	require.False(t, p.Submit(func() { t.Fatal("must not run") }))
}

func TestPoolDropsWhenFull(t *testing.T) {
	p := NewPool(1, 0)
	release := make(chan struct{})
	started := make(chan struct{})

	// 佔住唯一的 worker，使無緩衝佇列無法再接收
	for !p.Submit(func() { close(started); <-release }) {
	}
	<-started
	require.False(t, p.Submit(func() {}))

	close(release)
	p.Stop()
}

func TestInline(t *testing.T) {
	var n int32
	var p Pool = Inline{}
	require.True(t, p.Submit(func() { atomic.AddInt32(&n, 1) }))
	require.True(t, p.Submit(nil))
	p.Stop()
	require.EqualValues(t, 1, n)
}
