package settle

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// check it meets the interface
var _ Scheduler = &Timer{}

// Timer fires tasks off the wall clock.
type Timer struct {
	wg      sync.WaitGroup
	pending int64
}

func NewTimer() *Timer {
	return &Timer{}
}

func (t *Timer) Schedule(key string, after time.Duration, fn func()) {
	t.wg.Add(1)
	atomic.AddInt64(&t.pending, 1)

	time.AfterFunc(after, func() {
		defer t.wg.Done()
		defer atomic.AddInt64(&t.pending, -1)
		defer func() {
			if r := recover(); r != nil {
				log.Printf("settle: task %s panicked: %v\n", key, r)
			}
		}()
		fn()
	})
}

// Pending returns how many tasks have not yet finished.
func (t *Timer) Pending() int {
	return int(atomic.LoadInt64(&t.pending))
}

// Wait blocks until every task scheduled so far has run. It must not be
// called while another goroutine may still Schedule.
func (t *Timer) Wait() {
	t.wg.Wait()
}
