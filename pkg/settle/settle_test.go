package settle

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualAdvance(t *testing.T) {
	m := NewManual()
	fired := []string{}

	m.Schedule("b", 2*time.Second, func() { fired = append(fired, "b") })
	m.Schedule("a", time.Second, func() { fired = append(fired, "a") })
	m.Schedule("c", 2*time.Second, func() { fired = append(fired, "c") })

	assert.Equal(t, []string{"a", "b", "c"}, m.Pending())

	m.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Empty(t, m.Pending())
}

func TestManualRunAll(t *testing.T) {
	m := NewManual()
	count := 0

	m.Schedule("x", time.Hour, func() {
		count++
		m.Schedule("y", time.Hour, func() { count++ })
	})

	m.RunAll()
	assert.Equal(t, 2, count)
	assert.Empty(t, m.Pending())
}

func TestTimerWait(t *testing.T) {
	tm := NewTimer()
	var count int64

	for i := 0; i < 5; i++ {
		tm.Schedule("t", 10*time.Millisecond, func() { atomic.AddInt64(&count, 1) })
	}
	tm.Schedule("boom", time.Millisecond, func() { panic("boom") })

	tm.Wait()
	assert.Equal(t, int64(5), atomic.LoadInt64(&count))
	assert.Equal(t, 0, tm.Pending())
}
