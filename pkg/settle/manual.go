package settle

import (
	"sort"
	"sync"
	"time"
)

// check it meets the interface
var _ Scheduler = &Manual{}

// Manual is a Scheduler on a virtual clock that only moves when told to.
type Manual struct {
	lock  sync.Mutex
	now   time.Duration
	seq   int
	tasks []*task
}

type task struct {
	key string
	due time.Duration
	seq int
	fn  func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(key string, after time.Duration, fn func()) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.seq++
	m.tasks = append(m.tasks, &task{key: key, due: m.now + after, seq: m.seq, fn: fn})
}

// Advance moves the clock forward by d, running everything that falls due
// in due order.
func (m *Manual) Advance(d time.Duration) {
	m.lock.Lock()
	m.now += d
	m.lock.Unlock()

	for {
		next := m.pop(false)
		if next == nil {
			return
		}
		next.fn()
	}
}

// RunAll runs every outstanding task regardless of its due time.
func (m *Manual) RunAll() {
	for {
		next := m.pop(true)
		if next == nil {
			return
		}
		next.fn()
	}
}

// Pending returns the keys of tasks not yet run, soonest first.
func (m *Manual) Pending() []string {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.sortTasks()
	keys := make([]string, len(m.tasks))
	for i, t := range m.tasks {
		keys[i] = t.key
	}
	return keys
}

// pop removes & returns the soonest task that is due (or any, if all).
// Tasks run outside the lock so they may schedule more work.
func (m *Manual) pop(all bool) *task {
	m.lock.Lock()
	defer m.lock.Unlock()

	if len(m.tasks) == 0 {
		return nil
	}
	m.sortTasks()

	next := m.tasks[0]
	if !all && next.due > m.now {
		return nil
	}
	if all && next.due > m.now {
		m.now = next.due
	}
	m.tasks = m.tasks[1:]
	return next
}

func (m *Manual) sortTasks() {
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due == m.tasks[j].due {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].due < m.tasks[j].due
	})
}
