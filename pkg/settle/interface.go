// Package settle runs one-shot deferred tasks. Tasks cannot be cancelled;
// anything they touch must tolerate having gone away by the time they fire.
package settle

import (
	"time"
)

type Scheduler interface {
	// Schedule runs fn once, no sooner than after. Key names the task for
	// logging & test inspection, it need not be unique.
	Schedule(key string, after time.Duration, fn func())
}
