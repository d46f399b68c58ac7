package cache

import (
	"time"

	"go.uber.org/zap"
)

// Admission is a time-windowed admission controller: each key may be admitted
// at most limit times per window. Windows start at the first request for a
// key. At most maxKeys windows are tracked; the oldest is dropped when full.
type Admission struct {
	limit   int
	windows *UnifiedCache[int]
}

// NewAdmission builds an admission controller. limit <= 0 admits everything.
func NewAdmission(limit int, window time.Duration, maxKeys int, clock Clock, logger *zap.Logger) *Admission {
	return &Admission{
		limit:   limit,
		windows: NewUnifiedCache[int](window, maxKeys, "admission", clock, logger),
	}
}

// Admit records a request for key and reports whether it is within the limit.
func (a *Admission) Admit(key string) bool {
	if a.limit <= 0 {
		return true
	}
	admitted := false
	a.windows.Update(key, func(count int, _ bool) int {
		if count >= a.limit {
			return count
		}
		admitted = true
		return count + 1
	})
	return admitted
}

// Remaining returns how many more requests key may make in its current window.
func (a *Admission) Remaining(key string) int {
	if a.limit <= 0 {
		return -1
	}
	count, _ := a.windows.Get(key)
	if count >= a.limit {
		return 0
	}
	return a.limit - count
}

// Tracked returns the number of keys currently held.
func (a *Admission) Tracked() int {
	return a.windows.Size()
}
