package dom

import (
	"sort"
	"time"
)

// Clock is the document time source. Tests inject a fake one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// TimerID identifies a pending timer. The zero value is never issued.
type TimerID int

type timer struct {
	id  TimerID
	due time.Time
	fn  func()
}

type timerQueue struct {
	next    TimerID
	pending []*timer
}

// SetTimeout schedules fn to run once the clock passes now+delay. Timers only
// fire from RunTimers, keeping execution on the caller's goroutine.
func (d *Document) SetTimeout(delay time.Duration, fn func()) TimerID {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	d.timers.next++
	t := &timer{id: d.timers.next, due: d.clock.Now().Add(delay), fn: fn}
	d.timers.pending = append(d.timers.pending, t)
	return t.id
}

// ClearTimeout cancels a pending timer. Unknown or fired ids are ignored.
func (d *Document) ClearTimeout(id TimerID) {
	if id == 0 {
		return
	}
	for i, t := range d.timers.pending {
		if t.id == id {
			d.timers.pending = append(d.timers.pending[:i], d.timers.pending[i+1:]...)
			return
		}
	}
}

// PendingTimers returns how many timers are scheduled.
func (d *Document) PendingTimers() int { return len(d.timers.pending) }

// NextTimer returns the due time of the earliest pending timer.
func (d *Document) NextTimer() (time.Time, bool) {
	if len(d.timers.pending) == 0 {
		return time.Time{}, false
	}
	earliest := d.timers.pending[0].due
	for _, t := range d.timers.pending[1:] {
		if t.due.Before(earliest) {
			earliest = t.due
		}
	}
	return earliest, true
}

// RunTimers fires every timer whose due time has passed, earliest first and
// in scheduling order for ties. Timers scheduled by a callback that are
// already due also run. It returns the number of timers fired.
func (d *Document) RunTimers() int {
	fired := 0
	for {
		now := d.clock.Now()
		due := make([]*timer, 0, len(d.timers.pending))
		for _, t := range d.timers.pending {
			if !t.due.After(now) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.SliceStable(due, func(i, j int) bool {
			if due[i].due.Equal(due[j].due) {
				return due[i].id < due[j].id
			}
			return due[i].due.Before(due[j].due)
		})
		t := due[0]
		d.ClearTimeout(t.id)
		t.fn()
		fired++
	}
	if fired > 0 {
		d.FlushMicrotasks()
	}
	return fired
}
