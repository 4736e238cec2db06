package pacman

import "time"

// periodicTask is a fixed-rate schedule read from an injectable clock.
// It never runs anything itself: the owner polls due() from its own tick,
// so the task shares the tick's timeline. Missed periods are coalesced
// into a single firing.
type periodicTask struct {
	interval time.Duration
	next     time.Time
	running  bool
}

// start (re)arms the task so the first firing is one interval after now.
func (t *periodicTask) start(now time.Time) {
	t.next = now.Add(t.interval)
	t.running = true
}

// stop disarms the task. Nothing is remembered about the elapsed wait.
func (t *periodicTask) stop() {
	t.running = false
}

// due reports whether the task should fire at now and schedules the next
// firing when it does.
func (t *periodicTask) due(now time.Time) bool {
	if !t.running || t.interval <= 0 || now.Before(t.next) {
		return false
	}
	for !now.Before(t.next) {
		t.next = t.next.Add(t.interval)
	}
	return true
}
