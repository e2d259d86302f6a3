// Package debug provides observers for inspecting movement transitions.
package debug

import (
	"slices"
	"sync"

	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/utils"
)

// DefaultLogSize is the number of transitions a TransitionLog keeps by default.
const DefaultLogSize = 64

// TransitionLog keeps the most recent transitions in a ring buffer. It may be read from
// other goroutines while the controller writes to it.
type TransitionLog struct {
	mu    sync.Mutex
	queue *utils.CircularQueue[movement.Transition]
	total uint64
}

// NewTransitionLog returns a log keeping at most size transitions.
func NewTransitionLog(size int) *TransitionLog {
	if size <= 0 {
		size = DefaultLogSize
	}
	return &TransitionLog{queue: utils.NewCircularQueue[movement.Transition](size, nil)}
}

func (l *TransitionLog) OnTransition(t movement.Transition) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.queue.Append(t)
	l.total++
}

// All returns the kept transitions from oldest to newest.
func (l *TransitionLog) All() []movement.Transition {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Collect(l.queue.Iter())
}

// Latest returns at most n of the newest transitions, oldest first.
func (l *TransitionLog) Latest(n int) []movement.Transition {
	all := l.All()
	if n < len(all) {
		all = all[len(all)-max(n, 0):]
	}
	return all
}

// Total returns the number of transitions ever recorded.
func (l *TransitionLog) Total() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}
