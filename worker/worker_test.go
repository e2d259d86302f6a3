package worker

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryJob(t *testing.T) {
	p := New(4)
	defer p.Close()

	var n atomic.Int32
	for i := 0; i < 100; i++ {
		p.Submit(func() { n.Add(1) })
	}
	p.Wait()
	if n.Load() != 100 {
		t.Fatalf("expected 100 jobs to run, got %d", n.Load())
	}
}

func TestPoolSurvivesPanics(t *testing.T) {
	p := New(1)
	defer p.Close()

	var n atomic.Int32
	p.Submit(func() { panic("job failed") })
	p.Submit(func() { n.Add(1) })
	p.Wait()
	if n.Load() != 1 {
		t.Fatalf("expected the job after a panic to run, got %d", n.Load())
	}
}
