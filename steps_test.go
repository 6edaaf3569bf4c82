package main

import (
	"testing"
	"time"
)

func TestStepInterval_Clamped(t *testing.T) {
	cases := []struct {
		speed int
		want  time.Duration
	}{
		{1, 580 * time.Millisecond},
		{3, 340 * time.Millisecond},
		{4, 220 * time.Millisecond},
		{5, 150 * time.Millisecond}, // 100ms clamped up
		{9, 150 * time.Millisecond},
		{0, 700 * time.Millisecond},
		{-3, 700 * time.Millisecond}, // 1060ms clamped down
	}
	for _, tc := range cases {
		if got := stepInterval(tc.speed); got != tc.want {
			t.Errorf("stepInterval(%d) = %v, want %v", tc.speed, got, tc.want)
		}
	}
}

// newTickingSimulator returns a simulator adding 4 steps per tick (draw 0)
// and a channel that receives the running total after each tick.
func newTickingSimulator() (*stepSimulator, chan int) {
	ticks := make(chan int, 1)
	s := newStepSimulator(&seqRand{vals: []int{0}})
	s.onTick = func(steps int) {
		select {
		case ticks <- steps:
		default:
		}
	}
	return s, ticks
}

func waitTick(t *testing.T, ticks chan int) int {
	t.Helper()
	select {
	case n := <-ticks:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a tick")
		return 0
	}
}

func TestStepSimulator_TicksAndStops(t *testing.T) {
	s, ticks := newTickingSimulator()
	defer s.stop()

	if got := s.start(5); got != 150*time.Millisecond {
		t.Errorf("start(5) interval = %v", got)
	}
	if n := waitTick(t, ticks); n%4 != 0 || n == 0 {
		t.Errorf("expected a positive multiple of 4 steps, got %d", n)
	}

	s.stop()
	stopped := s.snapshot()
	if stopped.Running {
		t.Error("snapshot reports running after stop")
	}

	time.Sleep(400 * time.Millisecond)
	if later := s.snapshot().Steps; later != stopped.Steps {
		t.Errorf("steps changed after stop: %d -> %d", stopped.Steps, later)
	}
}

// TestStepSimulator_StartReplaces verifies a second start cancels the first
// ticker: after one stop nothing keeps counting.
func TestStepSimulator_StartReplaces(t *testing.T) {
	s, ticks := newTickingSimulator()

	s.start(5)
	s.start(1)
	if snap := s.snapshot(); !snap.Running || snap.IntervalMS != 580 {
		t.Errorf("after restart snapshot = %+v, want running at 580ms", snap)
	}
	s.start(5)
	waitTick(t, ticks)

	s.stop()
	before := s.snapshot().Steps
	time.Sleep(400 * time.Millisecond)
	if after := s.snapshot().Steps; after != before {
		t.Errorf("a replaced ticker is still counting: %d -> %d", before, after)
	}
}

func TestStepSimulator_StopIdempotentAndReset(t *testing.T) {
	s, ticks := newTickingSimulator()

	s.stop()
	s.stop()

	s.start(5)
	waitTick(t, ticks)
	s.reset()

	snap := s.snapshot()
	if snap.Steps != 0 || snap.Running || snap.IntervalMS != 0 {
		t.Errorf("after reset snapshot = %+v, want zeroed and stopped", snap)
	}
	s.stop()
}

func TestStepSimulator_DefaultSpeed(t *testing.T) {
	s := newStepSimulator(&seqRand{})
	defer s.stop()
	if got := s.start(0); got != stepInterval(defaultStepSpeed) {
		t.Errorf("start(0) interval = %v, want %v", got, stepInterval(defaultStepSpeed))
	}
}
