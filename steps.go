package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultStepSpeed = 3

// stepInterval maps a speed (nominally 1-5) to the tick interval,
// 700-120*speed ms clamped to [150, 700].
func stepInterval(speed int) time.Duration {
	ms := min(max(700-speed*120, 150), 700)
	return time.Duration(ms) * time.Millisecond
}

// stepSimulator is a fake pedometer: while running it adds 4-10 steps per
// tick. At most one ticker runs at a time; start replaces it.
type stepSimulator struct {
	rng    randSource
	onTick func(steps int)

	mu       sync.Mutex
	steps    int
	interval time.Duration
	cancel   context.CancelFunc
}

func newStepSimulator(rng randSource) *stepSimulator {
	return &stepSimulator{rng: rng}
}

// start cancels any running ticker and starts a new one at the given speed.
// A zero speed means the default. Returns the interval in use.
func (s *stepSimulator) start(speed int) time.Duration {
	if speed == 0 {
		speed = defaultStepSpeed
	}
	interval := stepInterval(speed)

	s.mu.Lock()
	s.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.interval = interval
	s.mu.Unlock()

	go s.run(ctx, interval)
	return interval
}

// stop halts the ticker. Safe to call when nothing is running.
func (s *stepSimulator) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// reset stops the ticker and zeroes the counter.
func (s *stepSimulator) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.steps = 0
}

func (s *stepSimulator) snapshot() stepSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := stepSnapshot{Steps: s.steps, Running: s.cancel != nil}
	if snap.Running {
		snap.IntervalMS = s.interval.Milliseconds()
	}
	return snap
}

func (s *stepSimulator) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.interval = 0
}

func (s *stepSimulator) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *stepSimulator) tick(ctx context.Context) {
	s.mu.Lock()
	// A tick that raced with stop/start must not count: cancel happens
	// under mu, so checking here is enough.
	if ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	s.steps += s.rng.IntN(7) + 4
	steps := s.steps
	hook := s.onTick
	s.mu.Unlock()

	if hook != nil {
		hook(steps)
	}
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// getSteps returns the counter and whether the simulation is running.
// GET /api/steps.
func (h *Handler) getSteps(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.steps.snapshot())
}

// startSteps starts (or restarts at a new speed) the simulation.
// POST /api/steps/start. Body (optional): { "speed": 1-5 }.
func (h *Handler) startSteps(c *gin.Context) {
	var body startStepsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			apiError(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	h.app.steps.start(body.Speed)
	c.JSON(http.StatusOK, h.app.steps.snapshot())
}

// stopSteps pauses the simulation. POST /api/steps/stop.
func (h *Handler) stopSteps(c *gin.Context) {
	h.app.steps.stop()
	c.JSON(http.StatusOK, h.app.steps.snapshot())
}

// resetSteps stops the simulation and zeroes the counter. POST /api/steps/reset.
func (h *Handler) resetSteps(c *gin.Context) {
	h.app.steps.reset()
	c.JSON(http.StatusOK, h.app.steps.snapshot())
}
