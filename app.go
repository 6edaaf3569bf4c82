package main

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	errInvalidProfile   = errors.New("age, height and weight are required")
	errWeightOutOfRange = errors.New("weight out of range")
	errInvalidTheme     = errors.New("invalid theme")
	errInvalidDate      = errors.New("invalid date")
)

// wellnessApp owns all process-wide state: the stores, the progress log,
// the chart series and the step simulator. It is built once at startup.
// mu serializes mutations because gin runs handlers concurrently.
type wellnessApp struct {
	mu sync.Mutex

	profiles *profileStore
	themes   *themeStore
	progress *progressLog
	chart    *chartSeries
	content  *contentSelector
	steps    *stepSimulator
}

// newWellnessApp wires the components over store and loads the persisted
// progress log.
func newWellnessApp(ctx context.Context, store kvStore, rng randSource, now func() time.Time) *wellnessApp {
	chart := &chartSeries{}
	a := &wellnessApp{
		profiles: &profileStore{store: store},
		themes:   &themeStore{store: store},
		progress: newProgressLog(store, chart, now),
		chart:    chart,
		content:  &contentSelector{rng: rng},
		steps:    newStepSimulator(rng),
	}
	a.progress.load(ctx)
	return a
}

// close stops background work. The store is closed by its owner.
func (a *wellnessApp) close() {
	a.steps.stop()
}

// logWeight range-checks and appends a weight sample.
func (a *wellnessApp) logWeight(ctx context.Context, date *time.Time, weight float64) (progressEntry, error) {
	if weight == 0 || weight < minLogWeightKG || weight > maxLogWeightKG {
		return progressEntry{}, errWeightOutOfRange
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.progress.add(ctx, date, weight)
}

func (a *wellnessApp) clearProgress(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.progress.clear(ctx)
}

func (a *wellnessApp) progressEntries() []progressEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.progress.list()
}

func (a *wellnessApp) resetProfile(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profiles.clear(ctx)
}

func (a *wellnessApp) saveTheme(ctx context.Context, theme string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.themes.save(ctx, theme)
}

func (a *wellnessApp) toggleTheme(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.themes.toggle(ctx)
}
