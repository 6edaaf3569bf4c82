package main

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// newTestLog returns a loaded log over store with labels rendered in UTC.
func newTestLog(store kvStore, chart chartSink) *progressLog {
	p := newProgressLog(store, chart, fixedClock)
	p.loc = time.UTC
	p.load(context.Background())
	return p
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// persisted decodes whatever the log last wrote to store.
func persisted(t *testing.T, store kvStore) []progressEntry {
	t.Helper()
	raw, found, err := store.Get(context.Background(), progressKey)
	if err != nil || !found {
		t.Fatalf("progress not persisted (found=%v, err=%v)", found, err)
	}
	var entries []progressEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		t.Fatalf("persisted progress is not a JSON array: %v", err)
	}
	return entries
}

// TestProgressLog_SortsByTimestamp adds "now" first and an older date second;
// the older entry must come first in memory and in storage.
func TestProgressLog_SortsByTimestamp(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	p := newTestLog(store, nil)

	if _, err := p.add(ctx, nil, 70); err != nil {
		t.Fatalf("add now: %v", err)
	}
	if _, err := p.add(ctx, date(2020, 1, 1), 65); err != nil {
		t.Fatalf("add 2020: %v", err)
	}

	got := p.list()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Weight != 65 || got[0].DateLabel != "Jan 1" {
		t.Errorf("first entry = %+v, want the 2020 entry", got[0])
	}
	if got[1].Timestamp != fixedNow.UnixMilli() || got[1].DateLabel != "Jun 1" {
		t.Errorf("second entry = %+v, want the 'now' entry", got[1])
	}
	if !slices.Equal(persisted(t, store), got) {
		t.Error("persisted snapshot differs from memory")
	}
}

// TestProgressLog_StableTies verifies equal timestamps keep insertion order
// and duplicates are allowed.
func TestProgressLog_StableTies(t *testing.T) {
	ctx := context.Background()
	p := newTestLog(newMemoryStore(), nil)

	p.add(ctx, date(2024, 3, 3), 80)
	p.add(ctx, date(2024, 3, 3), 79)
	p.add(ctx, date(2024, 3, 1), 81)
	p.add(ctx, date(2024, 3, 3), 79)

	var weights []float64
	for _, e := range p.list() {
		weights = append(weights, e.Weight)
	}
	want := []float64{81, 80, 79, 79}
	if !slices.Equal(weights, want) {
		t.Errorf("weights = %v, want %v", weights, want)
	}
}

func TestProgressLog_ClearThenReload(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	p := newTestLog(store, nil)
	p.add(ctx, nil, 70)
	p.add(ctx, date(2020, 1, 1), 65)

	if err := p.clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	reloaded := newTestLog(store, nil)
	if got := reloaded.list(); len(got) != 0 {
		t.Errorf("expected empty log after clear + reload, got %d entries", len(got))
	}
	if got := persisted(t, store); len(got) != 0 {
		t.Errorf("expected persisted empty array, got %v", got)
	}
}

func TestProgressLog_ReloadKeepsEntries(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	p := newTestLog(store, nil)
	p.add(ctx, date(2024, 2, 10), 72.5)

	reloaded := newTestLog(store, nil)
	got := reloaded.list()
	if len(got) != 1 || got[0].Weight != 72.5 || got[0].DateLabel != "Feb 10" {
		t.Errorf("reloaded = %+v", got)
	}
}

// TestProgressLog_LoadCorrupt verifies every kind of bad stored value reads
// as an empty log instead of failing.
func TestProgressLog_LoadCorrupt(t *testing.T) {
	cases := map[string]string{
		"malformed JSON": "{not json",
		"object":         `{"timestamp": 1}`,
		"string":         `"hello"`,
		"null":           "null",
		"array of junk":  `["a", "b"]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemoryStore()
			store.Set(context.Background(), progressKey, raw)
			p := newTestLog(store, nil)
			if got := p.list(); len(got) != 0 {
				t.Errorf("expected empty log, got %+v", got)
			}
			if p.list() == nil {
				t.Error("list should be an empty slice, not nil")
			}
		})
	}
}

func TestProgressLog_RedrawsChart(t *testing.T) {
	ctx := context.Background()
	chart := &chartSeries{}
	p := newTestLog(newMemoryStore(), chart)

	p.add(ctx, date(2024, 5, 2), 71)
	p.add(ctx, date(2024, 5, 1), 72)

	snap := chart.snapshot()
	if !slices.Equal(snap.Labels, []string{"May 1", "May 2"}) {
		t.Errorf("labels = %v", snap.Labels)
	}
	if !slices.Equal(snap.Values, []float64{72, 71}) {
		t.Errorf("values = %v", snap.Values)
	}

	p.clear(ctx)
	snap = chart.snapshot()
	if len(snap.Labels) != 0 || len(snap.Values) != 0 {
		t.Errorf("expected empty chart after clear, got %+v", snap)
	}
}

// failingStore accepts reads but rejects every write.
type failingStore struct{ *memoryStore }

func (failingStore) Set(context.Context, string, string) error { return errors.New("disk full") }

func TestProgressLog_SaveErrorKeepsMemory(t *testing.T) {
	p := newTestLog(failingStore{newMemoryStore()}, nil)
	if _, err := p.add(context.Background(), nil, 70); err == nil {
		t.Fatal("expected a save error")
	}
	if len(p.list()) != 1 {
		t.Error("entry should stay in memory when persisting fails")
	}
}
