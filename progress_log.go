package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Logged weights outside this range (kg) are rejected.
const (
	minLogWeightKG = 30
	maxLogWeightKG = 250
)

// chartSink receives the full series whenever the progress log changes.
type chartSink interface {
	draw(labels []string, values []float64)
}

// chartSeries is the chart sink behind GET /api/progress/chart: it keeps
// the latest series the log pushed.
type chartSeries struct {
	mu     sync.RWMutex
	labels []string
	values []float64
}

func (c *chartSeries) draw(labels []string, values []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels = labels
	c.values = values
}

func (c *chartSeries) snapshot() chartResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()
	resp := chartResponse{Labels: []string{}, Values: []float64{}}
	resp.Labels = append(resp.Labels, c.labels...)
	resp.Values = append(resp.Values, c.values...)
	return resp
}

// progressLog is the ordered weight history. Entries are sorted ascending
// by timestamp after every mutation and the persisted copy always matches
// memory. Callers serialize access (see wellnessApp).
type progressLog struct {
	store   kvStore
	chart   chartSink
	now     func() time.Time
	loc     *time.Location // zone used for dateLabel
	entries []progressEntry
}

func newProgressLog(store kvStore, chart chartSink, now func() time.Time) *progressLog {
	return &progressLog{
		store:   store,
		chart:   chart,
		now:     now,
		loc:     time.Local,
		entries: []progressEntry{},
	}
}

// load reads the persisted log. Missing, corrupt or non-array data all
// yield an empty log; failures are logged, never returned.
func (p *progressLog) load(ctx context.Context) {
	p.entries = []progressEntry{}
	defer p.redraw()

	raw, found, err := p.store.Get(ctx, progressKey)
	if err != nil {
		log.Printf("[progressLog.load] read failed: %v", err)
		return
	}
	if !found || raw == "" {
		return
	}

	var entries []progressEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("[progressLog.load] Failed to parse stored progress: %v", err)
		return
	}
	if entries != nil {
		p.entries = entries
	}
	p.sort()
}

// add appends a sample at date (or now when date is nil), re-sorts,
// persists and redraws. The returned error only reports persistence; the
// entry stays in memory either way.
func (p *progressLog) add(ctx context.Context, date *time.Time, weight float64) (progressEntry, error) {
	t := p.now()
	if date != nil {
		t = *date
	}

	entry := progressEntry{
		Timestamp: t.UnixMilli(),
		DateLabel: t.In(p.loc).Format("Jan 2"),
		Weight:    weight,
	}
	p.entries = append(p.entries, entry)
	p.sort()

	err := p.save(ctx)
	p.redraw()
	return entry, err
}

// clear drops every entry, persists the empty log and redraws.
func (p *progressLog) clear(ctx context.Context) error {
	p.entries = []progressEntry{}
	err := p.save(ctx)
	p.redraw()
	return err
}

// list returns a copy of the entries in timestamp order.
func (p *progressLog) list() []progressEntry {
	return slices.Clone(p.entries)
}

// series returns the chart's parallel label/value arrays.
func (p *progressLog) series() ([]string, []float64) {
	labels := make([]string, 0, len(p.entries))
	values := make([]float64, 0, len(p.entries))
	for _, e := range p.entries {
		labels = append(labels, e.DateLabel)
		values = append(values, e.Weight)
	}
	return labels, values
}

func (p *progressLog) sort() {
	slices.SortStableFunc(p.entries, func(a, b progressEntry) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})
}

func (p *progressLog) save(ctx context.Context) error {
	data, err := json.Marshal(p.entries)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := p.store.Set(ctx, progressKey, string(data)); err != nil {
		log.Printf("[progressLog.save] write failed: %v", err)
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (p *progressLog) redraw() {
	if p.chart == nil {
		return
	}
	p.chart.draw(p.series())
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// getProgress returns every logged weight in timestamp order.
// GET /api/progress. Returns an empty array (not null) when nothing is logged.
func (h *Handler) getProgress(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.progressEntries())
}

// getProgressChart returns the chart series last pushed by the log.
// GET /api/progress/chart.
func (h *Handler) getProgressChart(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.chart.snapshot())
}

// addProgressEntry logs a weight.
// POST /api/progress. Body: { "date"?: "YYYY-MM-DD", "weight": 72.4 }.
// Weight must be within [30, 250] kg; a missing date logs at the current time.
func (h *Handler) addProgressEntry(c *gin.Context) {
	var body logWeightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, errInvalidDate) {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var date *time.Time
	if !body.Date.IsZero() {
		date = &body.Date.Time
	}

	entry, err := h.app.logWeight(c, date, body.Weight)
	if err != nil {
		if errors.Is(err, errWeightOutOfRange) {
			apiError(c, http.StatusBadRequest, "weight must be between 30 and 250 kg")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to save progress")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// clearProgress deletes the whole log. DELETE /api/progress. Returns 204.
func (h *Handler) clearProgress(c *gin.Context) {
	if err := h.app.clearProgress(c); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to clear progress")
		return
	}
	c.Status(http.StatusNoContent)
}
