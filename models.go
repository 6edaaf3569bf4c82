package main

import (
	"bytes"
	"fmt"
	"time"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
// null and "" decode to the zero time, which callers read as "not given".
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return fmt.Errorf("%w: %s", errInvalidDate, string(b))
	}
	d.Time = t
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// profile is the single stored user record. JSON keys match the record the
// page has always written to local storage, so old snapshots still load.
// Enum fields stay plain strings: unknown values fall through the metric
// cascades instead of being rejected.
type profile struct {
	Age        int     `json:"age"`
	Height     float64 `json:"height"` // cm
	Weight     float64 `json:"weight"` // kg
	Activity   string  `json:"activity"`
	Goal       string  `json:"goal"`
	Gender     string  `json:"gender"`
	Preference string  `json:"preference"`
}

// progressEntry is one weight sample. Timestamp is epoch millis.
type progressEntry struct {
	Timestamp int64   `json:"timestamp"`
	DateLabel string  `json:"dateLabel"`
	Weight    float64 `json:"weight"`
}

// mealOption, recipe: catalog rows. Type is veg, nonveg or mixed.
type mealOption struct {
	Type  string   `json:"type"`
	Items []string `json:"items"`
	Meta  string   `json:"meta"`
}

type recipe struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Meta    string `json:"meta"`
	Type    string `json:"type"`
}

// workoutDay is one day of the generated weekly plan.
type workoutDay struct {
	Day         string `json:"day"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

/* ─── Render records ─────────────────────────────────────────────────── */

// dietCard is what the page renders per meal slot.
type dietCard struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
	Meta  string   `json:"meta"`
}

type recipeCard struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Meta    string `json:"meta"`
}

// planResponse is the response shape for POST/GET /api/plan: the derived
// metrics, quick-stat labels and all three content sections.
type planResponse struct {
	Profile       profile      `json:"profile"`
	BMI           *float64     `json:"bmi"`
	BMIStatus     string       `json:"bmi_status"`
	Calories      int          `json:"calories"`
	WaterLiters   *float64     `json:"water_liters"`
	StepGoal      int          `json:"step_goal"`
	GoalLabel     string       `json:"goal_label"`
	ActivityLabel string       `json:"activity_label"`
	Diet          []dietCard   `json:"diet"`
	Workout       []workoutDay `json:"workout"`
	Recipes       []recipeCard `json:"recipes"`
}

// chartResponse is the parallel-array shape the chart widget consumes.
type chartResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// stepSnapshot is the response shape for the /api/steps endpoints.
type stepSnapshot struct {
	Steps      int   `json:"steps"`
	Running    bool  `json:"running"`
	IntervalMS int64 `json:"interval_ms"`
}

/* ─── Requests ───────────────────────────────────────────────────────── */

// logWeightRequest is the request body for POST /api/progress.
// A missing or empty date means "now".
type logWeightRequest struct {
	Date   DateOnly `json:"date"`
	Weight float64  `json:"weight"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type startStepsRequest struct {
	Speed int `json:"speed"`
}
