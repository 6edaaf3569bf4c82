package main

import (
	"math/rand/v2"
	"strings"
)

// randSource is the only randomness the selectors use. Tests swap in a
// fixed sequence.
type randSource interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// globalRand draws from math/rand/v2's top-level generator, which is
// seeded at startup and safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// contentSelector picks catalog entries for a profile.
type contentSelector struct {
	rng randSource
}

// pickMeal returns a random option for slot. For veg/nonveg the pool is the
// exact matches followed by the mixed entries; any other preference draws
// from the whole slot. Returns nil for an unknown slot or empty pool.
func (s *contentSelector) pickMeal(slot, preference string) *mealOption {
	candidates, ok := mealCatalog[slot]
	if !ok {
		return nil
	}

	pool := candidates
	if preference == "veg" || preference == "nonveg" {
		pool = make([]mealOption, 0, len(candidates))
		for _, m := range candidates {
			if m.Type == preference {
				pool = append(pool, m)
			}
		}
		for _, m := range candidates {
			if m.Type == "mixed" {
				pool = append(pool, m)
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	m := pool[s.rng.IntN(len(pool))]
	return &m
}

// pickWorkoutDay builds the plan for one Monday-indexed day. Wednesday and
// Saturday are always recovery; the other days combine an intensity from
// activity with a focus from goal. No randomness.
func pickWorkoutDay(dayIndex int, activity, goal string) workoutDay {
	day := ""
	if dayIndex >= 0 && dayIndex < len(weekDays) {
		day = weekDays[dayIndex]
	}

	if dayIndex < 0 || dayIndex >= len(activeDays) || !activeDays[dayIndex] {
		return workoutDay{Day: day, Type: recoveryType, Description: recoveryDesc}
	}

	var intensity string
	switch activity {
	case "sedentary":
		intensity = "Beginner"
	case "moderate":
		intensity = "Intermediate"
	default:
		intensity = "Advanced"
	}

	var focus, linesKey string
	switch goal {
	case "loss":
		focus, linesKey = "Cardio + Core", "loss"
	case "gain":
		focus, linesKey = "Strength & Muscle", "gain"
	default:
		focus, linesKey = "Balanced Full Body", "maintain"
	}

	return workoutDay{
		Day:         day,
		Type:        intensity + " • " + focus,
		Description: strings.Join(workoutLines[linesKey], " • "),
	}
}

// workoutWeek returns all seven days, Monday first.
func workoutWeek(activity, goal string) []workoutDay {
	week := make([]workoutDay, 0, len(weekDays))
	for i := range weekDays {
		week = append(week, pickWorkoutDay(i, activity, goal))
	}
	return week
}

// pickRecipes filters the recipe catalog by preference (veg and nonveg also
// admit mixed), shuffles a copy and returns up to count entries.
// The catalog itself is never reordered.
func (s *contentSelector) pickRecipes(preference string, count int) []recipe {
	pool := make([]recipe, 0, len(recipeCatalog))
	for _, r := range recipeCatalog {
		switch preference {
		case "veg", "nonveg":
			if r.Type == preference || r.Type == "mixed" {
				pool = append(pool, r)
			}
		default:
			pool = append(pool, r)
		}
	}

	// Fisher–Yates
	for i := len(pool) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	if count < 0 {
		count = 0
	}
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

// pickQuote returns a random motivational quote.
func (s *contentSelector) pickQuote() string {
	if len(quoteCatalog) == 0 {
		return ""
	}
	return quoteCatalog[s.rng.IntN(len(quoteCatalog))]
}

// mealGoalNote is appended to every diet card's meta line.
func mealGoalNote(goal string) string {
	switch goal {
	case "loss":
		return " • Slight deficit for fat loss"
	case "gain":
		return " • Slight surplus for muscle gain"
	default:
		return " • Maintenance friendly"
	}
}

// dietPlan picks one option per meal slot. Slots with nothing to pick are
// left out rather than rendered empty.
func (s *contentSelector) dietPlan(preference, goal string) []dietCard {
	cards := make([]dietCard, 0, len(mealSlots))
	for _, slot := range mealSlots {
		m := s.pickMeal(slot.Key, preference)
		if m == nil {
			continue
		}
		cards = append(cards, dietCard{
			Label: slot.Label,
			Items: m.Items,
			Meta:  m.Meta + mealGoalNote(goal),
		})
	}
	return cards
}

// recipeCards converts recipes to their render records.
func recipeCards(recipes []recipe) []recipeCard {
	cards := make([]recipeCard, 0, len(recipes))
	for _, r := range recipes {
		cards = append(cards, recipeCard{Title: r.Title, Details: r.Details, Meta: r.Meta})
	}
	return cards
}
