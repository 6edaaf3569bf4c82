package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const recipesPerPage = 3

// withDefaults fills the fields the page form treats as optional.
func (p profile) withDefaults() profile {
	if p.Gender == "" {
		p.Gender = "male"
	}
	if p.Preference == "" {
		p.Preference = "mixed"
	}
	return p
}

// validate reports errInvalidProfile unless age, height and weight are all
// non-zero. Enum fields are deliberately not checked.
func (p profile) validate() error {
	if p.Age == 0 || p.Height == 0 || p.Weight == 0 {
		return errInvalidProfile
	}
	return nil
}

// generatePlan computes metrics and content for p, then stores p as the
// current profile. Nothing is written when validation fails.
func (a *wellnessApp) generatePlan(ctx context.Context, p profile) (planResponse, error) {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return planResponse{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	plan := a.buildPlan(p)
	if err := a.profiles.save(ctx, p); err != nil {
		return planResponse{}, err
	}
	return plan, nil
}

// currentPlan regenerates the plan for the stored profile, like the page
// does on reload. ok is false when no valid profile is stored.
func (a *wellnessApp) currentPlan(ctx context.Context) (plan planResponse, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stored := a.profiles.load(ctx)
	if stored == nil {
		return planResponse{}, false
	}
	p := stored.withDefaults()
	if p.validate() != nil {
		return planResponse{}, false
	}
	return a.buildPlan(p), true
}

func (a *wellnessApp) buildPlan(p profile) planResponse {
	bmi := computeBMI(p.Height, p.Weight)
	return planResponse{
		Profile:       p,
		BMI:           bmi.BMI,
		BMIStatus:     bmi.Status,
		Calories:      computeCalorieTarget(p),
		WaterLiters:   computeWaterTargetLiters(p.Weight),
		StepGoal:      computeStepGoal(p.Activity, p.Goal),
		GoalLabel:     goalLabel(p.Goal),
		ActivityLabel: activityLabel(p.Activity),
		Diet:          a.content.dietPlan(p.Preference, p.Goal),
		Workout:       workoutWeek(p.Activity, p.Goal),
		Recipes:       recipeCards(a.content.pickRecipes(p.Preference, recipesPerPage)),
	}
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// postPlan validates a profile, returns its plan and stores the profile.
// POST /api/plan. Body: profile. 400 when age, height or weight is missing/zero.
func (h *Handler) postPlan(c *gin.Context) {
	var body profile
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.app.generatePlan(c, body)
	if err != nil {
		if errors.Is(err, errInvalidProfile) {
			apiError(c, http.StatusBadRequest, "age, height and weight are required")
			return
		}
		log.Printf("[postPlan] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// getPlan regenerates the plan for the stored profile.
// GET /api/plan. 404 when no profile is stored.
func (h *Handler) getPlan(c *gin.Context) {
	plan, ok := h.app.currentPlan(c)
	if !ok {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// getRecipes returns a fresh random set of recipes.
// GET /api/recipes?preference=veg|nonveg|mixed (defaults to mixed).
func (h *Handler) getRecipes(c *gin.Context) {
	preference := c.DefaultQuery("preference", "mixed")
	c.JSON(http.StatusOK, recipeCards(h.app.content.pickRecipes(preference, recipesPerPage)))
}

// getQuote returns a random motivational quote. GET /api/quote.
func (h *Handler) getQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": h.app.content.pickQuote()})
}
