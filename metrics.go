package main

import "math"

// bmiResult is the outcome of computeBMI. BMI is nil when the inputs can't
// produce a number; JSON then renders it as null.
type bmiResult struct {
	BMI    *float64 `json:"bmi"`
	Status string   `json:"status"`
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// computeBMI returns weight / height(m)^2 rounded to one decimal, with the
// standard status bands. A zero height or weight yields {nil, "Invalid"}
// instead of an error so callers can render a placeholder.
func computeBMI(heightCM, weightKG float64) bmiResult {
	heightM := heightCM / 100
	if heightM == 0 || weightKG == 0 || math.IsNaN(heightM) || math.IsNaN(weightKG) {
		return bmiResult{BMI: nil, Status: "Invalid"}
	}
	raw := weightKG / (heightM * heightM)

	var status string
	switch {
	case raw < 18.5:
		status = "Underweight"
	case raw < 25:
		status = "Normal"
	case raw < 30:
		status = "Overweight"
	default:
		status = "Obese"
	}

	bmi := round1(raw)
	return bmiResult{BMI: &bmi, Status: status}
}

// activityFactor maps an activity level to its calorie multiplier.
// Anything other than sedentary/moderate is treated as active.
func activityFactor(activity string) float64 {
	switch activity {
	case "sedentary":
		return 1.2
	case "moderate":
		return 1.45
	default:
		return 1.7
	}
}

// computeCalorieTarget estimates a daily calorie target: Mifflin-St Jeor BMR
// times the activity factor, then shifted by the goal (loss -350, gain +250).
// Only "male" gets the +5 constant; every other gender string uses -161.
func computeCalorieTarget(p profile) int {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	calories := bmr * activityFactor(p.Activity)

	switch p.Goal {
	case "loss":
		calories -= 350
	case "gain":
		calories += 250
	}

	return int(math.Round(calories))
}

// computeWaterTargetLiters returns 35 ml per kg of body weight, in liters
// rounded to one decimal. Nil when weight is zero.
func computeWaterTargetLiters(weightKG float64) *float64 {
	if weightKG == 0 || math.IsNaN(weightKG) {
		return nil
	}
	// Round on the ml/100 scale so 70 kg lands on exactly 2.5.
	liters := math.Round(weightKG*35/100) / 10
	return &liters
}

// computeStepGoal suggests a daily step count from activity, plus 2000 for
// a weight-loss goal.
func computeStepGoal(activity, goal string) int {
	var base int
	switch activity {
	case "sedentary":
		base = 6000
	case "moderate":
		base = 8000
	default:
		base = 10000
	}
	if goal == "loss" {
		base += 2000
	}
	return base
}

// goalLabel is the display name for a goal used in the quick-stats header.
func goalLabel(goal string) string {
	switch goal {
	case "loss":
		return "Weight Loss"
	case "gain":
		return "Weight Gain"
	default:
		return "Maintain"
	}
}

// activityLabel is the display name for an activity level.
func activityLabel(activity string) string {
	switch activity {
	case "sedentary":
		return "Sedentary"
	case "moderate":
		return "Moderate"
	default:
		return "Active"
	}
}
