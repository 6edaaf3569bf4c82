package main

// Static content catalogs. These are fixtures, never mutated at runtime;
// selectors copy before shuffling.

// mealSlots lists the meal slots in display order with their card labels.
var mealSlots = []struct {
	Key   string
	Label string
}{
	{"breakfast", "Breakfast"},
	{"lunch", "Lunch"},
	{"snacks", "Snacks"},
	{"dinner", "Dinner"},
}

var mealCatalog = map[string][]mealOption{
	"breakfast": {
		{
			Type:  "veg",
			Items: []string{"Overnight oats with chia & berries", "1 boiled egg (optional) or Greek yogurt"},
			Meta:  "High fiber • Slow-release carbs • 400–450 kcal",
		},
		{
			Type:  "nonveg",
			Items: []string{"Scrambled eggs with veggies & 1 multigrain toast", "Handful of nuts"},
			Meta:  "High protein • Healthy fats • 400–450 kcal",
		},
		{
			Type:  "mixed",
			Items: []string{"Veggie omelette + 1 fruit", "Green tea or black coffee (no sugar)"},
			Meta:  "Protein rich • Antioxidants • 350–400 kcal",
		},
	},
	"lunch": {
		{
			Type:  "veg",
			Items: []string{"1–2 multigrain rotis or 1 cup brown rice", "Dal / paneer sabzi + mixed salad"},
			Meta:  "Balanced carbs & protein • 500–550 kcal",
		},
		{
			Type:  "nonveg",
			Items: []string{"Grilled chicken / fish + quinoa or rice", "Sauteed veggies & salad"},
			Meta:  "Lean protein • Complex carbs • 550–600 kcal",
		},
		{
			Type:  "mixed",
			Items: []string{"Buddha bowl with grains, veggies, beans, seeds", "Light yogurt dressing"},
			Meta:  "Colorful micronutrients • 500–550 kcal",
		},
	},
	"snacks": {
		{
			Type:  "veg",
			Items: []string{"Roasted chana or trail mix", "Green tea / lemon water"},
			Meta:  "Light yet satiating • 150–200 kcal",
		},
		{
			Type:  "nonveg",
			Items: []string{"Small tuna / chicken salad wrap"},
			Meta:  "Protein focused • 200–250 kcal",
		},
		{
			Type:  "mixed",
			Items: []string{"Fruit + handful of nuts or seeds"},
			Meta:  "Natural sugars • Healthy fats • 150–200 kcal",
		},
	},
	"dinner": {
		{
			Type:  "veg",
			Items: []string{"Veg soup + sautéed paneer / tofu", "Small portion of whole grains"},
			Meta:  "Lighter dinner • 400–450 kcal",
		},
		{
			Type:  "nonveg",
			Items: []string{"Grilled fish / chicken + veggies", "No heavy carbs post 8 PM"},
			Meta:  "Protein recovery • 400–450 kcal",
		},
		{
			Type:  "mixed",
			Items: []string{"Khichdi with ghee + salad", "Buttermilk / low-fat curd"},
			Meta:  "Comforting & gut-friendly • 400–450 kcal",
		},
	},
}

// weekDays is Monday-indexed: 0=Mon .. 6=Sun.
var weekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// activeDays marks the five training days; the rest are recovery.
var activeDays = [7]bool{true, true, false, true, true, false, true}

const (
	recoveryType = "Recovery & Mobility"
	recoveryDesc = "10–15 min light stretching, deep breathing, short walk."
)

var workoutLines = map[string][]string{
	"loss": {
		"25–35 min brisk walk / jog",
		"10 min core (planks, crunches)",
		"Cool down and stretch",
	},
	"gain": {
		"3×10 bodyweight squats & lunges",
		"3×10 push-ups (knee or full)",
		"3×15 glute bridges",
	},
	"maintain": {
		"20–25 min brisk walk / easy run",
		"15 min bodyweight circuit",
		"5–10 min stretching",
	},
}

var recipeCatalog = []recipe{
	{
		Title:   "High-Protein Veggie Bowl",
		Details: "Quinoa + chickpeas + roasted veggies + hummus drizzle.",
		Meta:    "Packed with fiber and plant protein.",
		Type:    "veg",
	},
	{
		Title:   "Greek Yogurt Power Parfait",
		Details: "Greek yogurt layered with fruits, nuts, and chia seeds.",
		Meta:    "Great as post-workout or breakfast.",
		Type:    "mixed",
	},
	{
		Title:   "Grilled Chicken Rainbow Plate",
		Details: "Grilled chicken breast, sweet potato, broccoli, and salad.",
		Meta:    "Balanced protein, carbs, and micronutrients.",
		Type:    "nonveg",
	},
	{
		Title:   "Paneer Stir-Fry Wrap",
		Details: "Whole wheat wrap filled with paneer, peppers, onions, and lettuce.",
		Meta:    "Perfect quick lunch option.",
		Type:    "veg",
	},
	{
		Title:   "Lentil & Veggie Soup",
		Details: "Comforting lentil soup loaded with carrots, celery, and spinach.",
		Meta:    "Light dinner with good protein.",
		Type:    "veg",
	},
	{
		Title:   "Protein Smoothie",
		Details: "Banana, protein powder, peanut butter, oats, and milk/plant milk.",
		Meta:    "Great pre or post workout fuel.",
		Type:    "mixed",
	},
}

var quoteCatalog = []string{
	"Your body achieves what your mind believes.",
	"Small habits every day create big results.",
	"You don’t need extreme changes, just consistent ones.",
	"One workout is better than none. Move today.",
	"Discipline beats motivation when motivation is gone.",
	"Food is fuel. Choose what makes you feel strong.",
	"You’re one healthy choice away from a better day.",
	"Strong looks different on every body. Build your version.",
	"Don’t compare. Just compete with yesterday’s you.",
	"Progress over perfection. Always.",
}
