package services

import (
	"math"
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
)

// DaysBetween expands an inclusive calendar range into one entry per day,
// strictly ascending with no gaps. Callers rendering charts rely on the
// fixed cardinality: len == end-start in days + 1.
func DaysBetween(start time.Time, end time.Time, location *time.Location) []time.Time {
	first := DateAtLocation(start, location)
	last := DateAtLocation(end, location)

	days := make([]time.Time, 0)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

type DailyNutritionTotals struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Target   int    `json:"target"`
}

// SumMealsByDay produces one totals entry per day in the range, days with
// no meals included as zeros, macro sums rounded to the nearest integer.
func SumMealsByDay(days []time.Time, meals []models.Meal, caloriesTarget float64, location *time.Location) []DailyNutritionTotals {
	type macroSums struct {
		calories float64
		protein  float64
		carbs    float64
		fat      float64
	}

	sumsByDay := make(map[string]macroSums, len(days))
	for _, meal := range meals {
		key := DayKey(meal.Date, location)
		sums := sumsByDay[key]
		sums.calories += meal.Calories
		sums.protein += meal.ProteinG
		sums.carbs += meal.CarbsG
		sums.fat += meal.FatG
		sumsByDay[key] = sums
	}

	target := int(math.Round(caloriesTarget))
	totals := make([]DailyNutritionTotals, 0, len(days))
	for _, day := range days {
		key := day.Format(dayLayout)
		sums := sumsByDay[key]
		totals = append(totals, DailyNutritionTotals{
			Date:     key,
			Calories: int(math.Round(sums.calories)),
			Protein:  int(math.Round(sums.protein)),
			Carbs:    int(math.Round(sums.carbs)),
			Fat:      int(math.Round(sums.fat)),
			Target:   target,
		})
	}
	return totals
}
