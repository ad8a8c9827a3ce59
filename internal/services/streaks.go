package services

import "math"

type HabitStreaks struct {
	Current          int
	Best             int
	CompletionRate   int
	TotalCompletions int
}

// CalculateHabitStreaks computes streaks and the completion rate for one
// habit over a fixed window of daily values ordered oldest to newest, the
// last element being today. Days without a log must be present as 0. A day
// counts as completed when its value reaches the target, so a target of 0
// completes every day. The reported best streak never drops below
// storedBest, which acts as a watermark over history outside the window.
func CalculateHabitStreaks(values []float64, target float64, storedBest int) HabitStreaks {
	streaks := HabitStreaks{Best: storedBest}
	if len(values) == 0 {
		return streaks
	}

	best := 0
	temp := 0
	completed := 0
	for _, value := range values {
		if value >= target {
			completed++
			temp++
			if temp > best {
				best = temp
			}
			continue
		}
		temp = 0
	}

	current := 0
	for index := len(values) - 1; index >= 0; index-- {
		if values[index] < target {
			break
		}
		current++
	}

	if best > streaks.Best {
		streaks.Best = best
	}
	streaks.Current = current
	streaks.TotalCompletions = completed
	streaks.CompletionRate = int(math.Round(float64(completed) / float64(len(values)) * 100))
	return streaks
}
