package services

import "math"

// ActivityStreak counts consecutive trailing active days ending today
// (index windowDays-1). A zero-minute day today collapses the streak to 0
// even if yesterday was active.
func ActivityStreak(dailyMinutes [windowDays]int) int {
	streak := 0
	for i := windowDays - 1; i >= 0; i-- {
		if dailyMinutes[i] <= 0 {
			break
		}
		streak++
	}
	return streak
}

// ConsistencyScore expresses a streak as a percentage of the window,
// bounded to [0,100].
func ConsistencyScore(streak int) int {
	if streak < 0 {
		streak = 0
	}
	if streak > windowDays {
		streak = windowDays
	}
	return int(math.Round(float64(streak) / float64(windowDays) * 100))
}
