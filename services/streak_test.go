package services

import "testing"

func TestActivityStreak(t *testing.T) {
	tests := []struct {
		name    string
		minutes [windowDays]int
		want    int
	}{
		{name: "all zero", minutes: [windowDays]int{}, want: 0},
		{name: "today only", minutes: [windowDays]int{0, 0, 0, 0, 0, 0, 45}, want: 1},
		{name: "zero today collapses streak", minutes: [windowDays]int{30, 30, 30, 30, 30, 30, 0}, want: 0},
		{name: "trailing three days", minutes: [windowDays]int{0, 0, 0, 0, 20, 15, 45}, want: 3},
		{name: "gap mid-week ignored", minutes: [windowDays]int{60, 60, 0, 10, 20, 15, 45}, want: 4},
		{name: "full week", minutes: [windowDays]int{10, 10, 10, 10, 10, 10, 10}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActivityStreak(tt.minutes); got != tt.want {
				t.Fatalf("ActivityStreak(%v) = %d, want %d", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestActivityStreakAlwaysInWindow(t *testing.T) {
	minutes := [windowDays]int{90, 90, 90, 90, 90, 90, 90}
	if got := ActivityStreak(minutes); got < 0 || got > windowDays {
		t.Fatalf("streak %d outside [0,%d]", got, windowDays)
	}
}

func TestConsistencyScore(t *testing.T) {
	// round(streak/7*100) for every streak value.
	wantByStreak := map[int]int{0: 0, 1: 14, 2: 29, 3: 43, 4: 57, 5: 71, 6: 86, 7: 100}
	for streak, want := range wantByStreak {
		if got := ConsistencyScore(streak); got != want {
			t.Fatalf("ConsistencyScore(%d) = %d, want %d", streak, got, want)
		}
	}
}

func TestConsistencyScoreBounded(t *testing.T) {
	if got := ConsistencyScore(-3); got != 0 {
		t.Fatalf("negative streak should clamp to 0, got %d", got)
	}
	if got := ConsistencyScore(12); got != 100 {
		t.Fatalf("oversized streak should clamp to 100, got %d", got)
	}
}
