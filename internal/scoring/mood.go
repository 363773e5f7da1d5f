package scoring

import (
	"time"

	"mindcare/internal/model"
)

// Mood aggregation defaults.
const (
	DefaultTrendWindow  = 14 // entries averaged for risk fusion
	DefaultStreakWindow = 7  // days walked back for the streak
	NeutralMoodScore    = 2  // substituted when an entry has no score
)

// AverageRecent returns the mean mood score over the n most recent entries.
// Entries are expected most-recent-first. Entries without a score count as
// the neutral default rather than aborting the aggregation; an empty log
// averages to neutral.
func AverageRecent(entries []model.MoodEntry, n int) float64 {
	if n > len(entries) {
		n = len(entries)
	}
	if n <= 0 {
		return NeutralMoodScore
	}

	sum := 0
	for _, e := range entries[:n] {
		sum += moodScore(e)
	}
	return float64(sum) / float64(n)
}

// CurrentStreak counts consecutive calendar days with at least one mood
// entry, walking back from today for up to maxDays. Days are bucketed by the
// UTC date of the entry timestamp. The streak is 0 if today has no entry.
func CurrentStreak(entries []model.MoodEntry, now time.Time, maxDays int) int {
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[e.LoggedAt.UTC().Format("2006-01-02")] = struct{}{}
	}

	streak := 0
	for i := 0; i < maxDays; i++ {
		day := now.UTC().AddDate(0, 0, -i).Format("2006-01-02")
		if _, ok := days[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

// TrendSummary computes the dashboard summary: a windowed average and the
// current streak.
func TrendSummary(entries []model.MoodEntry, now time.Time) model.MoodTrendSummary {
	return model.MoodTrendSummary{
		WindowSize: DefaultTrendWindow,
		Average:    AverageRecent(entries, DefaultTrendWindow),
		StreakDays: CurrentStreak(entries, now, DefaultStreakWindow),
	}
}

func moodScore(e model.MoodEntry) int {
	if e.MoodScore == nil {
		return NeutralMoodScore
	}
	return *e.MoodScore
}
