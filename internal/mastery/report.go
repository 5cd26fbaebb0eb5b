package mastery

import "github.com/abhisek/sightwords/internal/session"

// reportWindow is how many recent sessions the report averages.
const reportWindow = 3

// Report summarizes a level's progress toward mastery for display.
type Report struct {
	Level              session.Level
	Achieved           bool
	Accuracy           float64
	PromptedAccuracy   float64
	UnpromptedAccuracy float64
	PromptedSessions   int
	UnpromptedSessions int
	TotalSessions      int
}

// BuildReport computes the mastery report for one level's history.
func BuildReport(level session.Level, history []session.Record) Report {
	rep := Report{Level: level, TotalSessions: len(history), Achieved: IsMastered(history)}

	var prompted, unprompted []session.Record
	for _, r := range history {
		switch r.PromptType {
		case session.PromptImmediate:
			prompted = append(prompted, r)
		case session.PromptDelay:
			unprompted = append(unprompted, r)
		}
	}
	rep.PromptedSessions = len(prompted)
	rep.UnpromptedSessions = len(unprompted)
	rep.Accuracy = recentMean(history)
	rep.PromptedAccuracy = recentMean(prompted)
	rep.UnpromptedAccuracy = recentMean(unprompted)
	return rep
}

// BuildReports returns a report per intervention level.
func BuildReports(records []session.Record) []Report {
	out := make([]Report, 0, len(session.InterventionLevels))
	for _, l := range session.InterventionLevels {
		out = append(out, BuildReport(l, session.ForLevel(records, l)))
	}
	return out
}

func recentMean(records []session.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	start := len(records) - reportWindow
	if start < 0 {
		start = 0
	}
	var sum float64
	for _, r := range records[start:] {
		sum += r.Accuracy
	}
	return sum / float64(len(records)-start)
}
