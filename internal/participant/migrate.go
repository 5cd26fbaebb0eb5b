package participant

import "github.com/abhisek/sightwords/internal/session"

// isLegacy reports whether a history uses grade numbers as levels. The
// current scheme only uses 0 through 4.
func isLegacy(records []session.Record) bool {
	for _, r := range records {
		if r.Level < session.LevelBaseline || r.Level > session.LevelTargetWords {
			return true
		}
	}
	return false
}

// MigrateLevels rewrites histories saved with grade numbers as levels:
// reading level becomes 1, the midpoint 2 and grade level 3. Values that
// match none of them are left alone. It reports whether anything changed.
func MigrateLevels(records []session.Record, cfg Config) ([]session.Record, bool) {
	if !isLegacy(records) {
		return records, false
	}

	out := make([]session.Record, len(records))
	changed := false
	for i, r := range records {
		switch int(r.Level) {
		case cfg.ReadingLevel:
			r.Level = session.Level1
		case cfg.Midpoint():
			r.Level = session.Level2
		case cfg.GradeLevel:
			r.Level = session.Level3
		}
		if r.Level != records[i].Level {
			changed = true
		}
		out[i] = r
	}
	return out, changed
}

// normalizePhase fills in the phase of records saved before it was stored.
func normalizePhase(records []session.Record, phase session.Phase) bool {
	changed := false
	for i := range records {
		if records[i].Phase == "" {
			records[i].Phase = phase
			changed = true
		}
	}
	return changed
}
