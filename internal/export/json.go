package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/survey"
)

// Summary is the aggregate block of a full export.
type Summary struct {
	TotalBaselineSessions int     `json:"totalBaselineSessions"`
	TotalSessions         int     `json:"totalSessions"`
	TotalSurveys          int     `json:"totalSurveys"`
	OverallAccuracy       float64 `json:"overallAccuracy"`
}

// Bundle is everything recorded for one participant.
type Bundle struct {
	ExportDate       time.Time         `json:"exportDate"`
	ParticipantID    string            `json:"participantId"`
	TargetWords      []string          `json:"targetWords"`
	BaselineSessions []session.Record  `json:"baselineSessions"`
	Sessions         []session.Record  `json:"sessions"`
	Surveys          []survey.Response `json:"surveys"`
	Summary          Summary           `json:"summary"`
}

// NewBundle assembles a bundle and computes its summary. Overall accuracy
// is the mean over intervention-history sessions, rounded to 2 decimals.
func NewBundle(participant string, targets []string, baseline, sessions []session.Record, surveys []survey.Response, now time.Time) Bundle {
	b := Bundle{
		ExportDate:       now.UTC(),
		ParticipantID:    participant,
		TargetWords:      orEmpty(targets),
		BaselineSessions: orEmptyRecords(baseline),
		Sessions:         orEmptyRecords(sessions),
		Surveys:          surveys,
	}
	if b.Surveys == nil {
		b.Surveys = []survey.Response{}
	}
	b.Summary = Summary{
		TotalBaselineSessions: len(baseline),
		TotalSessions:         len(sessions),
		TotalSurveys:          len(surveys),
	}
	if len(sessions) > 0 {
		var sum float64
		for _, r := range sessions {
			sum += r.Accuracy
		}
		b.Summary.OverallAccuracy = math.Round(sum/float64(len(sessions))*100) / 100
	}
	return b
}

// WriteJSON writes the bundle as indented JSON.
func WriteJSON(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// ReadJSON parses a bundle written by WriteJSON. Records that fail
// validation are returned separately so callers can report them.
func ReadJSON(r io.Reader) (Bundle, []error, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Bundle{}, nil, fmt.Errorf("decode export: %w", err)
	}

	var rejected []error
	b.BaselineSessions, rejected = keepValid(b.BaselineSessions, session.PhaseBaseline, rejected)
	b.Sessions, rejected = keepValid(b.Sessions, session.PhaseIntervention, rejected)
	return b, rejected, nil
}

func keepValid(records []session.Record, phase session.Phase, rejected []error) ([]session.Record, []error) {
	out := records[:0]
	for _, r := range records {
		if r.Phase == "" {
			r.Phase = phase
		}
		if err := r.Validate(); err != nil {
			rejected = append(rejected, err)
			continue
		}
		out = append(out, r)
	}
	return orEmptyRecords(out), rejected
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyRecords(s []session.Record) []session.Record {
	if s == nil {
		return []session.Record{}
	}
	return s
}
