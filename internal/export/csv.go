// Package export renders participant data as CSV and JSON for analysis in
// spreadsheet and statistics tools.
package export

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/survey"
)

// DateLayout is the date format used in CSV cells.
const DateLayout = "2006-01-02"

// SessionHeaders are the columns of the combined sessions CSV.
var SessionHeaders = []string{
	"Session Number",
	"Date",
	"Session Type",
	"Correct",
	"Incorrect",
	"Assisted",
	"No-Answer",
	"Total Questions",
	"Accuracy (%)",
	"Average Response Time (s)",
	"Prompt Type",
	"Words Tested",
	"Response Times (s)",
}

// BaselineHeaders are the columns of the baseline-only CSV.
var BaselineHeaders = []string{
	"Baseline Session",
	"Date",
	"Correct Answers",
	"Total Questions",
	"Accuracy (%)",
	"Words Tested",
	"Response Times (s)",
}

// SurveyHeaders are the columns of the survey CSV.
var SurveyHeaders = []string{
	"Participant ID",
	"Date",
	"Q1: Helpfulness (1-5)",
	"Q2: Engagement (1-5)",
	"Q3: Ease of Use (1-5)",
	"Q4: Would Recommend (1-5)",
	"Q5: Liked Most",
	"Q6: Difficulties",
	"Q7: Improvements",
}

// quotedWriter writes rows with every cell double-quoted. encoding/csv only
// quotes when it has to, and analysis templates expect uniform quoting.
type quotedWriter struct {
	w   *bufio.Writer
	err error
}

func newQuotedWriter(w io.Writer) *quotedWriter {
	return &quotedWriter{w: bufio.NewWriter(w)}
}

func (q *quotedWriter) row(cells ...string) {
	if q.err != nil {
		return
	}
	for i, c := range cells {
		if i > 0 {
			if q.err = q.w.WriteByte(','); q.err != nil {
				return
			}
		}
		_, q.err = q.w.WriteString(`"` + strings.ReplaceAll(c, `"`, `""`) + `"`)
		if q.err != nil {
			return
		}
	}
	q.err = q.w.WriteByte('\n')
}

func (q *quotedWriter) flush() error {
	if q.err != nil {
		return q.err
	}
	return q.w.Flush()
}

func itoa(n int) string { return strconv.Itoa(n) }

func fixed(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func joinTimes(times []float64) string {
	parts := make([]string, len(times))
	for i, t := range times {
		parts[i] = fixed(t)
	}
	return strings.Join(parts, "; ")
}

// SessionType names the kind of session a record came from.
func SessionType(r session.Record) string {
	switch {
	case r.Phase == session.PhaseBaseline:
		return "Baseline"
	case r.Level == session.LevelTargetWords:
		return "Target Words"
	}
	return "Intervention"
}

// Combined merges baseline and intervention records in date order. Records
// with equal dates keep baseline first.
func Combined(baseline, sessions []session.Record) []session.Record {
	all := make([]session.Record, 0, len(baseline)+len(sessions))
	all = append(all, baseline...)
	all = append(all, sessions...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})
	return all
}

// WriteSessionsCSV writes baseline and intervention records as one table.
// Probe rows fill Incorrect and leave Assisted and No-Answer blank;
// intervention rows do the opposite.
func WriteSessionsCSV(w io.Writer, baseline, sessions []session.Record) error {
	q := newQuotedWriter(w)
	q.row(SessionHeaders...)
	for _, r := range Combined(baseline, sessions) {
		var incorrect, assisted, noAnswer string
		if r.IsProbe() {
			incorrect = itoa(r.Total - r.Correct)
		} else {
			assisted = itoa(r.Assisted)
			noAnswer = itoa(r.NoAnswer)
		}
		avg := ""
		if len(r.ResponseTimes) > 0 {
			avg = fixed(r.AverageResponseTime())
		}
		q.row(
			itoa(r.SessionNumber),
			r.Date.Format(DateLayout),
			SessionType(r),
			itoa(r.Correct),
			incorrect,
			assisted,
			noAnswer,
			itoa(r.Total),
			fixed(r.Accuracy),
			avg,
			r.PromptType.Label(),
			strings.Join(r.Words, "; "),
			joinTimes(r.ResponseTimes),
		)
	}
	return q.flush()
}

// WriteBaselineCSV writes the baseline history on its own.
func WriteBaselineCSV(w io.Writer, baseline []session.Record) error {
	q := newQuotedWriter(w)
	q.row(BaselineHeaders...)
	for _, r := range baseline {
		q.row(
			itoa(r.SessionNumber),
			r.Date.Format(DateLayout),
			itoa(r.Correct),
			itoa(r.Total),
			fixed(r.Accuracy),
			strings.Join(r.Words, "; "),
			joinTimes(r.ResponseTimes),
		)
	}
	return q.flush()
}

// WriteSurveysCSV writes survey responses. Free-text columns follow the
// order analysts code them in, which differs from question order.
func WriteSurveysCSV(w io.Writer, list []survey.Response) error {
	q := newQuotedWriter(w)
	q.row(SurveyHeaders...)
	for _, s := range list {
		id := s.ParticipantID
		if id == "" {
			id = "N/A"
		}
		q.row(
			id,
			s.Date.Format(DateLayout),
			itoa(s.Helpfulness),
			itoa(s.Engagement),
			itoa(s.EaseOfUse),
			itoa(s.WouldRecommend),
			s.Liked,
			s.Difficulties,
			s.Improvements,
		)
	}
	return q.flush()
}

// Filename returns the default file name for an export of kind made at now.
func Filename(kind, ext string, now time.Time) string {
	return fmt.Sprintf("sightwords-%s-%s.%s", kind, now.Format(DateLayout), ext)
}
