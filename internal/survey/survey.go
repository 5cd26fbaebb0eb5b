// Package survey holds the social-validity questionnaire practitioners fill
// in about the intervention.
package survey

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrInvalidResponse = errors.New("invalid survey response")

// Response is one completed questionnaire.
type Response struct {
	ID             string    `json:"id,omitempty"`
	ParticipantID  string    `json:"participantId"`
	Date           time.Time `json:"date"`
	Helpfulness    int       `json:"q1_helpfulness"`
	Engagement     int       `json:"q2_engagement"`
	EaseOfUse      int       `json:"q3_easeOfUse"`
	WouldRecommend int       `json:"q4_wouldRecommend"`
	Improvements   string    `json:"q5_improvements"`
	Liked          string    `json:"q6_liked"`
	Difficulties   string    `json:"q7_difficulties"`
}

// Question describes one survey item for prompting.
type Question struct {
	Key    string
	Text   string
	Rating bool
}

// Questions lists the survey items in order.
var Questions = []Question{
	{Key: "q1_helpfulness", Text: "How helpful was the intervention for learning sight words?", Rating: true},
	{Key: "q2_engagement", Text: "How engaged was the participant during sessions?", Rating: true},
	{Key: "q3_easeOfUse", Text: "How easy was the tool to use?", Rating: true},
	{Key: "q4_wouldRecommend", Text: "How likely are you to recommend this intervention?", Rating: true},
	{Key: "q5_improvements", Text: "What could be improved?"},
	{Key: "q6_liked", Text: "What did you like most?"},
	{Key: "q7_difficulties", Text: "Were there any difficulties?"},
}

// New stamps a response with an ID and date.
func New(participant string, now time.Time) Response {
	return Response{ID: uuid.NewString(), ParticipantID: participant, Date: now}
}

// Ratings returns the four ratings in question order.
func (r Response) Ratings() [4]int {
	return [4]int{r.Helpfulness, r.Engagement, r.EaseOfUse, r.WouldRecommend}
}

// Set assigns the answer for a question key.
func (r *Response) Set(key string, rating int, text string) error {
	switch key {
	case "q1_helpfulness":
		r.Helpfulness = rating
	case "q2_engagement":
		r.Engagement = rating
	case "q3_easeOfUse":
		r.EaseOfUse = rating
	case "q4_wouldRecommend":
		r.WouldRecommend = rating
	case "q5_improvements":
		r.Improvements = strings.TrimSpace(text)
	case "q6_liked":
		r.Liked = strings.TrimSpace(text)
	case "q7_difficulties":
		r.Difficulties = strings.TrimSpace(text)
	default:
		return fmt.Errorf("%w: unknown question %q", ErrInvalidResponse, key)
	}
	return nil
}

// Validate checks that every rating is answered and in range.
func (r Response) Validate() error {
	if strings.TrimSpace(r.ParticipantID) == "" {
		return fmt.Errorf("%w: participant is required", ErrInvalidResponse)
	}
	for i, v := range r.Ratings() {
		if v < MinRating || v > MaxRating {
			return fmt.Errorf("%w: %s must be %d-%d, got %d",
				ErrInvalidResponse, Questions[i].Key, MinRating, MaxRating, v)
		}
	}
	return nil
}

// Summary averages ratings across responses.
type Summary struct {
	Count          int
	Helpfulness    float64
	Engagement     float64
	EaseOfUse      float64
	WouldRecommend float64
}

// Summarize averages the ratings of list.
func Summarize(list []Response) Summary {
	s := Summary{Count: len(list)}
	if len(list) == 0 {
		return s
	}
	var sums [4]int
	for _, r := range list {
		for i, v := range r.Ratings() {
			sums[i] += v
		}
	}
	n := float64(len(list))
	s.Helpfulness = float64(sums[0]) / n
	s.Engagement = float64(sums[1]) / n
	s.EaseOfUse = float64(sums[2]) / n
	s.WouldRecommend = float64(sums[3]) / n
	return s
}
