package words

import (
	"fmt"
	"strings"

	"github.com/abhisek/sightwords/internal/trial"
)

const (
	// QuestionsPerSession is the number of trials in every session.
	QuestionsPerSession = 10

	// DistractorCount is the number of wrong options per trial.
	DistractorCount = 3
)

// Strategy selects how distractors are drawn from the grade list.
type Strategy string

const (
	StrategyRandom  Strategy = "random"
	StrategySimilar Strategy = "similar"
)

// ParseStrategy validates a configured strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case "", StrategyRandom:
		return StrategyRandom, nil
	case StrategySimilar:
		return StrategySimilar, nil
	}
	return "", fmt.Errorf("unknown distractor strategy %q", s)
}

// Builder assembles the questions for a session.
type Builder struct {
	bank     *Bank
	strategy Strategy
}

// NewBuilder returns a builder drawing from bank.
func NewBuilder(bank *Bank, strategy Strategy) *Builder {
	if strategy == "" {
		strategy = StrategyRandom
	}
	return &Builder{bank: bank, strategy: strategy}
}

// Baseline builds a probe session: the target words found in the grade list,
// repeated in order up to a full session. With no such targets the whole
// grade list is used. Distractors never include target words.
func (b *Builder) Baseline(targets []string, grade int) []trial.Question {
	gradeWords := b.bank.SightWords(grade)
	pool := b.inGrade(targets, grade)
	if len(pool) == 0 {
		pool = gradeWords
	}

	picked := make([]string, 0, QuestionsPerSession)
	for i := 0; len(pool) > 0 && i < QuestionsPerSession; i++ {
		picked = append(picked, pool[i%len(pool)])
	}

	candidates := exclude(gradeWords, targets)
	return b.questions(picked, candidates, gradeWords)
}

// Level builds an intervention session for a tier: the target words found in
// the tier's grade list, shuffled, then filled with other grade words.
func (b *Builder) Level(targets []string, grade int) []trial.Question {
	gradeWords := b.bank.SightWords(grade)
	picked := b.bank.Shuffle(b.inGrade(targets, grade))
	if len(picked) < QuestionsPerSession {
		fill := b.bank.Shuffle(exclude(gradeWords, picked))
		picked = append(picked, fill[:min(len(fill), QuestionsPerSession-len(picked))]...)
	}
	if len(picked) > QuestionsPerSession {
		picked = picked[:QuestionsPerSession]
	}
	return b.questions(picked, gradeWords, gradeWords)
}

// TargetWords builds the final session from the target list itself, with
// distractors from the participant's grade list.
func (b *Builder) TargetWords(targets []string, grade int) []trial.Question {
	picked := b.bank.Shuffle(append([]string(nil), targets...))
	if len(picked) > QuestionsPerSession {
		picked = picked[:QuestionsPerSession]
	}
	return b.questions(picked, b.bank.SightWords(grade), targets)
}

func (b *Builder) questions(words, candidates, fallback []string) []trial.Question {
	out := make([]trial.Question, 0, len(words))
	for _, w := range words {
		distractors := b.distractors(w, candidates)
		if len(distractors) < DistractorCount {
			// Top up from the wider list when exclusions leave too few.
			extra := exclude(fallback, append([]string{w}, distractors...))
			extra = b.bank.Shuffle(extra)
			distractors = append(distractors, extra[:min(len(extra), DistractorCount-len(distractors))]...)
		}
		options := b.bank.Shuffle(append([]string{w}, distractors...))
		out = append(out, trial.Question{Word: w, Options: options})
	}
	return out
}

func (b *Builder) distractors(word string, candidates []string) []string {
	others := exclude(candidates, []string{word})
	if b.strategy == StrategySimilar {
		return Similar(word, others, DistractorCount)
	}
	others = b.bank.Shuffle(others)
	return others[:min(len(others), DistractorCount)]
}

// inGrade returns the targets present in the grade list, in bank spelling.
func (b *Builder) inGrade(targets []string, grade int) []string {
	var out []string
	for _, t := range targets {
		if w, ok := b.bank.Lookup(grade, t); ok {
			out = append(out, w)
		}
	}
	return out
}

// exclude returns list without any word in drop, compared case-insensitively.
func exclude(list, drop []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if !contains(drop, w) {
			out = append(out, w)
		}
	}
	return out
}
