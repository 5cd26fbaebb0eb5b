// Package words provides the sight-word bank, target list handling and
// question building.
package words

import (
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
)

const (
	MinGrade = 1
	MaxGrade = 8
)

// Source supplies grade-level word lists.
type Source interface {
	SightWords(grade int) []string
	RandomWords(grade, n int) []string
}

// Bank is the built-in word source. Unknown grades fall back to grade 1.
type Bank struct {
	mu     sync.Mutex
	rng    *rand.Rand
	grades map[int][]string
}

// NewBank returns a bank over the built-in lists. A nil rng uses a randomly
// seeded generator.
func NewBank(rng *rand.Rand) *Bank {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Bank{rng: rng, grades: make(map[int][]string, len(builtin))}
	for g, list := range builtin {
		b.grades[g] = dedupe(list)
	}
	return b
}

// SightWords returns a copy of the grade's list.
func (b *Bank) SightWords(grade int) []string {
	list, ok := b.grades[grade]
	if !ok {
		list = b.grades[MinGrade]
	}
	return append([]string(nil), list...)
}

// RandomWords returns up to n distinct words from the grade's list.
func (b *Bank) RandomWords(grade, n int) []string {
	list := b.Shuffle(b.SightWords(grade))
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// Shuffle permutes words in place and returns them.
func (b *Bank) Shuffle(words []string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	return words
}

// Grades returns the grades the bank has lists for.
func (b *Bank) Grades() []int {
	out := make([]int, 0, len(b.grades))
	for g := range b.grades {
		out = append(out, g)
	}
	sort.Ints(out)
	return out
}

// Lookup returns the bank spelling of word in grade, matching case-insensitively.
func (b *Bank) Lookup(grade int, word string) (string, bool) {
	for _, w := range b.SightWords(grade) {
		if strings.EqualFold(w, word) {
			return w, true
		}
	}
	return "", false
}

// GradeOf returns the lowest grade whose list contains word.
func (b *Bank) GradeOf(word string) (int, bool) {
	for _, g := range b.Grades() {
		if _, ok := b.Lookup(g, word); ok {
			return g, true
		}
	}
	return 0, false
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}
