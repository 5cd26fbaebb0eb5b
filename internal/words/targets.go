package words

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxTargets caps the target list.
	MaxTargets = 10

	// RequiredTargets is the list size needed before sessions can run.
	RequiredTargets = 10
)

var (
	ErrEmptyWord         = errors.New("word is empty")
	ErrDuplicateWord     = errors.New("word is already in the list")
	ErrTooManyTargets    = fmt.Errorf("target list is limited to %d words", MaxTargets)
	ErrNotEnoughTargets  = fmt.Errorf("target list needs %d words", RequiredTargets)
	ErrInvalidCharacters = errors.New("word may only contain letters, apostrophes and hyphens")
)

// Normalize trims and lowercases a word.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func validWord(w string) bool {
	for _, r := range w {
		switch {
		case r >= 'a' && r <= 'z', r == '\'', r == '-':
		default:
			return false
		}
	}
	return true
}

// Add appends word to list after normalization.
func Add(list []string, word string) ([]string, error) {
	w := Normalize(word)
	switch {
	case w == "":
		return list, ErrEmptyWord
	case !validWord(w):
		return list, fmt.Errorf("%q: %w", w, ErrInvalidCharacters)
	case contains(list, w):
		return list, fmt.Errorf("%q: %w", w, ErrDuplicateWord)
	case len(list) >= MaxTargets:
		return list, ErrTooManyTargets
	}
	return append(list, w), nil
}

// Remove deletes word from list.
func Remove(list []string, word string) []string {
	w := Normalize(word)
	out := make([]string, 0, len(list))
	for _, t := range list {
		if t != w {
			out = append(out, t)
		}
	}
	return out
}

// Parse normalizes a batch of words, silently dropping blanks and repeats.
func Parse(words []string) ([]string, error) {
	var list []string
	for _, w := range words {
		next, err := Add(list, w)
		switch {
		case errors.Is(err, ErrEmptyWord), errors.Is(err, ErrDuplicateWord):
			continue
		case err != nil:
			return nil, err
		}
		list = next
	}
	return list, nil
}

// ValidateForSave checks that list is complete enough to persist.
func ValidateForSave(list []string) error {
	if len(list) < RequiredTargets {
		return fmt.Errorf("%w (have %d)", ErrNotEnoughTargets, len(list))
	}
	if len(list) > MaxTargets {
		return ErrTooManyTargets
	}
	return nil
}

// Generate picks a full target list at random from the grade's words.
func Generate(src Source, grade int) []string {
	var list []string
	for _, w := range src.RandomWords(grade, MaxTargets) {
		list, _ = Add(list, w)
	}
	return list
}

func contains(list []string, w string) bool {
	for _, t := range list {
		if strings.EqualFold(t, w) {
			return true
		}
	}
	return false
}
