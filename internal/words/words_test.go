package words

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sightwords/internal/trial"
)

func testBank() *Bank {
	return NewBank(rand.New(rand.NewPCG(1, 2)))
}

func TestBank(t *testing.T) {
	b := testBank()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, b.Grades())
	assert.Len(t, b.SightWords(1), 20)
	assert.Equal(t, b.SightWords(1), b.SightWords(42), "unknown grade falls back to grade 1")

	random := b.RandomWords(5, 10)
	assert.Len(t, random, 10)
	for _, w := range random {
		_, ok := b.Lookup(5, w)
		assert.True(t, ok, w)
	}

	w, ok := b.Lookup(1, "i")
	assert.True(t, ok)
	assert.Equal(t, "I", w)

	g, ok := b.GradeOf("because")
	assert.True(t, ok)
	assert.Equal(t, 5, g)
}

func TestBankListsAreDistinct(t *testing.T) {
	b := testBank()
	for _, g := range b.Grades() {
		seen := map[string]bool{}
		for _, w := range b.SightWords(g) {
			assert.False(t, seen[strings.ToLower(w)], "grade %d repeats %q", g, w)
			seen[strings.ToLower(w)] = true
		}
	}
}

func TestAdd(t *testing.T) {
	list, err := Add(nil, "  Because ")
	require.NoError(t, err)
	assert.Equal(t, []string{"because"}, list)

	_, err = Add(list, "BECAUSE")
	assert.ErrorIs(t, err, ErrDuplicateWord)

	_, err = Add(list, "   ")
	assert.ErrorIs(t, err, ErrEmptyWord)

	_, err = Add(list, "l33t")
	assert.ErrorIs(t, err, ErrInvalidCharacters)

	full := Generate(testBank(), 6)
	require.Len(t, full, MaxTargets)
	_, err = Add(full, "extra")
	assert.ErrorIs(t, err, ErrTooManyTargets)
}

func TestParseAndValidate(t *testing.T) {
	list, err := Parse([]string{"The", "the", "", "and"})
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "and"}, list)
	assert.ErrorIs(t, ValidateForSave(list), ErrNotEnoughTargets)

	many := strings.Fields("a b c d e f g h i j k")
	_, err = Parse(many)
	assert.ErrorIs(t, err, ErrTooManyTargets)

	assert.NoError(t, ValidateForSave(Generate(testBank(), 5)))
	assert.Equal(t, []string{"the"}, Remove([]string{"the", "and"}, "AND"))
}

func TestSimilar(t *testing.T) {
	got := Similar("their", []string{"there", "their", "the", "about", "her", "three"}, 3)
	assert.Equal(t, []string{"her", "the", "there"}, got)

	got = Similar("their", []string{"about", "three"}, 3)
	assert.Equal(t, []string{"three", "about"}, got, "fills with the next closest")
}

func TestCloseMatches(t *testing.T) {
	got := CloseMatches("was", []string{"has", "as", "because", "was"})
	assert.Equal(t, []string{"as", "has"}, got)
}

func wordsOf(qs []trial.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Word
	}
	return out
}

func assertOptions(t *testing.T, word string, options []string) {
	t.Helper()
	assert.Len(t, options, 1+DistractorCount)
	assert.Contains(t, options, word)
	seen := map[string]bool{}
	for _, o := range options {
		assert.False(t, seen[o], "duplicate option %q", o)
		seen[o] = true
	}
}

func TestBuilderBaseline(t *testing.T) {
	b := NewBuilder(testBank(), StrategyRandom)
	targets := []string{"because", "through", "zebra"}

	qs := b.Baseline(targets, 5)
	require.Len(t, qs, QuestionsPerSession)
	for i, q := range qs {
		assert.Equal(t, []string{"because", "through"}[i%2], q.Word)
		assertOptions(t, q.Word, q.Options)
		for _, o := range q.Options {
			if o != q.Word {
				assert.NotContains(t, targets, o, "distractor is a target word")
			}
		}
	}

	// No targets in the grade list: the whole list is used.
	qs = b.Baseline([]string{"zebra"}, 5)
	require.Len(t, qs, QuestionsPerSession)
	assert.Equal(t, testBank().SightWords(5)[:10], wordsOf(qs))
}

func TestBuilderLevel(t *testing.T) {
	b := NewBuilder(testBank(), StrategySimilar)
	targets := []string{"the", "and", "said"}

	qs := b.Level(targets, 1)
	require.Len(t, qs, QuestionsPerSession)
	got := wordsOf(qs)
	assert.Contains(t, got, "the")
	assert.Contains(t, got, "and")
	assert.NotContains(t, got, "said", "said is not a grade 1 word")

	seen := map[string]bool{}
	for _, q := range qs {
		assert.False(t, seen[q.Word], "word %q repeated", q.Word)
		seen[q.Word] = true
		assertOptions(t, q.Word, q.Options)
	}
}

func TestBuilderTargetWords(t *testing.T) {
	bank := testBank()
	b := NewBuilder(bank, StrategyRandom)
	targets := Generate(bank, 3)

	qs := b.TargetWords(targets, 6)
	require.Len(t, qs, QuestionsPerSession)
	assert.ElementsMatch(t, targets, wordsOf(qs))
	for _, q := range qs {
		assertOptions(t, q.Word, q.Options)
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("Similar")
	require.NoError(t, err)
	assert.Equal(t, StrategySimilar, s)

	s, err = ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyRandom, s)

	_, err = ParseStrategy("rhyming")
	assert.Error(t, err)
}

func TestImportYAML(t *testing.T) {
	tf, err := ImportYAML(strings.NewReader("participant: alex\ntargets:\n  - Because\n  - through\n  - because\n"))
	require.NoError(t, err)
	assert.Equal(t, "alex", tf.Participant)
	assert.Equal(t, []string{"because", "through"}, tf.Targets)

	tf, err = ImportYAML(strings.NewReader("- the\n- and\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "and"}, tf.Targets)

	_, err = ImportYAML(strings.NewReader("targets: [a, b, c, d, e, f, g, h, i, j, k]"))
	assert.ErrorIs(t, err, ErrTooManyTargets)

	_, err = ImportYAML(strings.NewReader("targets: {"))
	assert.Error(t, err)
}
