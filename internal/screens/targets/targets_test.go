package targets

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sightwords/internal/participant"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/words"
)

type fakeStore struct {
	targets []string
	bank    *words.Bank
	saves   int
}

func (f *fakeStore) Targets() []string          { return f.targets }
func (f *fakeStore) Config() participant.Config { return participant.Config{GradeLevel: 6, ReadingLevel: 3} }
func (f *fakeStore) Bank() *words.Bank          { return f.bank }

func (f *fakeStore) SetTargets(_ context.Context, list []string) error {
	if err := words.ValidateForSave(list); err != nil {
		return err
	}
	f.saves++
	f.targets = append([]string(nil), list...)
	return nil
}

func newStore() *fakeStore {
	return &fakeStore{bank: words.NewBank(rand.New(rand.NewPCG(3, 4)))}
}

func typeWord(s *TargetsScreen, w string) {
	for _, r := range w {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestAddWords(t *testing.T) {
	s := New(newStore())
	typeWord(s, "Cat")
	typeWord(s, "cat")

	assert.Equal(t, []string{"cat"}, s.draft)
	assert.Contains(t, s.View(100, 30), "already in the list")
}

func TestDigitsAreIgnored(t *testing.T) {
	s := New(newStore())
	typeWord(s, "a1b")
	assert.Equal(t, []string{"ab"}, s.draft)
}

func TestLookalikeWarning(t *testing.T) {
	s := New(newStore())
	typeWord(s, "where")
	typeWord(s, "were")
	assert.Contains(t, s.status, "looks like where")
}

func TestSaveNeedsFullList(t *testing.T) {
	st := newStore()
	s := New(st)
	typeWord(s, "the")
	s.Update(ctrl('s'))
	assert.Equal(t, 0, st.saves)
	assert.Contains(t, s.status, "needs 10 words")

	s.Update(ctrl('g'))
	require.Len(t, s.draft, words.MaxTargets)
	s.Update(ctrl('s'))
	assert.Equal(t, 1, st.saves)
	assert.Equal(t, s.draft, st.targets)
	assert.False(t, s.dirty)
}

func TestRemoveSelected(t *testing.T) {
	s := New(&fakeStore{targets: []string{"a", "b", "c"}})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(ctrl('d'))
	assert.Equal(t, []string{"a", "c"}, s.draft)
	assert.Equal(t, 1, s.selected)
	assert.True(t, s.dirty)
}

func TestEscPops(t *testing.T) {
	s := New(newStore())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
