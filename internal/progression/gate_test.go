package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/trial"
)

var tenWords = []string{"the", "and", "was", "said", "have", "they", "from", "what", "were", "there"}

func stableBaseline() []session.Record {
	out := make([]session.Record, 4)
	for i := range out {
		out[i] = session.Record{Phase: session.PhaseBaseline, Accuracy: 40}
	}
	return out
}

func masteredLevel(l session.Level, words ...string) []session.Record {
	out := make([]session.Record, 2)
	for i := range out {
		out[i] = session.Record{
			Level:      l,
			Phase:      session.PhaseIntervention,
			PromptType: session.PromptDelay,
			Accuracy:   95,
		}
	}
	for _, w := range words {
		out[1].Words = append(out[1].Words, w)
		out[1].Outcomes = append(out[1].Outcomes, trial.OutcomeCorrect)
	}
	return out
}

func availability(g *Gate) map[Mode]bool {
	out := make(map[Mode]bool)
	for _, st := range g.All() {
		out[st.Mode] = st.Available
	}
	return out
}

func TestGate_Fresh(t *testing.T) {
	g := NewGate(Inputs{TargetWords: tenWords})
	assert.Equal(t, map[Mode]bool{
		ModeBaseline:    true,
		ModeLevel1:      false,
		ModeLevel2:      false,
		ModeLevel3:      false,
		ModeTargetWords: false,
	}, availability(g))

	err := g.Check(ModeLevel1)
	assert.ErrorIs(t, err, ErrModeLocked)
}

func TestGate_InsufficientWords(t *testing.T) {
	g := NewGate(Inputs{TargetWords: tenWords[:9]})
	err := g.Check(ModeBaseline)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientWords)

	var ge *GateError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ModeBaseline, ge.Mode)
}

func TestGate_BaselineEstablished(t *testing.T) {
	g := NewGate(Inputs{TargetWords: tenWords, Baseline: stableBaseline()})
	st := g.Status(ModeBaseline)
	assert.False(t, st.Available)
	assert.True(t, st.Completed)
	assert.True(t, g.Status(ModeLevel1).Available)
	assert.ErrorIs(t, g.Check(ModeBaseline), ErrModeCompleted)
}

func TestGate_BaselineFlag(t *testing.T) {
	g := NewGate(Inputs{TargetWords: tenWords, BaselineFlag: true})
	assert.True(t, g.BaselineEstablished())
	assert.True(t, g.Status(ModeLevel1).Available)
}

func TestGate_LevelChain(t *testing.T) {
	sessions := masteredLevel(session.Level1)
	g := NewGate(Inputs{TargetWords: tenWords, Baseline: stableBaseline(), Sessions: sessions})

	assert.True(t, g.Status(ModeLevel1).Completed)
	assert.True(t, g.Status(ModeLevel2).Available)
	assert.False(t, g.Status(ModeLevel3).Available)

	sessions = append(sessions, masteredLevel(session.Level2)...)
	sessions = append(sessions, masteredLevel(session.Level3)...)
	g = NewGate(Inputs{TargetWords: tenWords, Baseline: stableBaseline(), Sessions: sessions})
	assert.True(t, g.Status(ModeTargetWords).Available)
}

func TestGate_MasteryIsSticky(t *testing.T) {
	sessions := masteredLevel(session.Level1)
	sessions = append(sessions, session.Record{
		Level: session.Level1, Phase: session.PhaseIntervention,
		PromptType: session.PromptDelay, Accuracy: 10,
	})
	g := NewGate(Inputs{TargetWords: tenWords, Baseline: stableBaseline(), Sessions: sessions})
	assert.True(t, g.LevelMastered(session.Level1))
	assert.True(t, g.Status(ModeLevel2).Available)
}

func TestGate_TargetWordsCompleted(t *testing.T) {
	var sessions []session.Record
	sessions = append(sessions, masteredLevel(session.Level1)...)
	sessions = append(sessions, masteredLevel(session.Level2)...)
	sessions = append(sessions, masteredLevel(session.Level3, tenWords...)...)

	g := NewGate(Inputs{TargetWords: tenWords, Baseline: stableBaseline(), Sessions: sessions})
	st := g.Status(ModeTargetWords)
	assert.True(t, st.Available, "level 3 answers must not complete the target words")
	assert.False(t, st.Completed)

	final := session.Record{Level: session.LevelTargetWords, Phase: session.PhaseIntervention}
	for _, w := range tenWords {
		final.Words = append(final.Words, w)
		final.Outcomes = append(final.Outcomes, trial.OutcomeCorrect)
	}
	g = NewGate(Inputs{TargetWords: tenWords, Baseline: stableBaseline(), Sessions: append(sessions, final)})
	st = g.Status(ModeTargetWords)
	assert.False(t, st.Available)
	assert.True(t, st.Completed)
	assert.ErrorIs(t, g.Check(ModeTargetWords), ErrModeCompleted)
}

func TestGate_TargetWordsNeedList(t *testing.T) {
	var sessions []session.Record
	for _, l := range session.InterventionLevels {
		sessions = append(sessions, masteredLevel(l)...)
	}
	g := NewGate(Inputs{TargetWords: tenWords[:5], Baseline: stableBaseline(), Sessions: sessions})
	assert.ErrorIs(t, g.Check(ModeTargetWords), ErrInsufficientWords)
}

func TestGate_StatusUnknownMode(t *testing.T) {
	g := NewGate(Inputs{TargetWords: tenWords, Baseline: stableBaseline()})
	var st Status
	require.NotPanics(t, func() { st = g.Status(Mode("level9")) })
	assert.False(t, st.Available)
	assert.False(t, st.Completed)
	assert.Equal(t, "unknown mode", st.Reason)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("2")
	require.NoError(t, err)
	assert.Equal(t, ModeLevel2, m)
	assert.Equal(t, session.Level2, m.Level())
	assert.Equal(t, trial.ModeIntervention, m.TrialMode())
	assert.Equal(t, trial.ModeProbe, ModeTargetWords.TrialMode())
	assert.Equal(t, session.PhaseBaseline, ModeBaseline.Phase())

	_, err = ParseMode("level9")
	assert.Error(t, err)
}
