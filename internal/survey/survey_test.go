package survey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(p string, rating int) Response {
	r := New(p, time.Now())
	for _, q := range Questions {
		if q.Rating {
			_ = r.Set(q.Key, rating, "")
		} else {
			_ = r.Set(q.Key, 0, "  note ")
		}
	}
	return r
}

func TestValidate(t *testing.T) {
	r := filled("alex", 4)
	require.NoError(t, r.Validate())
	assert.Equal(t, "note", r.Liked)
	assert.NotEmpty(t, r.ID)

	r.Engagement = 6
	assert.ErrorIs(t, r.Validate(), ErrInvalidResponse)

	r = filled("", 3)
	assert.ErrorIs(t, r.Validate(), ErrInvalidResponse)

	assert.Error(t, r.Set("q9", 1, ""))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Response{filled("a", 2), filled("a", 4)})
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 3.0, s.Helpfulness, 1e-9)
	assert.InDelta(t, 3.0, s.WouldRecommend, 1e-9)

	assert.Equal(t, Summary{}, Summarize(nil))
}
