package assessment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberpath/cyberpath-engine/internal/assessment"
	"github.com/cyberpath/cyberpath-engine/internal/catalog"
	"github.com/cyberpath/cyberpath-engine/internal/tracks"
)

func TestCalculateScores_ZeroResponses(t *testing.T) {
	e := assessment.New(catalog.Default())
	scores := e.CalculateScores(newSession())

	require.Len(t, scores, tracks.Count())
	for track, s := range scores {
		assert.Zerof(t, s, "track %s should score 0 with no responses", track)
	}
}

func TestCalculateScores_AllTracksAlwaysPresent(t *testing.T) {
	e := assessment.New(twoQuestionCatalog(t))
	sess := newSession()
	require.True(t, e.SubmitResponse(sess, "qa", "x", 0))

	scores := e.CalculateScores(sess)
	require.Len(t, scores, tracks.Count())
	// Tracks no answered option mentions still appear, at zero.
	assert.Zero(t, scores[tracks.Governance])
	assert.Zero(t, scores[tracks.DigitalForensics])
}

func TestCalculateScores_SplitScenario(t *testing.T) {
	// Two questions, each awarding its 3-point ceiling to a different track:
	// raw sums are 3 apiece against a denominator of mean(3,3)*2 = 6.
	e := assessment.New(twoQuestionCatalog(t))
	sess := newSession()
	require.True(t, e.SubmitResponse(sess, "qa", "x", 0))
	require.True(t, e.SubmitResponse(sess, "qb", "y", 0))

	scores := e.CalculateScores(sess)
	assert.InDelta(t, 50, scores[tracks.NetworkDefense], 1e-9)
	assert.InDelta(t, 50, scores[tracks.OffensiveSecurity], 1e-9)
}

func TestCalculateScores_FullCeilingReaches100(t *testing.T) {
	e := assessment.New(specialistCatalog(t))
	sess := newSession()
	require.True(t, e.SubmitResponse(sess, "qa", "x", 0))
	require.True(t, e.SubmitResponse(sess, "qb", "x", 0))

	scores := e.CalculateScores(sess)
	assert.InDelta(t, 100, scores[tracks.NetworkDefense], 1e-9)
}

func TestCalculateScores_PartialSessionNormalizesFairly(t *testing.T) {
	// One ceiling answer out of one response should normalize the same as
	// two ceiling answers out of two responses.
	e := assessment.New(specialistCatalog(t))
	sess := newSession()
	require.True(t, e.SubmitResponse(sess, "qa", "x", 0))

	scores := e.CalculateScores(sess)
	assert.InDelta(t, 100, scores[tracks.NetworkDefense], 1e-9)
}

func TestCalculateScores_Bounds(t *testing.T) {
	e := assessment.New(catalog.Default())
	sess := newSession()
	for _, q := range catalog.Default().Questions() {
		require.True(t, e.SubmitResponse(sess, q.ID, q.Options[0].Value, 0))
	}

	for track, s := range e.CalculateScores(sess) {
		assert.GreaterOrEqualf(t, s, 0.0, "track %s below 0", track)
		assert.LessOrEqualf(t, s, 100.0, "track %s above 100", track)
	}
}

func TestCalculateScores_Deterministic(t *testing.T) {
	e := assessment.New(catalog.Default())
	sess := newSession()
	for _, q := range catalog.Default().Questions() {
		require.True(t, e.SubmitResponse(sess, q.ID, q.Options[1].Value, 0))
	}

	first := e.CalculateScores(sess)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.CalculateScores(sess))
	}
}

func TestCalculateScores_AllZeroWeightCatalog(t *testing.T) {
	// A catalog whose options award nothing must degrade to zeros, not
	// divide by zero.
	c, err := catalog.New([]catalog.Question{
		{
			ID:       "q1",
			Prompt:   "weightless",
			Category: catalog.WorkStyle,
			Options: []catalog.Option{
				{Value: "a", Text: "one"},
				{Value: "b", Text: "two"},
			},
		},
	})
	require.NoError(t, err)

	e := assessment.New(c)
	sess := newSession()
	require.True(t, e.SubmitResponse(sess, "q1", "a", 0))

	for track, s := range e.CalculateScores(sess) {
		assert.Zerof(t, s, "track %s", track)
	}
}
