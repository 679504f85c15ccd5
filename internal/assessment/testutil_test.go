package assessment_test

import (
	"testing"

	"github.com/cyberpath/cyberpath-engine/internal/catalog"
	"github.com/cyberpath/cyberpath-engine/internal/session"
	"github.com/cyberpath/cyberpath-engine/internal/tracks"
)

// twoQuestionCatalog is the minimal scenario catalog: two single-category
// questions whose best options award 3 points to two different tracks.
func twoQuestionCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Question{
		{
			ID:       "qa",
			Prompt:   "first",
			Category: catalog.TechnicalAptitude,
			Options: []catalog.Option{
				{Value: "x", Text: "toward defense", Weights: map[string]int{tracks.NetworkDefense: 3}},
				{Value: "z", Text: "nothing", Weights: nil},
			},
		},
		{
			ID:       "qb",
			Prompt:   "second",
			Category: catalog.TechnicalAptitude,
			Options: []catalog.Option{
				{Value: "y", Text: "toward offense", Weights: map[string]int{tracks.OffensiveSecurity: 3}},
				{Value: "z", Text: "nothing", Weights: nil},
			},
		},
	})
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}

// specialistCatalog awards its full ceiling to a single track on every
// question, so a perfect run normalizes to 100.
func specialistCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Question{
		{
			ID:       "qa",
			Prompt:   "first",
			Category: catalog.TechnicalAptitude,
			Options: []catalog.Option{
				{Value: "x", Text: "best", Weights: map[string]int{tracks.NetworkDefense: 3}},
				{Value: "z", Text: "nothing", Weights: nil},
			},
		},
		{
			ID:       "qb",
			Prompt:   "second",
			Category: catalog.TechnicalAptitude,
			Options: []catalog.Option{
				{Value: "x", Text: "best", Weights: map[string]int{tracks.NetworkDefense: 3}},
				{Value: "z", Text: "nothing", Weights: nil},
			},
		},
	})
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}

func newSession() *session.Session {
	return &session.Session{ID: "s1", UserID: "u1", Responses: []session.Response{}}
}
