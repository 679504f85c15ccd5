package assessment

import (
	"fmt"
	"math"
	"sort"

	"github.com/cyberpath/cyberpath-engine/internal/tracks"
)

// Confidence tiers for a recommendation.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

const maxCareerSuggestions = 4

// Recommendation is one ranked track with its supporting material. Scores
// are rounded to one decimal here and nowhere else.
type Recommendation struct {
	TrackKey          string   `json:"track_key"`
	TrackName         string   `json:"track_name"`
	Score             float64  `json:"score"`
	Confidence        string   `json:"confidence"`
	Reasoning         []string `json:"reasoning"`
	CareerSuggestions []string `json:"career_suggestions"`
	StrengthsAligned  []string `json:"strengths_aligned"`
	OptimalPath       string   `json:"optimal_path"`
}

// GenerateRecommendations ranks every track by normalized score, descending,
// with ties broken by catalog track order (stable sort). Output length always
// equals the track count.
func (e *Engine) GenerateRecommendations(scores map[string]float64) []Recommendation {
	ordered := tracks.All()
	recs := make([]Recommendation, 0, len(ordered))
	for _, t := range ordered {
		score := math.Round(scores[t.Key]*10) / 10
		suggestions := t.CareerPaths
		if len(suggestions) > maxCareerSuggestions {
			suggestions = suggestions[:maxCareerSuggestions]
		}
		recs = append(recs, Recommendation{
			TrackKey:          t.Key,
			TrackName:         t.Name,
			Score:             score,
			CareerSuggestions: suggestions,
			StrengthsAligned:  tracks.Strengths[t.Key],
			OptimalPath:       tracks.OptimalPath[t.Key],
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })

	for rank := range recs {
		recs[rank].Confidence = confidenceFor(rank, recs[rank].Score)
		recs[rank].Reasoning = []string{
			fmt.Sprintf("%s with %s at a %.1f%% match.", rankPhrase(rank), recs[rank].TrackName, recs[rank].Score),
			tracks.Reasoning[recs[rank].TrackKey],
		}
	}
	return recs
}

// confidenceFor applies the tiering rules in precedence order: top rank is
// high at 70+, medium below; ranks one and two are medium at 50+; everything
// else is low.
func confidenceFor(rank int, score float64) string {
	switch {
	case rank == 0 && score >= 70:
		return ConfidenceHigh
	case rank == 0:
		return ConfidenceMedium
	case rank <= 2 && score >= 50:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func rankPhrase(rank int) string {
	switch {
	case rank == 0:
		return "Your responses show strong alignment"
	case rank <= 2:
		return "Your responses show solid potential"
	default:
		return "Your responses show some alignment"
	}
}
