package assessment

import (
	"github.com/cyberpath/cyberpath-engine/internal/catalog"
	"github.com/cyberpath/cyberpath-engine/internal/session"
	"github.com/cyberpath/cyberpath-engine/internal/tracks"
)

const maxPrimaryStrengths = 4

// closeRaceGap is the score distance between the top two tracks under which
// growth opportunities gain the explore-complementary-tracks hint.
const closeRaceGap = 15

// CareerAlignment summarizes where the score distribution points.
type CareerAlignment struct {
	PrimaryTrack   string   `json:"primary_track"`
	SecondaryTrack string   `json:"secondary_track,omitempty"`
	MatchScore     float64  `json:"match_score"`
	SuggestedRoles []string `json:"suggested_roles"`
}

// DeepInsight is the qualitative profile derived from response patterns and
// the ranked recommendations. Nothing here feeds back into scoring.
type DeepInsight struct {
	PrimaryStrengths       []string            `json:"primary_strengths"`
	LearningPreferences    map[string]string   `json:"learning_preferences"`
	CareerAlignment        CareerAlignment     `json:"career_alignment"`
	OptimalLearningPath    []string            `json:"optimal_learning_path"`
	RecommendedFoundations []string            `json:"recommended_foundations"`
	GrowthOpportunities    []string            `json:"growth_opportunities"`
	PersonalityTraits      tracks.TraitProfile `json:"personality_traits"`
}

// Behavioral axes are decided by a deliberately coarse majority vote: within
// one category, responses whose option code falls in a fixed 2-code subset
// vote for the first label, the rest for the second; ties and unanswered
// categories read "balanced". Product treats these labels as assessment
// outcomes, so the heuristic must stay this coarse.
var behavioralAxes = []struct {
	name     string
	category catalog.Category
	subset   [2]string
	inLabel  string
	outLabel string
}{
	{"learning_approach", catalog.TechnicalAptitude, [2]string{"a", "b"}, "hands-on", "structured"},
	{"problem_solving_style", catalog.ProblemSolving, [2]string{"a", "b"}, "exploratory", "methodical"},
	{"collaboration_style", catalog.WorkStyle, [2]string{"a", "d"}, "collaborative", "independent"},
}

const neutralLabel = "balanced"

// GenerateDeepInsights derives the qualitative profile for a session from
// its response patterns plus the already-ranked recommendations.
func (e *Engine) GenerateDeepInsights(sess *session.Session, scores map[string]float64, recs []Recommendation) DeepInsight {
	if len(recs) == 0 {
		return DeepInsight{LearningPreferences: map[string]string{}}
	}
	top := recs[0]

	codesByCategory := make(map[catalog.Category][]string)
	for _, r := range sess.Responses {
		q, ok := e.catalog.Get(r.QuestionID)
		if !ok {
			continue
		}
		codesByCategory[q.Category] = append(codesByCategory[q.Category], r.Value)
	}

	prefs := make(map[string]string, len(behavioralAxes))
	for _, axis := range behavioralAxes {
		prefs[axis.name] = majorityLabel(codesByCategory[axis.category], axis.subset, axis.inLabel, axis.outLabel)
	}

	strengths := top.StrengthsAligned
	if len(strengths) > maxPrimaryStrengths {
		strengths = strengths[:maxPrimaryStrengths]
	}

	alignment := CareerAlignment{
		PrimaryTrack:   top.TrackKey,
		MatchScore:     top.Score,
		SuggestedRoles: suggestedRoles(top.TrackKey),
	}
	if len(recs) > 1 && recs[1].Score >= secondaryTrackFloor {
		alignment.SecondaryTrack = recs[1].TrackKey
	}

	growth := append([]string(nil), tracks.Growth[top.TrackKey]...)
	if len(recs) > 1 && top.Score-recs[1].Score < closeRaceGap {
		growth = append(growth, "Your top tracks score closely; explore complementary tracks before committing to one.")
	}

	return DeepInsight{
		PrimaryStrengths:       strengths,
		LearningPreferences:    prefs,
		CareerAlignment:        alignment,
		OptimalLearningPath:    tracks.LearningPath[top.TrackKey],
		RecommendedFoundations: tracks.Foundations[top.TrackKey],
		GrowthOpportunities:    growth,
		PersonalityTraits:      tracks.Traits[top.TrackKey],
	}
}

func majorityLabel(codes []string, subset [2]string, inLabel, outLabel string) string {
	if len(codes) == 0 {
		return neutralLabel
	}
	in := 0
	for _, c := range codes {
		if c == subset[0] || c == subset[1] {
			in++
		}
	}
	out := len(codes) - in
	switch {
	case in > out:
		return inLabel
	case out > in:
		return outLabel
	default:
		return neutralLabel
	}
}

func suggestedRoles(trackKey string) []string {
	t, ok := tracks.Get(trackKey)
	if !ok {
		return nil
	}
	roles := t.CareerPaths
	if len(roles) > 3 {
		roles = roles[:3]
	}
	return roles
}
