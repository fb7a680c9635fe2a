package poolapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesForwardsParamsVerbatim(t *testing.T) {
	var gotQuery url.Values

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/jobs/4/matching-candidates", r.URL.Path)
		gotQuery = r.URL.Query()

		fmt.Fprint(w, `[
			{
				"candidate_id": 9,
				"candidate_name": "Fiona Lin",
				"overall_score": 0.87,
				"skills_score": 0.9,
				"experience_score": 0.8,
				"education_score": 0.75,
				"semantic_similarity": 0.66,
				"seniority_match": 1,
				"detailed_breakdown": {"skills": {"matched": ["Python"]}}
			},
			{
				"candidate_id": 3,
				"candidate_name": null,
				"overall_score": 0.61,
				"skills_score": 0.5,
				"experience_score": 0.7,
				"education_score": 0.6,
				"semantic_similarity": 0.55,
				"seniority_match": 0.5,
				"detailed_breakdown": {}
			}
		]`)
	}))

	rows, err := client.FindMatches(context.Background(), MatchQuery{JobID: 4, MinScore: 0.6, Limit: 25})
	require.NoError(t, err)

	assert.Equal(t, "0.6", gotQuery.Get("min_score"))
	assert.Equal(t, "25", gotQuery.Get("limit"))

	require.Len(t, rows, 2)

	// Engine order is authoritative.
	assert.Equal(t, 9, rows[0].CandidateID)
	assert.Equal(t, 3, rows[1].CandidateID)

	assert.Equal(t, "Fiona Lin", rows[0].CandidateName)
	assert.Equal(t, "N/A", rows[1].CandidateName)

	assert.InDelta(t, 0.87, rows[0].OverallScore, 1e-9)
	assert.InDelta(t, 0.66, rows[0].SemanticSimilarity, 1e-9)
	assert.Contains(t, rows[0].DetailedBreakdown, "skills")
}

func TestMatchRowPercents(t *testing.T) {
	t.Parallel()

	row := MatchRow{
		OverallScore:       0.876,
		SkillsScore:        0.9,
		ExperienceScore:    0.004,
		EducationScore:     0.875,
		SemanticSimilarity: 0.66,
		SeniorityMatch:     1,
	}

	p := row.Percents()

	assert.Equal(t, 88, p.Overall)
	assert.Equal(t, 90, p.Skills)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 88, p.Education, "midpoints round away from zero, not truncate")
	assert.Equal(t, 66, p.Semantic)
	assert.Equal(t, 100, p.Seniority)
}

func TestFindMatchesEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	}))

	rows, err := client.FindMatches(context.Background(), MatchQuery{JobID: 1, MinScore: 0.99, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
