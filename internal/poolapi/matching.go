package poolapi

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// MatchQuery addresses the match listing for one job. MinScore and Limit are
// forwarded to the engine untouched; ranking and thresholding happen there.
type MatchQuery struct {
	JobID    int
	MinScore float64
	Limit    int
}

// MatchRow is one scored candidate as ranked by the remote engine. Scores
// are the engine's raw 0..1 floats.
type MatchRow struct {
	CandidateID        int            `json:"candidate_id"`
	CandidateName      string         `json:"candidate_name"`
	OverallScore       float64        `json:"overall_score"`
	SkillsScore        float64        `json:"skills_score"`
	ExperienceScore    float64        `json:"experience_score"`
	EducationScore     float64        `json:"education_score"`
	SemanticSimilarity float64        `json:"semantic_similarity"`
	SeniorityMatch     float64        `json:"seniority_match"`
	DetailedBreakdown  map[string]any `json:"detailed_breakdown"`
}

// MatchPercents is the display view of a row's scores, rounded to whole
// percentages.
type MatchPercents struct {
	Overall    int
	Skills     int
	Experience int
	Education  int
	Semantic   int
	Seniority  int
}

func (m MatchRow) Percents() MatchPercents {
	return MatchPercents{
		Overall:    percent(m.OverallScore),
		Skills:     percent(m.SkillsScore),
		Experience: percent(m.ExperienceScore),
		Education:  percent(m.EducationScore),
		Semantic:   percent(m.SemanticSimilarity),
		Seniority:  percent(m.SeniorityMatch),
	}
}

func percent(score float64) int {
	return int(math.Round(score * 100))
}

// FindMatches returns the engine's ranked matches for a job, in the order
// the engine sent them. The client never re-sorts or re-filters.
func (c *Client) FindMatches(ctx context.Context, q MatchQuery) ([]MatchRow, error) {
	v := url.Values{}
	v.Set("min_score", strconv.FormatFloat(q.MinScore, 'f', -1, 64))
	v.Set("limit", strconv.Itoa(q.Limit))

	path := fmt.Sprintf("%s/%d/matching-candidates", jobsPath, q.JobID)

	items, err := c.listItems(ctx, path, v)
	if err != nil {
		return nil, err
	}

	var rows []MatchRow
	if err := decodeRecords(items, &rows); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}

	for i := range rows {
		rows[i].CandidateName = displayString(rows[i].CandidateName)
	}

	c.logger.Debug("fetched matches",
		zap.Int("job_id", q.JobID),
		zap.Float64("min_score", q.MinScore),
		zap.Int("returned", len(rows)),
	)

	return rows, nil
}
