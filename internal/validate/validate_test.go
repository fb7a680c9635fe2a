package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candidate-pool/poolctl/internal/poolapi"
)

func TestCandidateValid(t *testing.T) {
	c := &poolapi.Candidate{FullName: "Fiona Lin", Email: "fiona@example.com"}

	assert.Empty(t, Candidate(c))
}

func TestCandidateMissingEmail(t *testing.T) {
	c := &poolapi.Candidate{FullName: "Fiona Lin"}

	issues := Candidate(c)
	require.Len(t, issues, 1)
	assert.Equal(t, []string{"email"}, issues[0].Path)
	assert.Equal(t, "email is required", issues[0].Message)
}

func TestCandidateEmpty(t *testing.T) {
	issues := Candidate(nil)
	require.Len(t, issues, 2)
	assert.Equal(t, "full_name", issues[0].Field())
	assert.Equal(t, "email", issues[1].Field())
}

func TestJobMissingCompany(t *testing.T) {
	j := &poolapi.Job{JobTitle: "Data Engineer"}

	issues := Job(j)
	require.Len(t, issues, 1)
	assert.Equal(t, "company", issues[0].Field())
	assert.Equal(t, "company is required", issues[0].Message)
}

func TestJobMissingCompanyName(t *testing.T) {
	j := &poolapi.Job{
		JobTitle: "Data Engineer",
		Company:  &poolapi.CompanyInfo{Industry: "Software"},
	}

	issues := Job(j)
	require.Len(t, issues, 1)
	assert.Equal(t, []string{"company", "name"}, issues[0].Path)
	assert.Equal(t, "company.name is required", issues[0].Message)
}

func TestJobValid(t *testing.T) {
	j := &poolapi.Job{
		JobTitle: "Data Engineer",
		Company:  &poolapi.CompanyInfo{Name: "Acme"},
	}

	assert.Empty(t, Job(j))
}

func TestFirstForField(t *testing.T) {
	issues := Job(&poolapi.Job{})
	require.NotEmpty(t, issues)

	issue := FirstForField(issues, "job_title")
	require.NotNil(t, issue)
	assert.Equal(t, "job_title is required", issue.Message)

	assert.Nil(t, FirstForField(issues, "location"))
}
