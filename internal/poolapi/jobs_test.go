package poolapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJobsFlattensNestedRecords(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/jobs", r.URL.Path)
		assert.Equal(t, "platform", r.URL.Query().Get("search"))

		fmt.Fprint(w, `[
			{
				"id": 5,
				"job_title": "Platform Engineer",
				"job_id": "ENG-2031",
				"department": "Engineering",
				"employment_type": "Full-time",
				"work_arrangement": "Remote",
				"location": "Berlin",
				"company": {"name": "Acme", "industry": "Software"},
				"required_skills": [{"category": "Technical", "skills": ["Go", "Kubernetes"]}],
				"seniority_level": "Senior",
				"min_years_experience": 5,
				"max_years_experience": 8,
				"visa_sponsorship": true,
				"posted_date": "2025-06-01"
			},
			{"job_title": "Intern"}
		]`)
	}))

	page, err := client.ListJobs(context.Background(), ListQuery{
		Page:     0,
		PageSize: 10,
		Fields:   []FieldFilter{{Field: "department", Operator: "contains", Value: "platform"}},
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.ItemCount)

	full := page.Items[0]
	assert.Equal(t, 5, full.ID)
	assert.Equal(t, "Platform Engineer", full.Title)
	assert.Equal(t, "ENG-2031", full.Requisition)
	assert.Equal(t, "Acme", full.Company, "company name comes from the nested object")
	assert.Equal(t, "Technical: Go, Kubernetes", full.Skills)
	assert.Equal(t, 5, full.MinYears)
	assert.True(t, full.Visa)

	sparse := page.Items[1]
	assert.Equal(t, 0, sparse.ID, "list payloads may omit the numeric id")
	assert.Equal(t, "Intern", sparse.Title)
	assert.Equal(t, "N/A", sparse.Requisition)
	assert.Equal(t, "N/A", sparse.Company)
	assert.Equal(t, "N/A", sparse.Seniority)
	assert.Equal(t, 0, sparse.MaxYears)
	assert.False(t, sparse.Visa)
}

func TestGetJobKeepsRawPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/jobs/4", r.URL.Path)
		fmt.Fprint(w, `{"id": 4, "job_title": "Data Scientist", "salary_info": {"salary_min": 90000, "salary_max": 120000, "currency": "EUR"}}`)
	}))

	job, err := client.GetJob(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", job.JobTitle)
	require.NotNil(t, job.SalaryInfo)
	assert.Equal(t, 90000, job.SalaryInfo.SalaryMin)
	assert.Equal(t, "EUR", job.SalaryInfo.Currency)
	assert.Contains(t, job.Raw, "salary_info")
}

func TestCreateJobNeverCallsAPI(t *testing.T) {
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	_, err := client.CreateJob(context.Background(), &Job{JobTitle: "Engineer"})

	var capErr *CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "job create", capErr.Op)
	assert.False(t, called, "no request may leave the client")
}

func TestUpdateJobNeverCallsAPI(t *testing.T) {
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	_, err := client.UpdateJob(context.Background(), 4, &Job{JobTitle: "Engineer"})

	var capErr *CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "job update", capErr.Op)
	assert.False(t, called, "no request may leave the client")
}

func TestDeleteJob(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/jobs/6", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteJob(context.Background(), 6))
}
