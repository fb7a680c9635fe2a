package poolapi

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Job is the nested posting record served by the API. Requisition holds the
// external job_id code; list payloads may omit the numeric database ID.
type Job struct {
	ID              int          `json:"id,omitempty"`
	JobTitle        string       `json:"job_title,omitempty" validate:"required"`
	Requisition     string       `json:"job_id,omitempty"`
	Department      string       `json:"department,omitempty"`
	EmploymentType  string       `json:"employment_type,omitempty"`
	WorkArrangement string       `json:"work_arrangement,omitempty"`
	Location        string       `json:"location,omitempty"`
	Company         *CompanyInfo `json:"company,omitempty" validate:"required"`
	JobSummary      string       `json:"job_summary,omitempty"`
	JobDescription  string       `json:"job_description,omitempty"`

	Responsibilities        []string     `json:"responsibilities,omitempty"`
	RequiredSkills          []SkillGroup `json:"required_skills,omitempty"`
	PreferredSkills         []SkillGroup `json:"preferred_skills,omitempty"`
	EducationRequirements   []string     `json:"education_requirements,omitempty"`
	ExperienceRequirements  []string     `json:"experience_requirements,omitempty"`
	CertificationsRequired  []string     `json:"certifications_required,omitempty"`
	CertificationsPreferred []string     `json:"certifications_preferred,omitempty"`
	LanguagesRequired       []Language   `json:"languages_required,omitempty"`

	SalaryInfo          *SalaryInfo `json:"salary_info,omitempty"`
	ApplicationDeadline string      `json:"application_deadline,omitempty"`
	ApplicationProcess  string      `json:"application_process,omitempty"`
	ContactEmail        string      `json:"contact_email,omitempty"`
	ContactPerson       string      `json:"contact_person,omitempty"`
	TravelRequirements  string      `json:"travel_requirements,omitempty"`
	SecurityClearance   string      `json:"security_clearance,omitempty"`
	VisaSponsorship     bool        `json:"visa_sponsorship,omitempty"`
	DiversityStatement  string      `json:"diversity_statement,omitempty"`
	PostedDate          string      `json:"posted_date,omitempty"`
	LastUpdated         string      `json:"last_updated,omitempty"`
	UrgencyLevel        string      `json:"urgency_level,omitempty"`
	SeniorityLevel      string      `json:"seniority_level,omitempty"`
	MinYearsExperience  int         `json:"min_years_experience,omitempty"`
	MaxYearsExperience  int         `json:"max_years_experience,omitempty"`

	// Raw preserves the exact payload of a single-record fetch.
	Raw map[string]any `json:"-" mapstructure:"-"`
}

type CompanyInfo struct {
	Name        string `json:"name,omitempty" validate:"required"`
	Industry    string `json:"industry,omitempty"`
	Size        string `json:"size,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

type SalaryInfo struct {
	SalaryMin int    `json:"salary_min,omitempty"`
	SalaryMax int    `json:"salary_max,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Period    string `json:"period,omitempty"`
}

// JobRow is the flat projection list views render.
type JobRow struct {
	ID          int
	Title       string
	Requisition string
	Company     string
	Department  string
	Location    string
	Employment  string
	Arrangement string
	Seniority   string
	MinYears    int
	MaxYears    int
	Skills      string
	Visa        bool
	Posted      string
}

// Row flattens the nested posting into its list projection.
func (j *Job) Row() JobRow {
	company := ""
	if j.Company != nil {
		company = j.Company.Name
	}

	return JobRow{
		ID:          j.ID,
		Title:       displayString(j.JobTitle),
		Requisition: displayString(j.Requisition),
		Company:     displayString(company),
		Department:  displayString(j.Department),
		Location:    displayString(j.Location),
		Employment:  displayString(j.EmploymentType),
		Arrangement: displayString(j.WorkArrangement),
		Seniority:   displayString(j.SeniorityLevel),
		MinYears:    j.MinYearsExperience,
		MaxYears:    j.MaxYearsExperience,
		Skills:      displayString(joinSkillGroups(j.RequiredSkills)),
		Visa:        j.VisaSponsorship,
		Posted:      displayString(j.PostedDate),
	}
}

// ListJobs fetches one page of job postings flattened into rows.
func (c *Client) ListJobs(ctx context.Context, q ListQuery) (*PageResult[JobRow], error) {
	q = q.normalized()

	items, err := c.listItems(ctx, jobsPath, q.values())
	if err != nil {
		return nil, err
	}

	var records []*Job
	if err := decodeRecords(items, &records); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	rows := make([]JobRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.Row())
	}

	c.logger.Debug("fetched jobs page",
		zap.Int("page", q.Page),
		zap.Int("returned", len(rows)),
	)

	return &PageResult[JobRow]{
		Items:     rows,
		ItemCount: EstimateTotal(q.Page, q.PageSize, len(rows)),
	}, nil
}

// GetJob fetches a single posting, keeping the raw payload alongside the
// typed record.
func (c *Client) GetJob(ctx context.Context, id int) (*Job, error) {
	var raw map[string]any
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d", jobsPath, id), nil, &raw); err != nil {
		return nil, err
	}

	var record Job
	if err := decodeRecords(raw, &record); err != nil {
		return nil, fmt.Errorf("decode job %d: %w", id, err)
	}
	record.Raw = raw

	return &record, nil
}

// CreateJob always fails with a CapabilityError. Postings are written by the
// ingestion pipeline; the API has no endpoint for this and none is called.
func (c *Client) CreateJob(_ context.Context, _ *Job) (*Job, error) {
	return nil, &CapabilityError{Op: "job create"}
}

// UpdateJob always fails with a CapabilityError, same as CreateJob.
func (c *Client) UpdateJob(_ context.Context, _ int, _ *Job) (*Job, error) {
	return nil, &CapabilityError{Op: "job update"}
}

func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", jobsPath, id), nil, nil)
}
