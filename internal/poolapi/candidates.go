package poolapi

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Candidate is the nested record served by the API. The backend treats every
// section as optional, so the zero value is meaningful everywhere.
type Candidate struct {
	ID       int    `json:"id,omitempty"`
	FullName string `json:"full_name,omitempty" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`

	Education      []Education     `json:"education,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Skills         []SkillGroup    `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Projects       []string        `json:"projects,omitempty"`
	Awards         []string        `json:"awards,omitempty"`
	Publications   []string        `json:"publications,omitempty"`

	YearsOfExperience int    `json:"years_of_experience,omitempty"`
	CurrentPosition   string `json:"current_position,omitempty"`
	CurrentCompany    string `json:"current_company,omitempty"`

	// Raw preserves the exact payload of a single-record fetch.
	Raw map[string]any `json:"-" mapstructure:"-"`
}

type Education struct {
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

type Experience struct {
	JobTitle         string   `json:"job_title,omitempty"`
	Company          string   `json:"company,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

type SkillGroup struct {
	Category string   `json:"category,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

type Certification struct {
	Name       string `json:"name,omitempty"`
	Issuer     string `json:"issuer,omitempty"`
	Date       string `json:"date,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
}

type Language struct {
	Name        string `json:"name,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// CandidateRow is the flat projection list views render. String columns are
// display-ready: blanks already carry the placeholder.
type CandidateRow struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	Position  string
	Company   string
	Years     int
	Skills    string
	Education string
	Languages string
}

// Row flattens the nested record into its list projection.
func (c *Candidate) Row() CandidateRow {
	return CandidateRow{
		ID:        c.ID,
		Name:      displayString(c.FullName),
		Email:     displayString(c.Email),
		Phone:     displayString(c.Phone),
		Position:  displayString(c.CurrentPosition),
		Company:   displayString(c.CurrentCompany),
		Years:     c.YearsOfExperience,
		Skills:    displayString(joinSkillGroups(c.Skills)),
		Education: displayString(joinEducation(c.Education)),
		Languages: displayString(joinLanguages(c.Languages)),
	}
}

// ListCandidates fetches one page of candidates flattened into rows.
func (c *Client) ListCandidates(ctx context.Context, q ListQuery) (*PageResult[CandidateRow], error) {
	q = q.normalized()

	items, err := c.listItems(ctx, candidatesPath, q.values())
	if err != nil {
		return nil, err
	}

	var records []*Candidate
	if err := decodeRecords(items, &records); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}

	rows := make([]CandidateRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.Row())
	}

	c.logger.Debug("fetched candidates page",
		zap.Int("page", q.Page),
		zap.Int("returned", len(rows)),
	)

	return &PageResult[CandidateRow]{
		Items:     rows,
		ItemCount: EstimateTotal(q.Page, q.PageSize, len(rows)),
	}, nil
}

// GetCandidate fetches a single candidate, keeping the raw payload alongside
// the typed record.
func (c *Client) GetCandidate(ctx context.Context, id int) (*Candidate, error) {
	var raw map[string]any
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d", candidatesPath, id), nil, &raw); err != nil {
		return nil, err
	}

	var record Candidate
	if err := decodeRecords(raw, &record); err != nil {
		return nil, fmt.Errorf("decode candidate %d: %w", id, err)
	}
	record.Raw = raw

	return &record, nil
}

func (c *Client) CreateCandidate(ctx context.Context, record *Candidate) (*Candidate, error) {
	var created Candidate
	if err := c.sendJSON(ctx, http.MethodPost, candidatesPath, record, &created); err != nil {
		return nil, err
	}

	c.logger.Debug("created candidate", zap.Int("id", created.ID))

	return &created, nil
}

func (c *Client) UpdateCandidate(ctx context.Context, id int, record *Candidate) (*Candidate, error) {
	var updated Candidate
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", candidatesPath, id), record, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *Client) DeleteCandidate(ctx context.Context, id int) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", candidatesPath, id), nil, nil)
}
