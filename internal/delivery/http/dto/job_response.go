package dto

import "github.com/google/uuid"

type JobResponse struct {
	JobID          uuid.UUID   `json:"job_id"`
	Title          string      `json:"title"`
	CompanyName    string      `json:"company_name"`
	Location       string      `json:"location"`
	EmploymentType string      `json:"employment_type"`
	Description    string      `json:"description"`
	URL            string      `json:"url"`
	MinSalary      *float64    `json:"min_salary"`
	MaxSalary      *float64    `json:"max_salary"`
	IsRemote       bool        `json:"is_remote"`
	Education      string      `json:"education"`
	YearsExp       int         `json:"years_exp"`
	SkillIDs       []uuid.UUID `json:"skill_ids"`
	PostedDate     string      `json:"posted_date"`
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int           `json:"total"`
}

type CompatibilityResponse struct {
	Job                 JobResponse `json:"job"`
	Score               float64     `json:"score"`
	OverqualifiedSkills bool        `json:"overqualified_skills"`
	OverqualifiedEdu    bool        `json:"overqualified_education"`
	OverqualifiedYears  bool        `json:"overqualified_years"`
}
