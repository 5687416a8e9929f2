package entities

import (
	"time"
)

// Department tags which part of an organization a review speaks about.
// The meaning shifts by kind: companies use functional departments,
// colleges use fields of study, schools use the author's relationship.
type Department string

const (
	DepartmentEngineering   Department = "Engineering"
	DepartmentProduct       Department = "Product"
	DepartmentSales         Department = "Sales"
	DepartmentMarketing     Department = "Marketing"
	DepartmentHR            Department = "HR"
	DepartmentSupport       Department = "Support"
	DepartmentOperations    Department = "Operations"
	DepartmentFinance       Department = "Finance"
	DepartmentCompSci       Department = "Computer Science"
	DepartmentBusiness      Department = "Business"
	DepartmentElectrical    Department = "Electrical Engineering"
	DepartmentArts          Department = "Arts"
	DepartmentMedicine      Department = "Medicine"
	DepartmentTeaching      Department = "Teaching"
	DepartmentAdmin         Department = "Administration"
	DepartmentCivilServices Department = "Civil Services"
	DepartmentParent        Department = "Parent"
	DepartmentStudent       Department = "Student"
	DepartmentOther         Department = "Other"
)

// Review represents a user review of an organization. Immutable after
// creation except for the helpful-vote ledger overlay.
type Review struct {
	ID           string     `json:"id"`
	EntityID     string     `json:"entity_id"`
	Rating       int        `json:"rating"` // 1-5
	Department   Department `json:"department"`
	Title        string     `json:"title"`
	Pros         string     `json:"pros"`
	Cons         string     `json:"cons"`
	Advice       string     `json:"advice"`
	AuthorEmail  string     `json:"author_email"`
	IsVerified   bool       `json:"is_verified"`
	IsAnonymous  bool       `json:"is_anonymous"`
	CreatedAt    time.Time  `json:"created_at"`
	HelpfulVotes int        `json:"helpful_votes"`

	// IsUpvoted is computed from the local upvote set at read time,
	// never persisted on the review itself.
	IsUpvoted bool `json:"is_upvoted"`

	// College specific
	PlacementRating      *int   `json:"placement_rating,omitempty"`
	MessRating           *int   `json:"mess_rating,omitempty"`
	WifiRating           *int   `json:"wifi_rating,omitempty"`
	InfrastructureRating *int   `json:"infrastructure_rating,omitempty"`
	StrictnessRating     *int   `json:"strictness_rating,omitempty"`
	BatchYear            string `json:"batch_year,omitempty"`

	// School specific
	TeachersRating           *int `json:"teachers_rating,omitempty"`
	SafetyRating             *int `json:"safety_rating,omitempty"`
	SportsRating             *int `json:"sports_rating,omitempty"`
	ParentsInteractionRating *int `json:"parents_interaction_rating,omitempty"`

	// Gov org specific
	JobSecurityRating     *int `json:"job_security_rating,omitempty"`
	WorkLifeBalanceRating *int `json:"work_life_balance_rating,omitempty"`
	TransparencyRating    *int `json:"transparency_rating,omitempty"`
	BenefitsRating        *int `json:"benefits_rating,omitempty"`
}

// SubRatings returns all kind-specific sub-scores that are present,
// keyed by field name. Used for range validation.
func (r *Review) SubRatings() map[string]int {
	out := make(map[string]int)
	fields := map[string]*int{
		"placement_rating":           r.PlacementRating,
		"mess_rating":                r.MessRating,
		"wifi_rating":                r.WifiRating,
		"infrastructure_rating":      r.InfrastructureRating,
		"strictness_rating":          r.StrictnessRating,
		"teachers_rating":            r.TeachersRating,
		"safety_rating":              r.SafetyRating,
		"sports_rating":              r.SportsRating,
		"parents_interaction_rating": r.ParentsInteractionRating,
		"job_security_rating":        r.JobSecurityRating,
		"work_life_balance_rating":   r.WorkLifeBalanceRating,
		"transparency_rating":        r.TransparencyRating,
		"benefits_rating":            r.BenefitsRating,
	}
	for name, v := range fields {
		if v != nil {
			out[name] = *v
		}
	}
	return out
}

// InterviewExperience classifies how an interview went
type InterviewExperience string

const (
	InterviewExperiencePositive InterviewExperience = "Positive"
	InterviewExperienceNeutral  InterviewExperience = "Neutral"
	InterviewExperienceNegative InterviewExperience = "Negative"
)

// InterviewReport represents an interview experience submission
type InterviewReport struct {
	ID         string              `json:"id"`
	EntityID   string              `json:"entity_id"`
	Role       string              `json:"role"`
	Experience InterviewExperience `json:"experience"`
	Difficulty int                 `json:"difficulty"` // 1-5
	WasGhosted bool                `json:"was_ghosted"`
	CreatedAt  time.Time           `json:"created_at"`
}

// SalarySubmission represents a compensation data point
type SalarySubmission struct {
	ID                string    `json:"id"`
	EntityID          string    `json:"entity_id"`
	Role              string    `json:"role"`
	YearsOfExperience int       `json:"years_of_experience"`
	CTC               int       `json:"ctc"`     // annual cost to company
	InHand            int       `json:"in_hand"` // monthly in-hand
	Location          string    `json:"location"`
	CreatedAt         time.Time `json:"created_at"`
}
