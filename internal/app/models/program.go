package models

// Program represents an academic program offered by a college
type Program struct {
	Code        string  `json:"programcode" db:"programcode" example:"BSCS"`
	Name        string  `json:"programname" db:"programname" example:"BS Computer Science"`
	CollegeCode *string `json:"collegecode" db:"collegecode" example:"CCS"` // NULL once the college is deleted
}
