package models

// College represents a college row; collegecode is the primary key and the
// identity programs reference.
type College struct {
	Code string `json:"collegecode" db:"collegecode" example:"CCS"`
	Name string `json:"collegename" db:"collegename" example:"College of Computer Studies"`
}
