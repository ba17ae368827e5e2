package models

// Student defines the student model based on the 'students' table
type Student struct {
	IDNum       string    `json:"idnum" db:"idnum" example:"2023-0001"`
	FirstName   string    `json:"firstname" db:"firstname" example:"Juan"`
	LastName    string    `json:"lastname" db:"lastname" example:"Dela Cruz"`
	Sex         string    `json:"sex" db:"sex" example:"Male"`
	YearLevel   YearLevel `json:"yearlevel" db:"yearlevel" example:"2"`
	ProgramCode *string   `json:"programcode" db:"programcode" example:"BSCS"` // NULL once the program is deleted
}
