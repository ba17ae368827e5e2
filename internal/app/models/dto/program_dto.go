package dto

// ProgramRequest is the body of add_program and of a program update
type ProgramRequest struct {
	CollegeCode string `json:"collegecode" binding:"required,notblank"`
	ProgramCode string `json:"programcode" binding:"required,notblank"`
	ProgramName string `json:"programname" binding:"required,notblank"`
}

// ProgramCreatedResponse is returned by add_program
type ProgramCreatedResponse struct {
	Message     string `json:"message" example:"Program registered successfully!"`
	ProgramCode string `json:"programcode" example:"BSCS"`
}
