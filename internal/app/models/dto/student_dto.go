package dto

import "github.com/webssis/ssis/internal/app/models"

// StudentRequest is the body of add_student and of a student update
type StudentRequest struct {
	IDNum       string           `json:"idnum" binding:"required,notblank"`
	FirstName   string           `json:"firstname" binding:"required,notblank"`
	LastName    string           `json:"lastname" binding:"required,notblank"`
	Sex         string           `json:"sex" binding:"required,notblank"`
	YearLevel   models.YearLevel `json:"yearlevel" binding:"required,min=1"`
	ProgramCode string           `json:"programcode" binding:"required,notblank"`
}

// StudentCreatedResponse is returned by add_student
type StudentCreatedResponse struct {
	Message string `json:"message" example:"Student registered successfully!"`
	IDNum   string `json:"idnum" example:"2023-0001"`
}
