package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/app/models/dto"
	"github.com/webssis/ssis/internal/app/services"
	"github.com/webssis/ssis/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

func studentFromRequest(req *dto.StudentRequest) *models.Student {
	program := req.ProgramCode
	return &models.Student{
		IDNum:       req.IDNum,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Sex:         req.Sex,
		YearLevel:   req.YearLevel,
		ProgramCode: &program,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.StudentCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or unknown program"
// @Failure 409 {object} dto.ErrorResponse "Student ID already exists"
// @Router /add_student [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	student := studentFromRequest(&req)
	if err := c.studentService.CreateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentCreatedResponse{
		Message: "Student registered successfully!",
		IDNum:   student.IDNum,
	})
}

func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// UpdateStudent replaces every field of a student
// @Summary Update a student
// @Tags students
// @Param idnum path string true "Current student ID"
// @Param request body dto.StudentRequest true "New student values"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{idnum} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	if err := c.studentService.UpdateStudent(ctx, ctx.Param("idnum"), studentFromRequest(&req)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student updated successfully!"})
}

func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("idnum")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully!"})
}

// SearchStudents matches the keyword against every textual student column
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	students, err := c.studentService.SearchStudents(ctx, searchKeyword(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

func (c *StudentController) CountStudents(ctx *gin.Context) {
	count, err := c.studentService.CountStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}
