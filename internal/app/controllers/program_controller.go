package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/app/models/dto"
	"github.com/webssis/ssis/internal/app/services"
	"github.com/webssis/ssis/internal/middleware"
)

// ProgramController handles program-related operations
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

func programFromRequest(req *dto.ProgramRequest) *models.Program {
	college := req.CollegeCode
	return &models.Program{
		Code:        req.ProgramCode,
		Name:        req.ProgramName,
		CollegeCode: &college,
	}
}

// CreateProgram handles program creation
// @Summary Create a new program
// @Tags programs
// @Accept json
// @Produce json
// @Param request body dto.ProgramRequest true "Program information"
// @Success 201 {object} dto.ProgramCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or unknown college"
// @Failure 409 {object} dto.ErrorResponse "Program code already exists"
// @Router /add_program [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	program := programFromRequest(&req)
	if err := c.programService.CreateProgram(ctx, program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ProgramCreatedResponse{
		Message:     "Program registered successfully!",
		ProgramCode: program.Code,
	})
}

// GetAllPrograms retrieves all programs
func (c *ProgramController) GetAllPrograms(ctx *gin.Context) {
	programs, err := c.programService.GetAllPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, programs)
}

// UpdateProgram replaces a program
// @Summary Update a program
// @Tags programs
// @Param programcode path string true "Current program code"
// @Param request body dto.ProgramRequest true "New program values"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/{programcode} [put]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	if err := c.programService.UpdateProgram(ctx, ctx.Param("programcode"), programFromRequest(&req)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Program updated successfully!"})
}

// DeleteProgram removes a program; its students are kept with no program
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	if err := c.programService.DeleteProgram(ctx, ctx.Param("programcode")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Program deleted successfully!"})
}

// SearchPrograms matches the keyword against program code, name and college
func (c *ProgramController) SearchPrograms(ctx *gin.Context) {
	programs, err := c.programService.SearchPrograms(ctx, searchKeyword(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, programs)
}

func (c *ProgramController) CountPrograms(ctx *gin.Context) {
	count, err := c.programService.CountPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}
