package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/app/models/dto"
	"github.com/webssis/ssis/internal/app/services"
	"github.com/webssis/ssis/internal/middleware"
)

// CollegeController handles college-related operations
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// CreateCollege handles college creation
// @Summary Create a new college
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.CollegeRequest true "College information"
// @Success 201 {object} dto.CollegeCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 409 {object} dto.ErrorResponse "College code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /add_college [post]
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	college := &models.College{Code: req.CollegeCode, Name: req.CollegeName}
	if err := c.collegeService.CreateCollege(ctx, college); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CollegeCreatedResponse{
		Message:     "College registered successfully!",
		CollegeCode: college.Code,
	})
}

// GetAllColleges retrieves all colleges
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {array} models.College
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college_list [get]
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAllColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, colleges)
}

// UpdateCollege replaces a college. The body's collegecode may rename it.
// @Summary Update a college
// @Tags colleges
// @Accept json
// @Produce json
// @Param collegecode path string true "Current college code"
// @Param request body dto.CollegeRequest true "New college values"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 409 {object} dto.ErrorResponse "College code already exists"
// @Router /colleges/{collegecode} [put]
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	college := &models.College{Code: req.CollegeCode, Name: req.CollegeName}
	if err := c.collegeService.UpdateCollege(ctx, ctx.Param("collegecode"), college); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "College updated successfully!"})
}

// DeleteCollege removes a college; its programs are kept with no college
// @Summary Delete a college
// @Tags colleges
// @Produce json
// @Param collegecode path string true "College code"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /delete_college/{collegecode} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	if err := c.collegeService.DeleteCollege(ctx, ctx.Param("collegecode")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "College deleted successfully!"})
}

// SearchColleges matches the keyword against college code and name
// @Summary Search colleges
// @Tags colleges
// @Produce json
// @Param keyword path string false "Search keyword"
// @Success 200 {array} models.College
// @Router /search_college/{keyword} [get]
func (c *CollegeController) SearchColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.SearchColleges(ctx, searchKeyword(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, colleges)
}

// CountColleges returns the number of colleges
// @Summary Count colleges
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Router /college_count [get]
func (c *CollegeController) CountColleges(ctx *gin.Context) {
	count, err := c.collegeService.CountColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// searchKeyword reads the catch-all keyword segment. It is empty when the
// route was called without one.
func searchKeyword(ctx *gin.Context) string {
	return strings.TrimPrefix(ctx.Param("keyword"), "/")
}
