package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webssis/ssis/internal/app/models/dto"
	"github.com/webssis/ssis/internal/app/services"
	"github.com/webssis/ssis/internal/middleware"
)

// AuthController handles registration, login and the user list
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Stores the user with a hashed password, then sends a welcome email.
// @Description A failed email is reported in email_sent/email_error; the user is kept.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	result, err := c.authService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.RegisterResponse{
		Message:   "User registered successfully!",
		UserID:    result.UserID,
		EmailSent: result.EmailSent,
	}
	if result.EmailErr != nil {
		resp.EmailError = result.EmailErr.Error()
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetUsers lists registered users without their passwords
// @Summary List users
// @Tags auth
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (c *AuthController) GetUsers(ctx *gin.Context) {
	users, err := c.authService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// Login handles user login
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid password"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	user, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User: dto.UserResponse{
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}
