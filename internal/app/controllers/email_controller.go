package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webssis/ssis/internal/app/models/dto"
	"github.com/webssis/ssis/internal/app/services"
	"github.com/webssis/ssis/internal/middleware"
)

// EmailController exposes the welcome email on its own
type EmailController struct {
	notificationService services.NotificationService
}

// NewEmailController creates a new EmailController
func NewEmailController(notificationService services.NotificationService) *EmailController {
	return &EmailController{
		notificationService: notificationService,
	}
}

// SendWelcomeEmail sends the welcome email to to_email (or email)
// @Summary Send a welcome email
// @Tags email
// @Accept json
// @Produce json
// @Param request body dto.WelcomeEmailRequest true "Recipient"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing recipient"
// @Failure 502 {object} dto.ErrorResponse "Relay failure"
// @Router /send-welcome-email [post]
func (c *EmailController) SendWelcomeEmail(ctx *gin.Context) {
	var req dto.WelcomeEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	if err := c.notificationService.SendWelcomeEmail(ctx, req.Recipient(), req.Username); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome email sent successfully!"})
}
