// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/forgot_password.go
// Send a one-time reset code by email or SMS
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/models"
)

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Send a one-time reset code to the user's email or mobile number
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.ForgotPasswordRequest true "Account email"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /auth/forgot-password [post]
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var input models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			"Insufficient request parameters! email is required"))
		return
	}

	result, err := a.Auth.ForgotPassword(c.Request.Context(), strings.ToLower(input.Email))
	if err != nil {
		respondFailure(c, err)
		return
	}

	switch {
	case result.Email && result.SMS:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "OTP successfully send.", nil))
	case result.Email:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "OTP successfully send to your email.", nil))
	case result.SMS:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "OTP successfully send to your mobile number.", nil))
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			"OTP can not be sent due to some issue try again later"))
	}
}
