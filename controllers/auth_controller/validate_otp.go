// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/validate_otp.go
// Pre-validate a reset code without consuming it
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/models"
)

// ValidateResetPasswordOtp godoc
// @Summary Validate a reset code
// @Description Check a one-time code before showing the new-password form. Validation does not consume the code.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.ValidateOtpRequest true "One-time code"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /auth/validate-otp [post]
func (a *AuthController) ValidateResetPasswordOtp(c *gin.Context) {
	var input models.ValidateOtpRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			"Insufficient request parameters! otp is required."))
		return
	}
	if err := a.Auth.ValidateResetCode(c.Request.Context(), input.Otp); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "OTP verified", nil))
}
