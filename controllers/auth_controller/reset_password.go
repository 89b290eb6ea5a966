// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/reset_password.go
// Consume a reset code and set a new password
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/models"
)

// ResetPassword godoc
// @Summary Reset the password with a one-time code
// @Description Replace the password, clear the code and lift any login lockout
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.ResetPasswordRequest true "Code and new password"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /auth/reset-password [put]
func (a *AuthController) ResetPassword(c *gin.Context) {
	var input models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			"Insufficient request parameters! code and newPassword is required."))
		return
	}
	if err := a.Auth.ResetPassword(c.Request.Context(), input.Code, input.NewPassword); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Password reset successfully", nil))
}
