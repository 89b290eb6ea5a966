// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/change_password.go
// Change password for the logged-in user
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/middleware"
	"github.com/kartify-commerce/kartify-backend/models"
)

// ChangePassword godoc
// @Summary Change the current password
// @Description Swap the password of the logged-in user after verifying the old one
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/change-password [put]
func (a *AuthController) ChangePassword(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization token required!"))
		return
	}
	var input models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			"Insufficient request parameters! oldPassword and newPassword is required."))
		return
	}
	if err := a.Auth.ChangePassword(c.Request.Context(), userID, input.OldPassword, input.NewPassword); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Password changed successfully", nil))
}
