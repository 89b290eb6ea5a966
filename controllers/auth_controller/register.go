// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/register.go
// Self-service user registration
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/models"
)

// Register godoc
// @Summary Register a new user
// @Description Create a user account for this platform. Without a password a generated one is delivered by email or SMS.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "New user"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			"Insufficient request parameters! username and email is required."))
		return
	}

	user, err := a.Auth.Register(c.Request.Context(), input, a.UserType, 0)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User registered successfully", user))
}
