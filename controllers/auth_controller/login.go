// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/login.go
// Username/password login
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/middleware"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/utils"
)

// Login godoc
// @Summary Login with username and password
// @Description Authenticate with username (or email) and password on this platform
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			"Insufficient request parameters! username and password is required."))
		return
	}

	result, err := a.Auth.Login(c.Request.Context(), input.Username, input.Password, a.Platform, input.IncludeRoleAccess)
	if err != nil {
		middleware.ObserveLogin(a.Platform.String(), "failure")
		respondFailure(c, err)
		return
	}
	middleware.ObserveLogin(a.Platform.String(), "success")

	// Audit trail only, a failed insert must not fail the login.
	_ = utils.LogLoginEvent(c, result.User.ID, a.Platform.String())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful.", result))
}
