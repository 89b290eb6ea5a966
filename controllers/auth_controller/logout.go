// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/logout.go
// Logout by expiring the presented token
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/middleware"
	"github.com/kartify-commerce/kartify-backend/models"
)

// Logout godoc
// @Summary Logout
// @Description Mark the presented token expired so it is rejected from now on
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	token, tokenOK := middleware.TokenFromContext(c)
	if !ok || !tokenOK {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization token required!"))
		return
	}
	if err := a.Auth.Logout(c.Request.Context(), userID, token); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged Out Successfully", nil))
}
