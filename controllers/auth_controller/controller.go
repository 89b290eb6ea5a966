// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/controller.go
// Shared dependencies for the auth endpoints
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/services"
)

// AuthController serves the auth endpoints of one platform. Each
// platform surface gets its own instance so tokens are always minted
// and verified under the right secret.
type AuthController struct {
	Auth     *services.AuthService
	Platform constants.Platform
	UserType constants.UserType
}

// NewAuthController builds the controller for a platform surface.
func NewAuthController(auth *services.AuthService, platform constants.Platform, userType constants.UserType) *AuthController {
	return &AuthController{Auth: auth, Platform: platform, UserType: userType}
}

// respondFailure maps a business failure to its HTTP status. Anything
// that is not a Failure is an internal error.
func respondFailure(c *gin.Context, err error) {
	if f, ok := services.AsFailure(err); ok {
		status := http.StatusBadRequest
		switch f.Kind {
		case services.FailureNotFound:
			status = http.StatusNotFound
		case services.FailureDenied:
			status = http.StatusUnauthorized
		case services.FailureLocked:
			status = http.StatusUnauthorized
		case services.FailureExpired:
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse(c, f.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
}
