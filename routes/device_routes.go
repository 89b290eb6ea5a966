// ════════════════════════════════════════════════════════════
// Path: routes/device_routes.go
// Device platform surface (mobile apps)
// ════════════════════════════════════════════════════════════

package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/controllers/auth_controller"
	"github.com/kartify-commerce/kartify-backend/middleware"
)

// SetupDeviceRoutes registers the device surface.
func SetupDeviceRoutes(rg *gin.RouterGroup, deps *Deps) {
	device := rg.Group("/device/api/v1")
	device.Use(middleware.RateLimiter(deps.Redis, 300, time.Minute))

	auth := auth_controller.NewAuthController(deps.Auth, constants.PlatformDevice, constants.UserTypeUser)

	device.POST("/auth/login", auth.Login)
	device.POST("/auth/register", auth.Register)
	device.POST("/auth/forgot-password", auth.ForgotPassword)
	device.POST("/auth/validate-otp", auth.ValidateResetPasswordOtp)
	device.PUT("/auth/reset-password", auth.ResetPassword)

	protected := device.Group("")
	protected.Use(middleware.PlatformAuth(deps.Tokens, deps.Store, constants.PlatformDevice))
	protected.Use(middleware.CheckRolePermission(deps.Store, deps.AllowUserWithoutRole))
	{
		protected.POST("/auth/logout", auth.Logout)
		protected.PUT("/auth/change-password", auth.ChangePassword)
	}
}
