// ════════════════════════════════════════════════════════════
// Path: routes/client_routes.go
// Client platform surface (storefront web clients)
// ════════════════════════════════════════════════════════════

package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/controllers/auth_controller"
	"github.com/kartify-commerce/kartify-backend/middleware"
)

// SetupClientRoutes registers the client surface. Clients get the auth
// lifecycle; catalog browsing is served per entity behind the same
// permission check as admin.
func SetupClientRoutes(rg *gin.RouterGroup, deps *Deps) {
	client := rg.Group("/client/api/v1")
	client.Use(middleware.RateLimiter(deps.Redis, 300, time.Minute))

	auth := auth_controller.NewAuthController(deps.Auth, constants.PlatformClient, constants.UserTypeUser)

	client.POST("/auth/login", auth.Login)
	client.POST("/auth/register", auth.Register)
	client.POST("/auth/forgot-password", auth.ForgotPassword)
	client.POST("/auth/validate-otp", auth.ValidateResetPasswordOtp)
	client.PUT("/auth/reset-password", auth.ResetPassword)

	protected := client.Group("")
	protected.Use(middleware.PlatformAuth(deps.Tokens, deps.Store, constants.PlatformClient))
	protected.Use(middleware.CheckRolePermission(deps.Store, deps.AllowUserWithoutRole))
	{
		protected.POST("/auth/logout", auth.Logout)
		protected.PUT("/auth/change-password", auth.ChangePassword)
	}
}
