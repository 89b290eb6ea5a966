// ════════════════════════════════════════════════════════════
// Path: routes/admin_routes.go
// Admin platform surface
// ════════════════════════════════════════════════════════════

package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/controllers/auth_controller"
	"github.com/kartify-commerce/kartify-backend/controllers/entity_controller"
	"github.com/kartify-commerce/kartify-backend/controllers/image_controller"
	"github.com/kartify-commerce/kartify-backend/controllers/order_controller"
	"github.com/kartify-commerce/kartify-backend/middleware"
)

// SetupAdminRoutes registers the admin surface. Every data route sits
// behind platform auth plus the role-route permission check.
func SetupAdminRoutes(rg *gin.RouterGroup, deps *Deps) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RateLimiter(deps.Redis, 100, time.Minute))

	auth := auth_controller.NewAuthController(deps.Auth, constants.PlatformAdmin, constants.UserTypeAdmin)

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	admin.POST("/auth/login", auth.Login)
	admin.POST("/auth/register", auth.Register)
	admin.POST("/auth/forgot-password", auth.ForgotPassword)
	admin.POST("/auth/validate-otp", auth.ValidateResetPasswordOtp)
	admin.PUT("/auth/reset-password", auth.ResetPassword)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Role Permission)
	// ════════════════════════════════════════════════════════════
	protected := admin.Group("")
	protected.Use(middleware.PlatformAuth(deps.Tokens, deps.Store, constants.PlatformAdmin))
	protected.Use(middleware.CheckRolePermission(deps.Store, deps.AllowUserWithoutRole))
	protected.Use(middleware.ActivityLog())
	{
		protected.POST("/auth/logout", auth.Logout)
		protected.PUT("/auth/change-password", auth.ChangePassword)

		crud := entity_controller.NewCrudController(deps.Store)
		entities := entity_controller.NewEntityController(deps.Resolver)
		entity := protected.Group("/entity/:entity")
		{
			entity.POST("/create", crud.CreateEntity)
			entity.POST("/list", crud.ListEntity)
			entity.GET("/get/:id", crud.GetEntity)
			entity.PUT("/update/:id", crud.UpdateEntity)
			entity.DELETE("/delete/:id", entities.DeleteEntity)
			entity.POST("/delete-many", entities.DeleteManyEntity)
			entity.PUT("/soft-delete/:id", entities.SoftDeleteEntity)
			entity.PUT("/soft-delete-many", entities.SoftDeleteManyEntity)
		}

		orders := order_controller.NewOrderController(deps.Store, deps.InvoiceMailer)
		protected.GET("/order/invoice/:id", orders.DownloadOrderInvoicePDF)
		if deps.InvoiceMailer != nil {
			protected.POST("/order/invoice/:id/send", orders.SendOrderInvoicePDF)
		}

		if deps.Cloudinary != nil {
			images := image_controller.NewImageController(deps.Store, deps.Cloudinary)
			protected.POST("/image/upload", images.UploadImage)
		}
	}
}
