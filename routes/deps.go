// ════════════════════════════════════════════════════════════
// Path: routes/deps.go
// Shared dependencies handed to every route group
// ════════════════════════════════════════════════════════════

package routes

import (
	"github.com/redis/go-redis/v9"

	"github.com/kartify-commerce/kartify-backend/cascade"
	"github.com/kartify-commerce/kartify-backend/services"
	"github.com/kartify-commerce/kartify-backend/store"
)

// Deps is the wiring the route groups need. main builds one and hands
// it to every Setup function.
type Deps struct {
	Store      store.Store
	Tokens     *services.TokenService
	Auth       *services.AuthService
	Resolver   *cascade.Resolver
	Cloudinary *services.CloudinaryService

	// InvoiceMailer is nil when no Resend key is configured; the
	// invoice email route is only registered when it is present.
	InvoiceMailer *services.ResendClient

	Redis *redis.Client

	AllowUserWithoutRole bool
}
