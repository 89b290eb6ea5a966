// ════════════════════════════════════════════════════════════
// Path: middleware/activity_log.go
// Audit trail for admin write operations
// ════════════════════════════════════════════════════════════

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kartify-commerce/kartify-backend/config"
)

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PUT":    "updated",
	"PATCH":  "updated",
	"DELETE": "deleted",
}

// ActivityLog records every admin write to the activity_logs audit
// table. GET requests are skipped. Must run after PlatformAuth, which
// puts the caller's identity in the context; like the login-event
// tracker, the insert goes through the raw pgx pool and a failure never
// fails the request.
func ActivityLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			c.Next()
			return
		}

		userID, hasUser := UserIDFromContext(c)
		username, _ := c.Get(CtxUsername)
		if !hasUser {
			log.Warn().Str("path", c.Request.URL.Path).Msg("[middleware.activity_log] no authenticated user in context")
			c.Next()
			return
		}

		c.Next()

		entity := c.Param("entity")
		recordID := c.Param("id")
		statusCode := c.Writer.Status()

		query := `
			INSERT INTO activity_logs (
				id, user_id, username, action, entity, record_id,
				method, path, status_code, occurred_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		`
		_, err := config.Pool.Exec(c.Request.Context(), query,
			uuid.New().String(),
			userID,
			username,
			actionVerb,
			entity,
			recordID,
			c.Request.Method,
			c.FullPath(),
			statusCode,
		)
		if err != nil {
			log.Error().Err(err).Int("userID", userID).Str("path", c.FullPath()).
				Msg("[middleware.activity_log] failed to record activity")
			return
		}
		log.Debug().Int("userID", userID).Str("action", actionVerb).Str("entity", entity).
			Int("status", statusCode).Msg("[middleware.activity_log] activity recorded")
	}
}
