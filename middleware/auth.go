package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/services"
	"github.com/kartify-commerce/kartify-backend/store"
)

// Context keys set by PlatformAuth.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
	CtxToken    = "token"
	CtxPlatform = "platform"
)

// PlatformAuth validates the bearer token under the platform's secret,
// checks the token has not been logged out, and loads the active user
// into the request context.
func PlatformAuth(tokens *services.TokenService, st store.Store, platform constants.Platform) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization token required!"))
			c.Abort()
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization token required!"))
			c.Abort()
			return
		}
		tokenString := parts[1]

		claims, err := tokens.Verify(tokenString, platform)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		ctx := c.Request.Context()

		// Logout flips is_token_expired on the audit row, so a valid
		// signature alone is not enough.
		var audit models.UserToken
		err = st.FindOne(ctx, &audit, store.And(
			store.Eq("user_id", claims.ID),
			store.Eq("token", tokenString)))
		if err != nil || audit.IsTokenExpired {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		var user models.User
		err = st.FindOne(ctx, &user, store.And(
			store.Eq("id", claims.ID),
			store.Eq("is_active", true),
			store.Eq("is_deleted", false)))
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxUsername, user.Username)
		c.Set(CtxToken, tokenString)
		c.Set(CtxPlatform, platform)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's id.
func UserIDFromContext(c *gin.Context) (int, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// TokenFromContext returns the raw bearer token of the request.
func TokenFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxToken)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
