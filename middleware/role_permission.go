package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
	"github.com/kartify-commerce/kartify-backend/utils"
)

// Authorize decides whether userID may call the route identified by
// routePath. The route is matched against project_routes by both its
// canonical name and its URI, and the user needs an active route-role
// grant for one of their roles.
//
// A user with no role assignments is allowed when allowNoRole is set.
// That is the legacy policy; flip the flag to deny such users.
func Authorize(ctx context.Context, st store.Store, allowNoRole bool, userID int, routePath string) (bool, error) {
	var userRoles []models.UserRole
	err := st.FindAll(ctx, &userRoles, store.And(
		store.Eq("user_id", userID),
		store.Eq("is_active", true),
		store.Eq("is_deleted", false)))
	if err != nil {
		return false, fmt.Errorf("find user roles: %w", err)
	}
	if len(userRoles) == 0 {
		return allowNoRole, nil
	}

	var route models.ProjectRoute
	err = st.FindOne(ctx, &route, store.And(
		store.Eq("route_name", utils.RouteKey(routePath)),
		store.Eq("uri", routePath),
		store.Eq("is_active", true),
		store.Eq("is_deleted", false)))
	if err == store.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find route: %w", err)
	}

	roleIDs := make([]int, 0, len(userRoles))
	for _, ur := range userRoles {
		roleIDs = append(roleIDs, ur.RoleID)
	}
	granted, err := st.Count(ctx, &models.RouteRole{}, store.And(
		store.Eq("route_id", route.ID),
		store.In("role_id", roleIDs),
		store.Eq("is_active", true),
		store.Eq("is_deleted", false)))
	if err != nil {
		return false, fmt.Errorf("count grants: %w", err)
	}
	return granted > 0, nil
}

// CheckRolePermission is the gin wrapper around Authorize. It uses the
// registered route pattern, not the raw request path, so "/user/42"
// checks the grant for "/user/:id".
func CheckRolePermission(st store.Store, allowNoRole bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization token required!"))
			c.Abort()
			return
		}
		allowed, err := Authorize(c.Request.Context(), st, allowNoRole, userID, c.FullPath())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You are not having permission to access this route!"))
			c.Abort()
			return
		}
		c.Next()
	}
}
