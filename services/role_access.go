package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kartify-commerce/kartify-backend/cascade"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
)

// RoleAccess maps an entity name to the CRUD operations a role grants
// on it, as single letters C, R, U, D.
type RoleAccess map[string][]string

// GetRoleAccess aggregates a user's route grants into a per-role CRUD
// matrix. Clients use it to hide UI actions the user cannot perform.
func GetRoleAccess(ctx context.Context, st store.Store, userID int) (map[string]RoleAccess, error) {
	var userRoles []models.UserRole
	if err := st.FindAll(ctx, &userRoles, store.Eq("user_id", userID)); err != nil {
		return nil, fmt.Errorf("find user roles: %w", err)
	}
	access := map[string]RoleAccess{}
	if len(userRoles) == 0 {
		return access, nil
	}
	roleIDs := make([]int, 0, len(userRoles))
	for _, ur := range userRoles {
		roleIDs = append(roleIDs, ur.RoleID)
	}

	var routeRoles []models.RouteRole
	if err := st.FindAll(ctx, &routeRoles, store.In("role_id", roleIDs)); err != nil {
		return nil, fmt.Errorf("find route grants: %w", err)
	}
	var roles []models.Role
	if err := st.FindAll(ctx, &roles, store.In("id", roleIDs)); err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	roleNames := map[int]string{}
	for _, r := range roles {
		roleNames[r.ID] = r.Name
	}

	routeIDs := make([]int, 0, len(routeRoles))
	for _, rr := range routeRoles {
		routeIDs = append(routeIDs, rr.RouteID)
	}
	var routes []models.ProjectRoute
	if len(routeIDs) > 0 {
		if err := st.FindAll(ctx, &routes, store.In("id", routeIDs)); err != nil {
			return nil, fmt.Errorf("find routes: %w", err)
		}
	}
	routesByID := map[int]models.ProjectRoute{}
	for _, pr := range routes {
		routesByID[pr.ID] = pr
	}

	entityNames := make([]string, 0)
	for _, k := range cascade.Kinds() {
		entityNames = append(entityNames, strings.ToLower(string(k)))
	}

	for _, rr := range routeRoles {
		roleName, ok := roleNames[rr.RoleID]
		if !ok {
			continue
		}
		route, ok := routesByID[rr.RouteID]
		if !ok {
			continue
		}
		uri := strings.ToLower(route.URI)
		for _, entity := range entityNames {
			if !strings.Contains(uri, "/"+entity+"/") {
				continue
			}
			var op string
			switch {
			case strings.Contains(uri, "create"):
				op = "C"
			case strings.Contains(uri, "list"):
				op = "R"
			case strings.Contains(uri, "update"):
				op = "U"
			case strings.Contains(uri, "delete"):
				op = "D"
			default:
				continue
			}
			if _, ok := access[roleName]; !ok {
				access[roleName] = RoleAccess{}
			}
			if !containsString(access[roleName][entity], op) {
				access[roleName][entity] = append(access[roleName][entity], op)
			}
		}
	}
	return access, nil
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
