package services

import (
	"context"
	"testing"

	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
	"github.com/kartify-commerce/kartify-backend/utils"
)

func TestGetRoleAccessBuildsCRUDMatrix(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	role := &models.Role{Name: "Manager", IsActive: true}
	if err := st.Create(ctx, role); err != nil {
		t.Fatalf("create role: %v", err)
	}
	user := &models.User{Username: "alice", IsActive: true}
	if err := st.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := st.Create(ctx, &models.UserRole{UserID: user.ID, RoleID: role.ID, IsActive: true}); err != nil {
		t.Fatalf("create user role: %v", err)
	}

	uris := []string{
		"/admin/product/create",
		"/admin/product/list",
		"/admin/product/update/:id",
		"/admin/order/list",
	}
	for _, uri := range uris {
		pr := &models.ProjectRoute{RouteName: utils.RouteKey(uri), Method: "POST", URI: uri, IsActive: true}
		if err := st.Create(ctx, pr); err != nil {
			t.Fatalf("create route: %v", err)
		}
		if err := st.Create(ctx, &models.RouteRole{RouteID: pr.ID, RoleID: role.ID, IsActive: true}); err != nil {
			t.Fatalf("create grant: %v", err)
		}
	}

	access, err := GetRoleAccess(ctx, st, user.ID)
	if err != nil {
		t.Fatalf("role access: %v", err)
	}
	manager, ok := access["Manager"]
	if !ok {
		t.Fatalf("missing Manager role in %v", access)
	}
	wantProduct := map[string]bool{"C": true, "R": true, "U": true}
	if len(manager["product"]) != 3 {
		t.Errorf("product ops = %v, want C R U", manager["product"])
	}
	for _, op := range manager["product"] {
		if !wantProduct[op] {
			t.Errorf("unexpected product op %q", op)
		}
	}
	if len(manager["order"]) != 1 || manager["order"][0] != "R" {
		t.Errorf("order ops = %v, want [R]", manager["order"])
	}
}

func TestGetRoleAccessNoRoles(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	user := &models.User{Username: "bob", IsActive: true}
	if err := st.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	access, err := GetRoleAccess(ctx, st, user.ID)
	if err != nil {
		t.Fatalf("role access: %v", err)
	}
	if len(access) != 0 {
		t.Errorf("access = %v, want empty", access)
	}
}
