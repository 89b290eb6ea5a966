package cascade

import (
	"context"
	"testing"

	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
)

func seedCountryTree(t *testing.T, st store.Store) (countryID int) {
	t.Helper()
	ctx := context.Background()

	country := &models.Country{Name: "India", IsActive: true}
	if err := st.Create(ctx, country); err != nil {
		t.Fatalf("create country: %v", err)
	}
	other := &models.Country{Name: "Nepal", IsActive: true}
	if err := st.Create(ctx, other); err != nil {
		t.Fatalf("create country: %v", err)
	}

	states := []*models.State{
		{Name: "Karnataka", CountryID: country.ID, IsActive: true},
		{Name: "Kerala", CountryID: country.ID, IsActive: true},
		{Name: "Bagmati", CountryID: other.ID, IsActive: true},
	}
	for _, s := range states {
		if err := st.Create(ctx, s); err != nil {
			t.Fatalf("create state: %v", err)
		}
	}
	pincodes := []*models.Pincode{
		{Pincode: "560001", CountryID: country.ID, IsActive: true},
		{Pincode: "560002", CountryID: country.ID, IsActive: true},
		{Pincode: "682001", CountryID: country.ID, IsActive: true},
		{Pincode: "44600", CountryID: other.ID, IsActive: true},
	}
	for _, p := range pincodes {
		if err := st.Create(ctx, p); err != nil {
			t.Fatalf("create pincode: %v", err)
		}
	}
	return country.ID
}

func TestResolverCountReportsDependents(t *testing.T) {
	st := store.NewMemoryStore()
	countryID := seedCountryTree(t, st)
	r := NewResolver(st)

	res, err := r.Count(context.Background(), KindCountry, store.Eq("id", countryID))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if res["country"] != 1 {
		t.Errorf("country count = %d, want 1", res["country"])
	}
	if res["state"] != 2 {
		t.Errorf("state count = %d, want 2", res["state"])
	}
	if res["pincode"] != 3 {
		t.Errorf("pincode count = %d, want 3", res["pincode"])
	}

	// Counting must not modify anything.
	n, err := st.Count(context.Background(), &models.State{}, nil)
	if err != nil {
		t.Fatalf("recount states: %v", err)
	}
	if n != 3 {
		t.Errorf("states after count = %d, want 3", n)
	}
}

func TestResolverDeleteRemovesDependentsOnly(t *testing.T) {
	st := store.NewMemoryStore()
	countryID := seedCountryTree(t, st)
	r := NewResolver(st)
	ctx := context.Background()

	res, err := r.Delete(ctx, KindCountry, store.Eq("id", countryID))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res["country"] != 1 || res["state"] != 2 || res["pincode"] != 3 {
		t.Errorf("delete result = %v, want country=1 state=2 pincode=3", res)
	}

	remainingStates, err := st.Count(ctx, &models.State{}, nil)
	if err != nil {
		t.Fatalf("count states: %v", err)
	}
	if remainingStates != 1 {
		t.Errorf("remaining states = %d, want 1 (other country untouched)", remainingStates)
	}
	remainingPincodes, err := st.Count(ctx, &models.Pincode{}, nil)
	if err != nil {
		t.Fatalf("count pincodes: %v", err)
	}
	if remainingPincodes != 1 {
		t.Errorf("remaining pincodes = %d, want 1", remainingPincodes)
	}
}

func TestResolverDeleteNoMatchesReturnsZero(t *testing.T) {
	st := store.NewMemoryStore()
	seedCountryTree(t, st)
	r := NewResolver(st)

	res, err := r.Delete(context.Background(), KindCountry, store.Eq("id", 9999))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res["country"] != 0 {
		t.Errorf("country count = %d, want 0", res["country"])
	}
	if _, ok := res["state"]; ok {
		t.Errorf("no dependents should be reported when no owner matched, got %v", res)
	}
}

func TestResolverSoftDeleteFlagsRows(t *testing.T) {
	st := store.NewMemoryStore()
	countryID := seedCountryTree(t, st)
	r := NewResolver(st)
	ctx := context.Background()

	res, err := r.SoftDelete(ctx, KindCountry, store.Eq("id", countryID))
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if res["country"] != 1 || res["state"] != 2 || res["pincode"] != 3 {
		t.Errorf("soft delete result = %v, want country=1 state=2 pincode=3", res)
	}

	// Rows stay in place but carry the deleted flag.
	total, err := st.Count(ctx, &models.State{}, nil)
	if err != nil {
		t.Fatalf("count states: %v", err)
	}
	if total != 3 {
		t.Errorf("states after soft delete = %d, want 3", total)
	}
	flagged, err := st.Count(ctx, &models.State{}, store.Eq("is_deleted", true))
	if err != nil {
		t.Fatalf("count flagged states: %v", err)
	}
	if flagged != 2 {
		t.Errorf("flagged states = %d, want 2", flagged)
	}
}

func TestResolverMultiColumnRelations(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	parent := &models.Category{Name: "Electronics", IsActive: true}
	if err := st.Create(ctx, parent); err != nil {
		t.Fatalf("create category: %v", err)
	}
	products := []*models.Product{
		{Name: "Phone", CategoryID: parent.ID, IsActive: true},
		{Name: "Charger", SubCategoryID: parent.ID, IsActive: true},
		{Name: "Desk", CategoryID: parent.ID + 100, IsActive: true},
	}
	for _, p := range products {
		if err := st.Create(ctx, p); err != nil {
			t.Fatalf("create product: %v", err)
		}
	}

	res, err := NewResolver(st).Count(ctx, KindCategory, store.Eq("id", parent.ID))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if res["product"] != 2 {
		t.Errorf("product count = %d, want 2 (matched on either category column)", res["product"])
	}
}

func TestResolverRejectsUnknownKind(t *testing.T) {
	r := NewResolver(store.NewMemoryStore())
	if _, err := r.Count(context.Background(), Kind("bogus"), nil); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

// seedUserGraph builds an admin who created a second user, two orders
// and a cart, plus an unrelated user with an order that must survive
// any cascade rooted at the admin.
func seedUserGraph(t *testing.T, st store.Store) (adminID int) {
	t.Helper()
	ctx := context.Background()

	admin := &models.User{Username: "admin", IsActive: true}
	if err := st.Create(ctx, admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	staff := &models.User{Username: "staff", IsActive: true, AddedBy: admin.ID}
	if err := st.Create(ctx, staff); err != nil {
		t.Fatalf("create staff: %v", err)
	}
	bystander := &models.User{Username: "bystander", IsActive: true}
	if err := st.Create(ctx, bystander); err != nil {
		t.Fatalf("create bystander: %v", err)
	}

	orders := []*models.Order{
		{OrderNumber: "ORD-1", CustomerID: admin.ID, IsActive: true},
		{OrderNumber: "ORD-2", CustomerID: admin.ID, IsActive: true},
		{OrderNumber: "ORD-3", CustomerID: bystander.ID, IsActive: true},
	}
	for _, o := range orders {
		if err := st.Create(ctx, o); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}
	if err := st.Create(ctx, &models.Cart{CustomerID: admin.ID, IsActive: true}); err != nil {
		t.Fatalf("create cart: %v", err)
	}
	return admin.ID
}

func TestResolverUserCascadeCount(t *testing.T) {
	st := store.NewMemoryStore()
	adminID := seedUserGraph(t, st)

	res, err := NewResolver(st).Count(context.Background(), KindUser, store.Eq("id", adminID))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if res["user"] != 2 {
		t.Errorf("user count = %d, want 2 (owner plus the user they created)", res["user"])
	}
	if res["order"] != 2 {
		t.Errorf("order count = %d, want 2", res["order"])
	}
	if res["cart"] != 1 {
		t.Errorf("cart count = %d, want 1", res["cart"])
	}
}

func TestResolverUserCascadeDelete(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	adminID := seedUserGraph(t, st)

	res, err := NewResolver(st).Delete(ctx, KindUser, store.Eq("id", adminID))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res["user"] != 2 {
		t.Errorf("user count = %d, want 2 (owner plus the user they created)", res["user"])
	}
	if res["order"] != 2 {
		t.Errorf("order count = %d, want 2", res["order"])
	}
	if res["cart"] != 1 {
		t.Errorf("cart count = %d, want 1", res["cart"])
	}

	users, err := st.Count(ctx, &models.User{}, nil)
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 1 {
		t.Errorf("users left = %d, want 1 (only the bystander)", users)
	}
	orders, err := st.Count(ctx, &models.Order{}, nil)
	if err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if orders != 1 {
		t.Errorf("orders left = %d, want 1 (only the bystander's)", orders)
	}
}

func TestResolverUserCascadeSoftDelete(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	adminID := seedUserGraph(t, st)

	res, err := NewResolver(st).SoftDelete(ctx, KindUser, store.Eq("id", adminID))
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if res["user"] != 2 {
		t.Errorf("user count = %d, want 2 (owner plus the user they created)", res["user"])
	}
	if res["order"] != 2 {
		t.Errorf("order count = %d, want 2", res["order"])
	}
	if res["cart"] != 1 {
		t.Errorf("cart count = %d, want 1", res["cart"])
	}

	users, err := st.Count(ctx, &models.User{}, nil)
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 3 {
		t.Errorf("users in store = %d, want 3 (soft delete keeps rows)", users)
	}
	flagged, err := st.Count(ctx, &models.User{}, store.Eq("is_deleted", true))
	if err != nil {
		t.Fatalf("count flagged: %v", err)
	}
	if flagged != 2 {
		t.Errorf("flagged users = %d, want 2", flagged)
	}
}
