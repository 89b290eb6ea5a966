package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kartify-commerce/kartify-backend/config"
	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
	"github.com/kartify-commerce/kartify-backend/utils"
	"golang.org/x/crypto/bcrypt"
)

// Standalone CLI seeder. It creates the default roles, registers the
// permission tables for the known routes, grants everything to the
// System_Admin role, and bootstraps one admin account.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("KARTIFY - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	if err := config.LoadEnv(); err != nil {
		log.Fatal().Err(err).Msg("[seed] failed to load configuration")
	}
	config.InitLogger()
	config.InitDB()
	defer config.CloseDB()

	st := store.NewGormStore(config.DB)
	ctx := context.Background()

	adminRole := seedRoles(ctx, st)
	seedRoutes(ctx, st, adminRole)
	seedAdminUser(ctx, st, adminRole)

	fmt.Println()
	fmt.Println("Seeding complete.")
}

var roleNames = []string{"System_Admin", "Manager", "Customer"}

func seedRoles(ctx context.Context, st store.Store) *models.Role {
	var adminRole *models.Role
	for _, name := range roleNames {
		var existing models.Role
		err := st.FindOne(ctx, &existing, store.Eq("name", name))
		if err == nil {
			if name == "System_Admin" {
				adminRole = &existing
			}
			continue
		}
		if err != store.ErrNotFound {
			log.Fatal().Err(err).Str("role", name).Msg("[seed] role lookup failed")
		}
		role := &models.Role{Name: name, IsActive: true}
		if err := st.Create(ctx, role); err != nil {
			log.Fatal().Err(err).Str("role", name).Msg("[seed] role creation failed")
		}
		log.Info().Str("role", name).Msg("[seed] role created")
		if name == "System_Admin" {
			adminRole = role
		}
	}
	return adminRole
}

// routePaths are the registered admin endpoints that need permission
// rows. Keep in sync with routes/admin_routes.go.
var routePaths = []struct {
	method string
	path   string
}{
	{"POST", "/admin/auth/logout"},
	{"PUT", "/admin/auth/change-password"},
	{"POST", "/admin/entity/:entity/create"},
	{"POST", "/admin/entity/:entity/list"},
	{"GET", "/admin/entity/:entity/get/:id"},
	{"PUT", "/admin/entity/:entity/update/:id"},
	{"DELETE", "/admin/entity/:entity/delete/:id"},
	{"POST", "/admin/entity/:entity/delete-many"},
	{"PUT", "/admin/entity/:entity/soft-delete/:id"},
	{"PUT", "/admin/entity/:entity/soft-delete-many"},
	{"GET", "/admin/order/invoice/:id"},
	{"POST", "/admin/order/invoice/:id/send"},
	{"POST", "/admin/image/upload"},
}

func seedRoutes(ctx context.Context, st store.Store, adminRole *models.Role) {
	for _, rp := range routePaths {
		var existing models.ProjectRoute
		err := st.FindOne(ctx, &existing, store.And(
			store.Eq("route_name", utils.RouteKey(rp.path)),
			store.Eq("uri", rp.path)))
		if err == nil {
			continue
		}
		if err != store.ErrNotFound {
			log.Fatal().Err(err).Str("path", rp.path).Msg("[seed] route lookup failed")
		}
		route := &models.ProjectRoute{
			RouteName: utils.RouteKey(rp.path),
			Method:    rp.method,
			URI:       rp.path,
			IsActive:  true,
		}
		if err := st.Create(ctx, route); err != nil {
			log.Fatal().Err(err).Str("path", rp.path).Msg("[seed] route creation failed")
		}
		if err := st.Create(ctx, &models.RouteRole{
			RouteID:  route.ID,
			RoleID:   adminRole.ID,
			IsActive: true,
		}); err != nil {
			log.Fatal().Err(err).Str("path", rp.path).Msg("[seed] grant creation failed")
		}
		log.Info().Str("path", rp.path).Msg("[seed] route registered")
	}
}

func seedAdminUser(ctx context.Context, st store.Store, adminRole *models.Role) {
	username, email, password := getAdminCredentials()

	n, err := st.Count(ctx, &models.User{}, store.Or(
		store.Eq("username", username),
		store.Eq("email", email)))
	if err != nil {
		log.Fatal().Err(err).Msg("[seed] uniqueness check failed")
	}
	if n > 0 {
		fmt.Printf("Admin '%s' already exists, skipping\n", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("[seed] password hashing failed")
	}
	user := &models.User{
		Username: username,
		Password: string(hash),
		Email:    email,
		UserType: constants.UserTypeAdmin,
		IsActive: true,
	}
	if err := st.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("[seed] admin creation failed")
	}
	if err := st.Create(ctx, &models.UserAuthSettings{UserID: user.ID, IsActive: true}); err != nil {
		log.Fatal().Err(err).Msg("[seed] auth settings creation failed")
	}
	if err := st.Create(ctx, &models.UserRole{UserID: user.ID, RoleID: adminRole.ID, IsActive: true}); err != nil {
		log.Fatal().Err(err).Msg("[seed] role assignment failed")
	}
	fmt.Printf("Admin '%s' created with the System_Admin role\n", username)
}

func getAdminCredentials() (username, email, password string) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Admin username: ")
	username, _ = reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Admin email: ")
	email, _ = reader.ReadString('\n')
	email = strings.TrimSpace(strings.ToLower(email))

	fmt.Print("Admin password: ")
	password, _ = reader.ReadString('\n')
	password = strings.TrimSpace(password)

	if username == "" || email == "" || len(password) < 8 {
		fmt.Println("username, email and a password of at least 8 characters are required")
		os.Exit(1)
	}
	return username, email, password
}
