package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/services"
	"github.com/kartify-commerce/kartify-backend/store"
)

func newAuthFixture(t *testing.T) (*services.TokenService, store.Store, *models.User) {
	t.Helper()
	tokens, err := services.NewTokenService("admin-secret", "device-secret", "client-secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	st := store.NewMemoryStore()
	user := &models.User{
		Username:  "alice",
		UserType:  constants.UserTypeAdmin,
		IsActive:  true,
		IsDeleted: false,
	}
	if err := st.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return tokens, st, user
}

func issueToken(t *testing.T, tokens *services.TokenService, st store.Store, user *models.User, platform constants.Platform) string {
	t.Helper()
	token, err := tokens.Generate(user, platform)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	err = st.Create(context.Background(), &models.UserToken{
		UserID:           user.ID,
		Token:            token,
		TokenExpiredTime: time.Now().Add(time.Hour),
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("create token audit row: %v", err)
	}
	return token
}

func requestWithToken(t *testing.T, handler gin.HandlerFunc, token string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/entity/product/list", nil)
	if token != "" {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
	handler(c)
	return rec, c
}

func TestPlatformAuthAcceptsOwnPlatformToken(t *testing.T) {
	tokens, st, user := newAuthFixture(t)
	token := issueToken(t, tokens, st, user, constants.PlatformAdmin)

	rec, c := requestWithToken(t, PlatformAuth(tokens, st, constants.PlatformAdmin), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got status %d", rec.Code)
	}
	id, ok := UserIDFromContext(c)
	if !ok || id != user.ID {
		t.Fatalf("expected user %d in context, got %d (ok=%v)", user.ID, id, ok)
	}
	if got, ok := TokenFromContext(c); !ok || got != token {
		t.Fatal("expected raw token in context")
	}
}

func TestPlatformAuthRejectsForeignPlatformToken(t *testing.T) {
	tokens, st, user := newAuthFixture(t)
	token := issueToken(t, tokens, st, user, constants.PlatformClient)

	rec, _ := requestWithToken(t, PlatformAuth(tokens, st, constants.PlatformAdmin), token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a client token on the admin surface, got %d", rec.Code)
	}
}

func TestPlatformAuthRejectsMissingHeader(t *testing.T) {
	tokens, st, _ := newAuthFixture(t)

	rec, _ := requestWithToken(t, PlatformAuth(tokens, st, constants.PlatformAdmin), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a bearer token, got %d", rec.Code)
	}
}

func TestPlatformAuthRejectsLoggedOutToken(t *testing.T) {
	tokens, st, user := newAuthFixture(t)
	token := issueToken(t, tokens, st, user, constants.PlatformAdmin)

	if _, err := st.Update(context.Background(), &models.UserToken{},
		store.Eq("token", token), store.Patch{"is_token_expired": true}); err != nil {
		t.Fatalf("expire token: %v", err)
	}

	rec, _ := requestWithToken(t, PlatformAuth(tokens, st, constants.PlatformAdmin), token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestPlatformAuthRejectsInactiveUser(t *testing.T) {
	tokens, st, user := newAuthFixture(t)
	token := issueToken(t, tokens, st, user, constants.PlatformAdmin)

	if _, err := st.Update(context.Background(), &models.User{},
		store.Eq("id", user.ID), store.Patch{"is_active": false}); err != nil {
		t.Fatalf("deactivate user: %v", err)
	}

	rec, _ := requestWithToken(t, PlatformAuth(tokens, st, constants.PlatformAdmin), token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a deactivated user, got %d", rec.Code)
	}
}
