package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
)

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, to+"|"+subject+"|"+body)
	return nil
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestAuthService(t *testing.T) (*AuthService, store.Store, *testClock, *recordingMailer) {
	t.Helper()
	st := store.NewMemoryStore()
	tokens, err := NewTokenService("admin-secret", "device-secret", "client-secret", 168*time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	clock := &testClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	mailer := &recordingMailer{}
	svc := NewAuthService(st, tokens, mailer, nil, AuthServiceOptions{
		MaxLoginRetry:  3,
		ReactiveWindow: 20 * time.Minute,
		ResetExpiry:    20 * time.Minute,
		ResetWithEmail: true,
		AppBaseURL:     "http://localhost:8081",
		Now:            clock.Now,
	})
	return svc, st, clock, mailer
}

func seedUser(t *testing.T, st store.Store, username, password string, userType constants.UserType) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{
		Username: username,
		Password: string(hash),
		Email:    username + "@example.com",
		UserType: userType,
		IsActive: true,
	}
	if err := st.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	err = st.Create(context.Background(), &models.UserAuthSettings{UserID: user.ID, IsActive: true})
	if err != nil {
		t.Fatalf("create auth settings: %v", err)
	}
	return user
}

func authSettingsOf(t *testing.T, st store.Store, userID int) models.UserAuthSettings {
	t.Helper()
	var auth models.UserAuthSettings
	if err := st.FindOne(context.Background(), &auth, store.Eq("user_id", userID)); err != nil {
		t.Fatalf("find auth settings: %v", err)
	}
	return auth
}

func TestLoginSuccess(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	user := seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)

	res, err := svc.Login(context.Background(), "alice", "s3cret-pass", constants.PlatformClient, false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a token")
	}
	if res.User.ID != user.ID {
		t.Errorf("user ID = %d, want %d", res.User.ID, user.ID)
	}

	var audit models.UserToken
	if err := st.FindOne(context.Background(), &audit, store.Eq("user_id", user.ID)); err != nil {
		t.Fatalf("expected a token audit row: %v", err)
	}
	if audit.Token != res.Token {
		t.Error("audit row should hold the issued token")
	}
	if audit.IsTokenExpired {
		t.Error("fresh token must not be marked expired")
	}
}

func TestLoginByEmail(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)

	if _, err := svc.Login(context.Background(), "alice@example.com", "s3cret-pass", constants.PlatformClient, false); err != nil {
		t.Fatalf("login by email: %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "ghost", "whatever", constants.PlatformClient, false)
	f, ok := AsFailure(err)
	if !ok || f.Message != "User not exists" {
		t.Fatalf("err = %v, want failure %q", err, "User not exists")
	}
	if f.Kind != FailureNotFound {
		t.Errorf("kind = %v, want FailureNotFound", f.Kind)
	}
}

func TestLoginWrongPasswordCountsAttempt(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	user := seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)

	_, err := svc.Login(context.Background(), "alice", "wrong", constants.PlatformClient, false)
	f, ok := AsFailure(err)
	if !ok || f.Message != "Incorrect Password" {
		t.Fatalf("err = %v, want failure %q", err, "Incorrect Password")
	}
	if got := authSettingsOf(t, st, user.ID).LoginRetryLimit; got != 1 {
		t.Errorf("retry limit = %d, want 1", got)
	}
}

func TestLoginLockoutOpensWindow(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	user := seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Login(ctx, "alice", "wrong", constants.PlatformClient, false); err == nil {
			t.Fatal("expected failure")
		}
	}

	// Limit reached: the next attempt opens the window even with the
	// correct password, and still counts.
	_, err := svc.Login(ctx, "alice", "s3cret-pass", constants.PlatformClient, false)
	f, ok := AsFailure(err)
	if !ok || f.Kind != FailureLocked {
		t.Fatalf("err = %v, want locked failure", err)
	}
	if !strings.Contains(f.Message, "you have exceed the number of limit.you can login after ") {
		t.Errorf("unexpected lockout message %q", f.Message)
	}
	if !strings.Contains(f.Message, "20 minute and 0 second") {
		t.Errorf("lockout message should carry the full window, got %q", f.Message)
	}

	auth := authSettingsOf(t, st, user.ID)
	if auth.LoginRetryLimit != 4 {
		t.Errorf("retry limit = %d, want 4", auth.LoginRetryLimit)
	}
	if auth.LoginReactiveTime == nil {
		t.Fatal("reactive time must be set")
	}
}

func TestLoginInsideWindowReportsRemainingTime(t *testing.T) {
	svc, st, clock, _ := newTestAuthService(t)
	seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		svc.Login(ctx, "alice", "wrong", constants.PlatformClient, false)
	}
	clock.Advance(5 * time.Minute)

	_, err := svc.Login(ctx, "alice", "s3cret-pass", constants.PlatformClient, false)
	f, ok := AsFailure(err)
	if !ok || f.Kind != FailureLocked {
		t.Fatalf("err = %v, want locked failure", err)
	}
	if !strings.Contains(f.Message, "15 minute and 0 second") {
		t.Errorf("expected remaining time in message, got %q", f.Message)
	}
}

func TestLoginAfterWindowElapsesReactivates(t *testing.T) {
	svc, st, clock, _ := newTestAuthService(t)
	user := seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		svc.Login(ctx, "alice", "wrong", constants.PlatformClient, false)
	}
	clock.Advance(21 * time.Minute)

	res, err := svc.Login(ctx, "alice", "s3cret-pass", constants.PlatformClient, false)
	if err != nil {
		t.Fatalf("login after window: %v", err)
	}
	if res.Token == "" {
		t.Fatal("expected a token")
	}
	auth := authSettingsOf(t, st, user.ID)
	if auth.LoginRetryLimit != 0 || auth.LoginReactiveTime != nil {
		t.Errorf("counters not cleared: limit=%d reactive=%v", auth.LoginRetryLimit, auth.LoginReactiveTime)
	}
}

func TestLoginPlatformDenied(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	seedUser(t, st, "root", "s3cret-pass", constants.UserTypeAdmin)
	seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)
	ctx := context.Background()

	_, err := svc.Login(ctx, "root", "s3cret-pass", constants.PlatformClient, false)
	f, ok := AsFailure(err)
	if !ok || f.Message != "you are unable to access this platform" {
		t.Fatalf("admin on client: err = %v", err)
	}
	_, err = svc.Login(ctx, "alice", "s3cret-pass", constants.PlatformAdmin, false)
	if f, ok := AsFailure(err); !ok || f.Message != "you are unable to access this platform" {
		t.Fatalf("user on admin: err = %v", err)
	}
	if _, err := svc.Login(ctx, "root", "s3cret-pass", constants.PlatformAdmin, false); err != nil {
		t.Fatalf("admin on admin: %v", err)
	}
}

func TestLoginUnassignedUserType(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	user := seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)
	if _, err := st.Update(context.Background(), &models.User{}, store.Eq("id", user.ID), store.Patch{"user_type": 0}); err != nil {
		t.Fatalf("clear user type: %v", err)
	}

	_, err := svc.Login(context.Background(), "alice", "s3cret-pass", constants.PlatformClient, false)
	f, ok := AsFailure(err)
	if !ok || f.Message != "You have not been assigned any role" {
		t.Fatalf("err = %v, want unassigned-role failure", err)
	}
}

func TestLoginResetsRetryCounterOnSuccess(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	user := seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)
	ctx := context.Background()

	svc.Login(ctx, "alice", "wrong", constants.PlatformClient, false)
	svc.Login(ctx, "alice", "wrong", constants.PlatformClient, false)
	if _, err := svc.Login(ctx, "alice", "s3cret-pass", constants.PlatformClient, false); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := authSettingsOf(t, st, user.ID).LoginRetryLimit; got != 0 {
		t.Errorf("retry limit = %d, want 0 after success", got)
	}
}

func TestRegisterHashesBeforePersist(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hunter2-hunter2",
	}, constants.UserTypeUser, 0)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	var stored models.User
	if err := st.FindOne(context.Background(), &stored, store.Eq("id", user.ID)); err != nil {
		t.Fatalf("find user: %v", err)
	}
	if stored.Password == "hunter2-hunter2" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2-hunter2")) != nil {
		t.Error("stored hash does not verify the original password")
	}
	// The auth-settings sub-record must exist right away.
	authSettingsOf(t, st, user.ID)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	seedUser(t, st, "bob", "irrelevant-pw", constants.UserTypeUser)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "bob",
		Email:    "other@example.com",
		Password: "hunter2-hunter2",
	}, constants.UserTypeUser, 0)
	if _, ok := AsFailure(err); !ok {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	user := seedUser(t, st, "alice", "old-password", constants.UserTypeUser)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user.ID, "not-the-old-one", "new-password-1")
	if f, ok := AsFailure(err); !ok || f.Message != "Incorrect Old Password" {
		t.Fatalf("err = %v, want %q", err, "Incorrect Old Password")
	}

	if err := svc.ChangePassword(ctx, user.ID, "old-password", "new-password-1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.Login(ctx, "alice", "new-password-1", constants.PlatformClient, false); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestLogoutExpiresAuditRow(t *testing.T) {
	svc, st, _, _ := newTestAuthService(t)
	user := seedUser(t, st, "alice", "s3cret-pass", constants.UserTypeUser)
	ctx := context.Background()

	res, err := svc.Login(ctx, "alice", "s3cret-pass", constants.PlatformClient, false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, user.ID, res.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	var audit models.UserToken
	if err := st.FindOne(ctx, &audit, store.Eq("token", res.Token)); err != nil {
		t.Fatalf("find audit row: %v", err)
	}
	if !audit.IsTokenExpired {
		t.Error("token audit row should be marked expired after logout")
	}
}
