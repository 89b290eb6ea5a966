package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
	"github.com/kartify-commerce/kartify-backend/utils"
)

// AuthService implements login, registration, password lifecycle and
// logout over the abstract store. Time is injected so lockout windows
// are testable without sleeping.
type AuthService struct {
	store  store.Store
	tokens *TokenService
	mailer Mailer
	sms    SMSSender
	now    func() time.Time

	maxLoginRetry  int
	reactiveWindow time.Duration
	resetExpiry    time.Duration
	resetWithEmail bool
	resetWithSMS   bool
	appBaseURL     string
}

// AuthServiceOptions carries the tunables for NewAuthService.
type AuthServiceOptions struct {
	MaxLoginRetry  int
	ReactiveWindow time.Duration
	ResetExpiry    time.Duration
	ResetWithEmail bool
	ResetWithSMS   bool
	AppBaseURL     string
	Now            func() time.Time
}

// NewAuthService wires an auth service. Mailer and SMSSender may be nil
// when the corresponding reset channel is disabled.
func NewAuthService(st store.Store, tokens *TokenService, mailer Mailer, sms SMSSender, opts AuthServiceOptions) *AuthService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AuthService{
		store:          st,
		tokens:         tokens,
		mailer:         mailer,
		sms:            sms,
		now:            opts.Now,
		maxLoginRetry:  opts.MaxLoginRetry,
		reactiveWindow: opts.ReactiveWindow,
		resetExpiry:    opts.ResetExpiry,
		resetWithEmail: opts.ResetWithEmail,
		resetWithSMS:   opts.ResetWithSMS,
		appBaseURL:     opts.AppBaseURL,
	}
}

// LoginResult is the successful login payload.
type LoginResult struct {
	User       models.User           `json:"user"`
	Token      string                `json:"token"`
	RoleAccess map[string]RoleAccess `json:"roleAccess,omitempty"`
}

func activeUserFilter(extra store.Filter) store.Filter {
	base := store.And(store.Eq("is_active", true), store.Eq("is_deleted", false))
	if extra == nil {
		return base
	}
	return store.And(extra, base)
}

// Login authenticates username (or email) and password for a platform.
//
// The retry governor runs before the password check: once the retry
// limit is reached a reactivation window opens, and further attempts
// inside the window both extend it and count against the limit. After
// the window elapses the counter resets and the attempt proceeds.
func (s *AuthService) Login(ctx context.Context, username, password string, platform constants.Platform, includeRoleAccess bool) (*LoginResult, error) {
	var user models.User
	err := s.store.FindOne(ctx, &user, activeUserFilter(
		store.Or(store.Eq("username", username), store.Eq("email", username))))
	if err == store.ErrNotFound {
		return nil, failNotFound("User not exists")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	var auth models.UserAuthSettings
	if err := s.store.FindOne(ctx, &auth, store.Eq("user_id", user.ID)); err != nil && err != store.ErrNotFound {
		return nil, fmt.Errorf("find auth settings: %w", err)
	}

	if auth.LoginRetryLimit >= s.maxLoginRetry {
		now := s.now()
		if auth.LoginReactiveTime != nil {
			limitTime := *auth.LoginReactiveTime
			if limitTime.After(now) {
				expireTime := now.Add(s.reactiveWindow)
				if !limitTime.After(expireTime) {
					return nil, failLocked(fmt.Sprintf(
						"you have exceed the number of limit.you can login after %s.",
						utils.TimeUntilText(now, limitTime)))
				}
				// A reactivation time beyond the configured window means
				// the window was shortened since it was set. Clamp it and
				// keep counting the attempt.
				_, err := s.store.Update(ctx, &models.UserAuthSettings{}, store.Eq("user_id", user.ID), store.Patch{
					"login_reactive_time": expireTime,
					"login_retry_limit":   store.Incr(1),
				})
				if err != nil {
					return nil, fmt.Errorf("extend lockout: %w", err)
				}
				return nil, failLocked(fmt.Sprintf(
					"you have exceed the number of limit.you can login after %s.",
					utils.TimeUntilText(now, expireTime)))
			}
			// Window elapsed, reactivate the account.
			_, err := s.store.Update(ctx, &models.UserAuthSettings{}, store.Eq("user_id", user.ID), store.Patch{
				"login_reactive_time": nil,
				"login_retry_limit":   0,
			})
			if err != nil {
				return nil, fmt.Errorf("reactivate account: %w", err)
			}
			auth.LoginRetryLimit = 0
			auth.LoginReactiveTime = nil
		} else {
			expireTime := now.Add(s.reactiveWindow)
			_, err := s.store.Update(ctx, &models.UserAuthSettings{}, store.Eq("user_id", user.ID), store.Patch{
				"login_reactive_time": expireTime,
				"login_retry_limit":   store.Incr(1),
			})
			if err != nil {
				return nil, fmt.Errorf("open lockout window: %w", err)
			}
			return nil, failLocked(fmt.Sprintf(
				"you have exceed the number of limit.you can login after %s.",
				utils.TimeUntilText(now, expireTime)))
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		_, err := s.store.Update(ctx, &models.UserAuthSettings{}, store.Eq("user_id", user.ID), store.Patch{
			"login_retry_limit": store.Incr(1),
		})
		if err != nil {
			return nil, fmt.Errorf("count failed attempt: %w", err)
		}
		return nil, failValidation("Incorrect Password")
	}

	if _, ok := constants.LoginAccess[user.UserType]; !ok {
		return nil, failDenied("You have not been assigned any role")
	}
	if !constants.CanAccessPlatform(user.UserType, platform) {
		return nil, failDenied("you are unable to access this platform")
	}

	token, err := s.tokens.Generate(&user, platform)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	if auth.LoginRetryLimit > 0 {
		_, err := s.store.Update(ctx, &models.UserAuthSettings{}, store.Eq("user_id", user.ID), store.Patch{
			"login_retry_limit":   0,
			"login_reactive_time": nil,
		})
		if err != nil {
			return nil, fmt.Errorf("clear retry counter: %w", err)
		}
	}

	err = s.store.Create(ctx, &models.UserToken{
		UserID:           user.ID,
		Token:            token,
		TokenExpiredTime: s.now().Add(s.tokens.TTL()),
		IsActive:         true,
		AddedBy:          user.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("record token: %w", err)
	}

	result := &LoginResult{User: user, Token: token}
	if includeRoleAccess {
		access, err := GetRoleAccess(ctx, s.store, user.ID)
		if err != nil {
			return nil, fmt.Errorf("load role access: %w", err)
		}
		result.RoleAccess = access
	}
	log.Info().Int("userID", user.ID).Str("platform", platform.String()).Msg("[services.auth] login successful")
	return result, nil
}

// Register creates a user plus its auth-settings row. The password is
// hashed before the user row is written, never by a persistence hook.
// An empty password gets a generated one, delivered over the enabled
// reset channels.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest, userType constants.UserType, addedBy int) (*models.User, error) {
	taken, err := s.store.Count(ctx, &models.User{}, store.And(
		store.Or(store.Eq("username", req.Username), store.Eq("email", req.Email)),
		store.Eq("is_deleted", false)))
	if err != nil {
		return nil, fmt.Errorf("uniqueness check: %w", err)
	}
	if taken > 0 {
		return nil, failValidation("username or email already exists")
	}

	plainPassword := req.Password
	generated := false
	if plainPassword == "" {
		plainPassword = uuid.New().String()[:10]
		generated = true
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Name:     req.Name,
		MobileNo: req.MobileNo,
		UserType: userType,
		IsActive: true,
		AddedBy:  addedBy,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	err = s.store.Create(ctx, &models.UserAuthSettings{
		UserID:   user.ID,
		IsActive: true,
		AddedBy:  user.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create auth settings: %w", err)
	}

	if generated {
		if s.resetWithEmail && s.mailer != nil {
			if err := s.mailer.Send(ctx, user.Email, "Your Password!",
				fmt.Sprintf("Your Password for login : %s", plainPassword)); err != nil {
				log.Error().Err(err).Int("userID", user.ID).Msg("[services.auth] failed to mail generated password")
			}
		}
		if s.resetWithSMS && s.sms != nil {
			if err := s.sms.Send(ctx, user.MobileNo,
				fmt.Sprintf("Your Password for login : %s", plainPassword)); err != nil {
				log.Error().Err(err).Int("userID", user.ID).Msg("[services.auth] failed to SMS generated password")
			}
		}
	}
	log.Info().Int("userID", user.ID).Msg("[services.auth] user registered")
	return user, nil
}

// ChangePassword swaps a logged-in user's password after checking the
// old one.
func (s *AuthService) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	var user models.User
	err := s.store.FindOne(ctx, &user, activeUserFilter(store.Eq("id", userID)))
	if err == store.ErrNotFound {
		return failNotFound("User not found")
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return failValidation("Incorrect Old Password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.store.Update(ctx, &models.User{}, store.Eq("id", userID), store.Patch{"password": string(hash)}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ResetNotificationResult reports which channels delivered the code.
type ResetNotificationResult struct {
	Email bool
	SMS   bool
}

// SendResetPasswordNotification stores a fresh one-time code against
// the user's auth settings and delivers it over the enabled channels.
// Issuing a new code invalidates any previous one.
func (s *AuthService) SendResetPasswordNotification(ctx context.Context, user *models.User) (ResetNotificationResult, error) {
	var res ResetNotificationResult
	code := uuid.New().String()
	expires := s.now().Add(s.resetExpiry)
	_, err := s.store.Update(ctx, &models.UserAuthSettings{}, store.Eq("user_id", user.ID), store.Patch{
		"reset_password_code":                  code,
		"expired_time_of_reset_password_code": expires,
	})
	if err != nil {
		return res, fmt.Errorf("store reset code: %w", err)
	}
	link := fmt.Sprintf("%s/reset-password/%s", s.appBaseURL, code)
	if s.resetWithEmail && s.mailer != nil {
		if err := s.mailer.Send(ctx, user.Email, "Reset Password",
			fmt.Sprintf("Hello %s, reset your password here: %s", user.Username, link)); err == nil {
			res.Email = true
		} else {
			log.Error().Err(err).Int("userID", user.ID).Msg("[services.auth] reset email failed")
		}
	}
	if s.resetWithSMS && s.sms != nil {
		if err := s.sms.Send(ctx, user.MobileNo, fmt.Sprintf("Reset your password: %s", link)); err == nil {
			res.SMS = true
		} else {
			log.Error().Err(err).Int("userID", user.ID).Msg("[services.auth] reset SMS failed")
		}
	}
	return res, nil
}

// ForgotPassword looks up the active user by email and sends the reset
// notification.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (ResetNotificationResult, error) {
	var user models.User
	err := s.store.FindOne(ctx, &user, activeUserFilter(store.Eq("email", email)))
	if err == store.ErrNotFound {
		return ResetNotificationResult{}, failNotFound("Record not found with specified criteria.")
	}
	if err != nil {
		return ResetNotificationResult{}, fmt.Errorf("find user: %w", err)
	}
	return s.SendResetPasswordNotification(ctx, &user)
}

// ValidateResetCode checks a one-time code without consuming it, so
// clients can pre-validate before showing the new-password form. An
// unknown code and an expired code are distinct outcomes.
func (s *AuthService) ValidateResetCode(ctx context.Context, code string) error {
	if code == "" {
		return failValidation("Invalid OTP")
	}
	var auth models.UserAuthSettings
	err := s.store.FindOne(ctx, &auth, store.Eq("reset_password_code", code))
	if err == store.ErrNotFound {
		return failValidation("Invalid OTP")
	}
	if err != nil {
		return fmt.Errorf("find reset code: %w", err)
	}
	if auth.ExpiredTimeOfResetPasswordCode == nil || s.now().After(*auth.ExpiredTimeOfResetPasswordCode) {
		return failExpired("Your reset password link is expired or invalid")
	}
	return nil
}

// ResetPassword consumes a valid code: the user's password is replaced,
// the code and its expiry are cleared, and any login lockout is lifted
// in the same settings update.
func (s *AuthService) ResetPassword(ctx context.Context, code, newPassword string) error {
	if code == "" {
		return failValidation("Invalid Code")
	}
	var auth models.UserAuthSettings
	err := s.store.FindOne(ctx, &auth, store.Eq("reset_password_code", code))
	if err == store.ErrNotFound {
		return failValidation("Invalid Code")
	}
	if err != nil {
		return fmt.Errorf("find reset code: %w", err)
	}
	if auth.ExpiredTimeOfResetPasswordCode == nil {
		return failValidation("Invalid Code")
	}
	if s.now().After(*auth.ExpiredTimeOfResetPasswordCode) {
		return failExpired("Your reset password link is expired or invalid")
	}

	var user models.User
	err = s.store.FindOne(ctx, &user, activeUserFilter(store.Eq("id", auth.UserID)))
	if err == store.ErrNotFound {
		return failNotFound("User not found")
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.store.Update(ctx, &models.User{}, store.Eq("id", user.ID), store.Patch{"password": string(hash)}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	_, err = s.store.Update(ctx, &models.UserAuthSettings{}, store.Eq("user_id", user.ID), store.Patch{
		"reset_password_code":                  "",
		"expired_time_of_reset_password_code": nil,
		"login_retry_limit":                    0,
		"login_reactive_time":                  nil,
	})
	if err != nil {
		return fmt.Errorf("clear reset code: %w", err)
	}
	if s.mailer != nil {
		if err := s.mailer.Send(ctx, user.Email, "Reset Password",
			"Your password has been changed Successfully."); err != nil {
			log.Error().Err(err).Int("userID", user.ID).Msg("[services.auth] reset confirmation email failed")
		}
	}
	log.Info().Int("userID", user.ID).Msg("[services.auth] password reset")
	return nil
}

// Logout marks the presented token expired in the audit table. The JWT
// itself stays cryptographically valid until expiry, so the middleware
// checks this flag on every request.
func (s *AuthService) Logout(ctx context.Context, userID int, token string) error {
	_, err := s.store.Update(ctx, &models.UserToken{},
		store.And(store.Eq("user_id", userID), store.Eq("token", token)),
		store.Patch{"is_token_expired": true})
	if err != nil {
		return fmt.Errorf("expire token: %w", err)
	}
	return nil
}
