package models

import (
	"time"

	"github.com/kartify-commerce/kartify-backend/constants"
)

// User is the shared identity record for every platform. The password
// column holds a bcrypt hash and is never serialized outward.
type User struct {
	ID        int                `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string             `json:"username" gorm:"index"`
	Password  string             `json:"-"`
	Email     string             `json:"email" gorm:"index"`
	Name      string             `json:"name"`
	MobileNo  string             `json:"mobileNo"`
	UserType  constants.UserType `json:"userType"`
	IsActive  bool               `json:"isActive"`
	IsDeleted bool               `json:"isDeleted"`
	AddedBy   int                `json:"addedBy"`
	UpdatedBy int                `json:"updatedBy"`
	CreatedAt time.Time          `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time          `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// UserAuthSettings is the per-user authentication sub-record. Every
// user owns exactly one row, created immediately after the user row.
type UserAuthSettings struct {
	ID                             int        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID                         int        `json:"userId" gorm:"index"`
	LoginRetryLimit                int        `json:"loginRetryLimit"`
	LoginReactiveTime              *time.Time `json:"loginReactiveTime"`
	ResetPasswordCode              string     `json:"resetPasswordCode" gorm:"index"`
	ExpiredTimeOfResetPasswordCode *time.Time `json:"expiredTimeOfResetPasswordCode"`
	IsActive                       bool       `json:"isActive"`
	IsDeleted                      bool       `json:"isDeleted"`
	AddedBy                        int        `json:"addedBy"`
	UpdatedBy                      int        `json:"updatedBy"`
	CreatedAt                      time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt                      time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (UserAuthSettings) TableName() string { return "user_auth_settings" }

// UserToken is the append-only audit record of an issued session token.
// Logout flips IsTokenExpired instead of deleting the row.
type UserToken struct {
	ID               int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           int       `json:"userId" gorm:"index"`
	Token            string    `json:"token" gorm:"index"`
	TokenExpiredTime time.Time `json:"tokenExpiredTime"`
	IsTokenExpired   bool      `json:"isTokenExpired"`
	IsActive         bool      `json:"isActive"`
	IsDeleted        bool      `json:"isDeleted"`
	AddedBy          int       `json:"addedBy"`
	UpdatedBy        int       `json:"updatedBy"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (UserToken) TableName() string { return "user_tokens" }

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

type LoginRequest struct {
	Username          string `json:"username" binding:"required"`
	Password          string `json:"password" binding:"required"`
	IncludeRoleAccess bool   `json:"includeRoleAccess"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	MobileNo string `json:"mobileNo"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ValidateOtpRequest struct {
	Otp string `json:"otp" binding:"required"`
}

type ResetPasswordRequest struct {
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
