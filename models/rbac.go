package models

import "time"

// Role is a named permission group, linked to users through UserRole
// and to registered routes through RouteRole.
type Role struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"index"`
	Code      string    `json:"code"`
	Weight    int       `json:"weight"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Role) TableName() string { return "roles" }

type UserRole struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int       `json:"userId" gorm:"index"`
	RoleID    int       `json:"roleId" gorm:"index"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (UserRole) TableName() string { return "user_roles" }

// ProjectRoute is a registered API route, identified by a normalized
// route name (path with slashes replaced by underscores) and its URI.
type ProjectRoute struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	RouteName string    `json:"routeName" gorm:"index"`
	Method    string    `json:"method"`
	URI       string    `json:"uri"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (ProjectRoute) TableName() string { return "project_routes" }

// RouteRole is the authorization grant table: a row asserts that the
// role may invoke the route.
type RouteRole struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	RouteID   int       `json:"routeId" gorm:"index"`
	RoleID    int       `json:"roleId" gorm:"index"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (RouteRole) TableName() string { return "route_roles" }
