package models

import (
	"time"

	"gorm.io/datatypes"
)

type Banner struct {
	ID          int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RedirectURL string     `json:"redirectUrl"`
	SellerID    int        `json:"sellerId" gorm:"index"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    bool       `json:"isActive"`
	IsDeleted   bool       `json:"isDeleted"`
	AddedBy     int        `json:"addedBy"`
	UpdatedBy   int        `json:"updatedBy"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Banner) TableName() string { return "banners" }

type Image struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string    `json:"url"`
	AltText   string    `json:"altText"`
	BannerID  int       `json:"bannerId" gorm:"index"`
	ProductID int       `json:"productId" gorm:"index"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Image) TableName() string { return "images" }

type Category struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name"`
	ParentID     int       `json:"parentId" gorm:"index"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"isActive"`
	IsDeleted    bool      `json:"isDeleted"`
	AddedBy      int       `json:"addedBy"`
	UpdatedBy    int       `json:"updatedBy"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID            int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	SKU           string         `json:"sku"`
	Stock         int            `json:"stock"`
	Media         datatypes.JSON `json:"media"`
	CategoryID    int            `json:"categoryId" gorm:"index"`
	SubCategoryID int            `json:"subCategoryId" gorm:"index"`
	SellerID      int            `json:"sellerId" gorm:"index"`
	IsActive      bool           `json:"isActive"`
	IsDeleted     bool           `json:"isDeleted"`
	AddedBy       int            `json:"addedBy"`
	UpdatedBy     int            `json:"updatedBy"`
	CreatedAt     time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
