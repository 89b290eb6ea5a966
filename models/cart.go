package models

import "time"

type Cart struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID int       `json:"customerId" gorm:"index"`
	IsActive   bool      `json:"isActive"`
	IsDeleted  bool      `json:"isDeleted"`
	AddedBy    int       `json:"addedBy"`
	UpdatedBy  int       `json:"updatedBy"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Cart) TableName() string { return "carts" }

type CartItem struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID    int       `json:"cartId" gorm:"index"`
	ProductID int       `json:"productId" gorm:"index"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (CartItem) TableName() string { return "cart_items" }
